package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// TenantModel provides the common persistence fields of tenant-scoped rows.
type TenantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// FromDomainTenantEntity populates TenantModel from a domain TenantEntity
func (m *TenantModel) FromDomainTenantEntity(e shared.TenantEntity) {
	m.ID = e.ID
	m.TenantID = e.TenantID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// TenantEntity converts the model back into a domain TenantEntity
func (m *TenantModel) TenantEntity() shared.TenantEntity {
	return shared.TenantEntity{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		TenantID: m.TenantID,
	}
}

// PaymentDetailColumns stores shared.PaymentDetail as (kind, reference)
type PaymentDetailColumns struct {
	PaymentDetailKind string `gorm:"type:varchar(20);not null;default:''"`
	PaymentDetailRef  string `gorm:"type:varchar(100);not null;default:''"`
}

// FromDomain splits the union into columns
func (c *PaymentDetailColumns) FromDomain(d shared.PaymentDetail) {
	c.PaymentDetailKind = string(d.Kind())
	c.PaymentDetailRef = d.Reference()
}

// ToDomain rebuilds the union. Unknown kinds written by other tools are
// treated as no detail.
func (c *PaymentDetailColumns) ToDomain() shared.PaymentDetail {
	d, err := shared.RestorePaymentDetail(c.PaymentDetailKind, c.PaymentDetailRef)
	if err != nil {
		return shared.PaymentDetail{}
	}
	return d
}
