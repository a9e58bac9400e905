package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for finance.Payment
type PaymentModel struct {
	TenantModel
	UserID      uuid.UUID       `gorm:"type:uuid;not null"`
	PartyType   string          `gorm:"type:varchar(20);not null;index:idx_payment_party,priority:1"`
	PartyID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_payment_party,priority:2"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaymentType string          `gorm:"type:varchar(30);not null"`
	PaymentMode string          `gorm:"type:varchar(30);not null"`
	PaymentDetailColumns
	Notes       string    `gorm:"type:text"`
	CaptureDate time.Time `gorm:"not null"`
	IsDeleted   bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		TenantEntity: m.TenantEntity(),
		UserID:       m.UserID,
		PartyType:    finance.PartyType(m.PartyType),
		PartyID:      m.PartyID,
		Amount:       m.Amount,
		PaymentType:  m.PaymentType,
		PaymentMode:  m.PaymentMode,
		Detail:       m.PaymentDetailColumns.ToDomain(),
		Notes:        m.Notes,
		CaptureDate:  m.CaptureDate,
		IsDeleted:    m.IsDeleted,
	}
}

func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.FromDomainTenantEntity(p.TenantEntity)
	m.UserID = p.UserID
	m.PartyType = string(p.PartyType)
	m.PartyID = p.PartyID
	m.Amount = p.Amount
	m.PaymentType = p.PaymentType
	m.PaymentMode = p.PaymentMode
	m.PaymentDetailColumns.FromDomain(p.Detail)
	m.Notes = p.Notes
	m.CaptureDate = p.CaptureDate
	m.IsDeleted = p.IsDeleted
}
