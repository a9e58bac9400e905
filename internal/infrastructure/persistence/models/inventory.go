package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/inventory"
)

// StockMovementModel is a row of the append-only stock_movements table
type StockMovementModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index:idx_movement_variant,priority:1"`
	UserID       uuid.UUID `gorm:"type:uuid;not null"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index:idx_movement_variant,priority:2"`
	VariantID    uuid.UUID `gorm:"type:uuid;not null;index:idx_movement_variant,priority:3"`
	Type         string    `gorm:"type:varchar(20);not null"`
	Quantity     int64     `gorm:"not null"`
	Delta        int64     `gorm:"not null"`
	BalanceAfter int64     `gorm:"not null"`
	Note         string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (StockMovementModel) TableName() string {
	return "stock_movements"
}

// ToDomain converts the model to a domain StockMovement
func (m *StockMovementModel) ToDomain() *inventory.StockMovement {
	return &inventory.StockMovement{
		ID:           m.ID,
		TenantID:     m.TenantID,
		UserID:       m.UserID,
		ProductID:    m.ProductID,
		VariantID:    m.VariantID,
		Type:         inventory.MovementType(m.Type),
		Quantity:     m.Quantity,
		Delta:        m.Delta,
		BalanceAfter: m.BalanceAfter,
		Note:         m.Note,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain populates the model from a domain StockMovement
func (m *StockMovementModel) FromDomain(s *inventory.StockMovement) {
	m.ID = s.ID
	m.TenantID = s.TenantID
	m.UserID = s.UserID
	m.ProductID = s.ProductID
	m.VariantID = s.VariantID
	m.Type = string(s.Type)
	m.Quantity = s.Quantity
	m.Delta = s.Delta
	m.BalanceAfter = s.BalanceAfter
	m.Note = s.Note
	m.CreatedAt = s.CreatedAt
}
