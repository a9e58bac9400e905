package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// MovementType classifies a stock ledger entry
type MovementType string

const (
	MovementPurchase       MovementType = "purchase"
	MovementSale           MovementType = "sale"
	MovementReturn         MovementType = "return"
	MovementAdjustment     MovementType = "adjustment"
	MovementDeletePurchase MovementType = "delete_purchase"
	MovementDeleteSale     MovementType = "delete_sale"
	MovementUpdatePurchase MovementType = "update_purchase"
	MovementUpdateSale     MovementType = "update_sale"
)

// IsValid returns true if the movement type is known
func (t MovementType) IsValid() bool {
	switch t {
	case MovementPurchase, MovementSale, MovementReturn, MovementAdjustment,
		MovementDeletePurchase, MovementDeleteSale, MovementUpdatePurchase, MovementUpdateSale:
		return true
	}
	return false
}

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// StockMovement is an immutable ledger entry describing one quantity change
// of one variant. Quantity is the line quantity the movement refers to,
// Delta is the signed change applied to the variant and BalanceAfter the
// on-hand quantity right after the change.
type StockMovement struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	UserID       uuid.UUID
	ProductID    uuid.UUID
	VariantID    uuid.UUID
	Type         MovementType
	Quantity     int64
	Delta        int64
	BalanceAfter int64
	Note         string
	CreatedAt    time.Time
}

// NewStockMovement builds a ledger entry. It does not verify BalanceAfter;
// the caller owns that arithmetic.
func NewStockMovement(actor shared.Actor, ref VariantRef, t MovementType, quantity, delta, balanceAfter int64, note string) (*StockMovement, error) {
	if !t.IsValid() {
		return nil, shared.NewValidationError("Invalid stock movement type: " + string(t))
	}
	if ref.ProductID == uuid.Nil || ref.VariantID == uuid.Nil {
		return nil, shared.NewValidationError("Stock movement requires product and variant")
	}
	return &StockMovement{
		ID:           uuid.New(),
		TenantID:     actor.TenantID,
		UserID:       actor.UserID,
		ProductID:    ref.ProductID,
		VariantID:    ref.VariantID,
		Type:         t,
		Quantity:     quantity,
		Delta:        delta,
		BalanceAfter: balanceAfter,
		Note:         note,
		CreatedAt:    time.Now(),
	}, nil
}
