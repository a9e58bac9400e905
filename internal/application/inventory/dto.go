package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/domain/shared"
)

// ListMovementsRequest holds the query parameters of GET /stock-movements
type ListMovementsRequest struct {
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"pageSize" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"orderBy"`
	OrderDir  string     `form:"orderDir" binding:"omitempty,oneof=asc desc"`
	ProductID *uuid.UUID `form:"productId"`
	VariantID *uuid.UUID `form:"variantId"`
	Type      string     `form:"type"`
}

func (r ListMovementsRequest) toFilter() (inventory.StockMovementFilter, error) {
	kind := inventory.MovementType(r.Type)
	if kind != "" && !kind.IsValid() {
		return inventory.StockMovementFilter{}, shared.NewValidationError("Invalid stock movement type: " + r.Type)
	}
	return inventory.StockMovementFilter{
		Filter: shared.Filter{
			Page:     r.Page,
			PageSize: r.PageSize,
			OrderBy:  r.OrderBy,
			OrderDir: r.OrderDir,
		}.Normalize(),
		ProductID: r.ProductID,
		VariantID: r.VariantID,
		Type:      kind,
	}, nil
}

// AdjustStockRequest is the body of POST /stock-adjustments. Delta is signed.
type AdjustStockRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	VariantID uuid.UUID `json:"variantId" binding:"required"`
	Type      string    `json:"type" binding:"required,oneof=adjustment return"`
	Delta     int64     `json:"delta" binding:"required"`
	Note      string    `json:"note" binding:"max=500"`
}

// MovementResponse represents a ledger entry in API responses
type MovementResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	ProductID    uuid.UUID `json:"productId"`
	VariantID    uuid.UUID `json:"variantId"`
	Type         string    `json:"type"`
	Quantity     int64     `json:"quantity"`
	Delta        int64     `json:"delta"`
	BalanceAfter int64     `json:"balanceAfter"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToMovementResponse converts a ledger entry to a response
func ToMovementResponse(m *inventory.StockMovement) MovementResponse {
	return MovementResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		ProductID:    m.ProductID,
		VariantID:    m.VariantID,
		Type:         string(m.Type),
		Quantity:     m.Quantity,
		Delta:        m.Delta,
		BalanceAfter: m.BalanceAfter,
		Note:         m.Note,
		CreatedAt:    m.CreatedAt,
	}
}
