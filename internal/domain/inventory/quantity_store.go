package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// VariantRef is the composite key of a variant
type VariantRef struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
}

// String renders the key for logs
func (r VariantRef) String() string {
	return fmt.Sprintf("%s/%s", r.ProductID, r.VariantID)
}

// VariantSnapshot is a point-in-time read of a variant's stock figures
type VariantSnapshot struct {
	Ref           VariantRef
	ProductName   string
	PackingSize   string
	Quantity      int64
	MinStockLevel int64
}

// DisplayName is "{product} {packing size}" as shown in stock messages
func (s VariantSnapshot) DisplayName() string {
	if s.PackingSize == "" {
		return s.ProductName
	}
	return s.ProductName + " " + s.PackingSize
}

// QuantityStore is the only path that reads or moves on-hand quantity.
// Adjust is a single atomic "add signed delta" on one variant row; it does
// not check for sufficient stock. Both methods return shared.ErrNotFound
// for an unknown or deleted variant.
type QuantityStore interface {
	GetVariant(ctx context.Context, tenantID uuid.UUID, ref VariantRef) (*VariantSnapshot, error)
	Adjust(ctx context.Context, tenantID uuid.UUID, ref VariantRef, delta int64) (int64, error)
}

// ArchivedVariantStore is implemented by stores that can also reach
// variants of soft-deleted products. Order deletes use it to return the
// stock of past orders after the product itself was deleted.
type ArchivedVariantStore interface {
	IncludingDeleted() QuantityStore
}

// StockMovementFilter narrows ledger queries
type StockMovementFilter struct {
	shared.Filter
	ProductID *uuid.UUID
	VariantID *uuid.UUID
	Type      MovementType
}

// StockLedger is the append-only movement log. There is no update or delete.
type StockLedger interface {
	Append(ctx context.Context, movement *StockMovement) error
	List(ctx context.Context, tenantID uuid.UUID, filter StockMovementFilter) ([]StockMovement, int64, error)
}
