package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// OrderFilter narrows order listings. PartyID is the customer for sales
// orders and the supplier for purchase orders.
type OrderFilter struct {
	shared.Filter
	PartyID *uuid.UUID
}

// SalesOrderRepository persists sales orders. FindByID also returns
// soft-deleted orders; List never does.
type SalesOrderRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*SalesOrder, error)
	List(ctx context.Context, tenantID uuid.UUID, filter OrderFilter) ([]SalesOrder, int64, error)
	Create(ctx context.Context, order *SalesOrder) error
	Save(ctx context.Context, order *SalesOrder) error
}

// PurchaseOrderRepository persists purchase orders with the same rules as
// SalesOrderRepository.
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*PurchaseOrder, error)
	List(ctx context.Context, tenantID uuid.UUID, filter OrderFilter) ([]PurchaseOrder, int64, error)
	Create(ctx context.Context, order *PurchaseOrder) error
	Save(ctx context.Context, order *PurchaseOrder) error
}
