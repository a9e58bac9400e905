package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	appinventory "github.com/shopledger/backend/internal/application/inventory"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
)

// PurchaseOrderService handles purchase order business operations. It is
// the mirror of SalesOrderService: receiving adds stock and deleting a
// purchase takes it back out.
type PurchaseOrderService struct {
	orders trade.PurchaseOrderRepository
	stock  *stockProtocol
	now    func() time.Time
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(orders trade.PurchaseOrderRepository, quantities inventory.QuantityStore, ledger inventory.StockLedger) *PurchaseOrderService {
	return &PurchaseOrderService{
		orders: orders,
		stock:  newStockProtocol(quantities, ledger),
		now:    time.Now,
	}
}

// SetMetrics sets the ledger metrics sink
func (s *PurchaseOrderService) SetMetrics(m appinventory.LedgerMetrics) {
	if m != nil {
		s.stock.metrics = m
	}
}

// Create stores the purchase order and adds every line to stock
func (s *PurchaseOrderService) Create(ctx context.Context, actor shared.Actor, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, []shared.DomainEvent, error) {
	in, err := req.DocumentInput.toDomain()
	if err != nil {
		return nil, nil, err
	}
	order, err := trade.NewPurchaseOrder(actor, req.SupplierID, in, s.now())
	if err != nil {
		return nil, nil, err
	}

	refs := lineRefs(order.Lines)
	if _, err := s.stock.snapshots(ctx, actor.TenantID, refs); err != nil {
		return nil, nil, err
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, nil, err
	}

	moves := make([]movement, len(order.Lines))
	for i, l := range order.Lines {
		moves[i] = movement{ref: refs[i], kind: inventory.MovementPurchase, quantity: l.Quantity, delta: inventory.PurchaseDelta(l.Quantity)}
	}
	if err := s.stock.applyPersisted(ctx, actor, "create_purchase", order.ID, moves); err != nil {
		return nil, nil, err
	}

	resp := ToPurchaseOrderResponse(order)
	return &resp, []shared.DomainEvent{trade.NewPurchaseOrderEvent(trade.EventTypePurchaseOrderCreated, order)}, nil
}

// Update revises the lines and moves the difference. Old lines are matched
// by variant only.
func (s *PurchaseOrderService) Update(ctx context.Context, actor shared.Actor, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, []shared.DomainEvent, error) {
	in, err := req.DocumentInput.toDomain()
	if err != nil {
		return nil, nil, err
	}
	order, err := s.orders.FindByID(ctx, actor.TenantID, req.ID)
	if err != nil {
		return nil, nil, err
	}

	olds := make([]int64, len(in.Lines))
	for i, l := range in.Lines {
		olds[i] = order.PreviousQuantity(l)
	}
	if err := order.Revise(in); err != nil {
		return nil, nil, err
	}

	refs := lineRefs(order.Lines)
	snaps, err := s.stock.snapshots(ctx, actor.TenantID, refs)
	if err != nil {
		return nil, nil, err
	}
	if err := s.stock.check(ctx, "update_purchase", snaps, func(i int, snap inventory.VariantSnapshot) error {
		return inventory.CheckUpdate(snap, olds[i], order.Lines[i].Quantity)
	}); err != nil {
		return nil, nil, err
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, nil, err
	}

	moves := make([]movement, len(order.Lines))
	for i, l := range order.Lines {
		moves[i] = movement{ref: refs[i], kind: inventory.MovementUpdatePurchase, quantity: l.Quantity, delta: inventory.UpdatePurchaseDelta(olds[i], l.Quantity)}
	}
	if err := s.stock.applyPersisted(ctx, actor, "update_purchase", order.ID, moves); err != nil {
		return nil, nil, err
	}

	resp := ToPurchaseOrderResponse(order)
	return &resp, []shared.DomainEvent{trade.NewPurchaseOrderEvent(trade.EventTypePurchaseOrderUpdated, order)}, nil
}

// Delete soft-deletes the purchase order and removes its stock. Every line
// must still be on hand.
func (s *PurchaseOrderService) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]shared.DomainEvent, error) {
	order, err := s.orders.FindByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	if err := order.Delete(); err != nil {
		return nil, err
	}

	stock := s.stock.reversing()
	refs := lineRefs(order.Lines)
	snaps, err := stock.snapshots(ctx, actor.TenantID, refs)
	if err != nil {
		return nil, err
	}
	if err := stock.check(ctx, "delete_purchase", snaps, func(i int, snap inventory.VariantSnapshot) error {
		return inventory.CheckDeletePurchase(snap, order.Lines[i].Quantity)
	}); err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	moves := make([]movement, len(order.Lines))
	for i, l := range order.Lines {
		moves[i] = movement{ref: refs[i], kind: inventory.MovementDeletePurchase, quantity: l.Quantity, delta: inventory.DeletePurchaseDelta(l.Quantity)}
	}
	if err := stock.applyPersisted(ctx, actor, "delete_purchase", order.ID, moves); err != nil {
		return nil, err
	}
	return []shared.DomainEvent{trade.NewPurchaseOrderEvent(trade.EventTypePurchaseOrderDeleted, order)}, nil
}

// GetByID returns a live purchase order
func (s *PurchaseOrderService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orders.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if order.IsDeleted {
		return nil, shared.NewNotFoundError("Purchase order")
	}
	resp := ToPurchaseOrderResponse(order)
	return &resp, nil
}

// List returns a page of live purchase orders, optionally for one supplier
func (s *PurchaseOrderService) List(ctx context.Context, tenantID uuid.UUID, supplierID *uuid.UUID, req ListOrdersRequest) (shared.Paginated[PurchaseOrderResponse], error) {
	filter := req.toFilter(supplierID)
	orders, total, err := s.orders.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[PurchaseOrderResponse]{}, err
	}
	out := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		out[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return shared.NewPaginated(out, total, filter.Page, filter.PageSize), nil
}
