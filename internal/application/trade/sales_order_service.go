package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	appinventory "github.com/shopledger/backend/internal/application/inventory"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/domain/notification"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// SalesOrderService handles sales order business operations and keeps
// variant stock and the ledger in step with them.
type SalesOrderService struct {
	orders trade.SalesOrderRepository
	stock  *stockProtocol
	now    func() time.Time
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(orders trade.SalesOrderRepository, quantities inventory.QuantityStore, ledger inventory.StockLedger) *SalesOrderService {
	return &SalesOrderService{
		orders: orders,
		stock:  newStockProtocol(quantities, ledger),
		now:    time.Now,
	}
}

// SetMetrics sets the ledger metrics sink
func (s *SalesOrderService) SetMetrics(m appinventory.LedgerMetrics) {
	if m != nil {
		s.stock.metrics = m
	}
}

// Create validates availability, stores the order and takes the stock out.
// The returned events hold the order event, low-stock alerts and the
// order-created notification request.
func (s *SalesOrderService) Create(ctx context.Context, actor shared.Actor, req CreateSalesOrderRequest) (*SalesOrderResponse, []shared.DomainEvent, error) {
	in, err := req.DocumentInput.toDomain()
	if err != nil {
		return nil, nil, err
	}
	order, err := trade.NewSalesOrder(actor, req.CustomerType, req.CustomerID, in, s.now())
	if err != nil {
		return nil, nil, err
	}

	refs := lineRefs(order.Lines)
	snaps, err := s.stock.snapshots(ctx, actor.TenantID, refs)
	if err != nil {
		return nil, nil, err
	}
	if err := s.stock.check(ctx, "create_sale", snaps, func(i int, snap inventory.VariantSnapshot) error {
		return inventory.CheckCreateSale(snap, order.Lines[i].Quantity)
	}); err != nil {
		return nil, nil, err
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, nil, err
	}

	moves := make([]movement, len(order.Lines))
	for i, l := range order.Lines {
		moves[i] = movement{ref: refs[i], kind: inventory.MovementSale, quantity: l.Quantity, delta: inventory.SaleDelta(l.Quantity)}
	}
	if err := s.stock.applyPersisted(ctx, actor, "create_sale", order.ID, moves); err != nil {
		return nil, nil, err
	}

	events := []shared.DomainEvent{trade.NewSalesOrderEvent(trade.EventTypeSalesOrderCreated, order)}
	for _, d := range s.lowStockAlerts(ctx, actor, refs) {
		events = append(events, notification.NewRequestedEvent(d))
	}
	placed := notification.OrderCreated(order.ID, order.InvoiceNumber, actor.UserName).For(actor)
	events = append(events, notification.NewRequestedEvent(placed))

	resp := ToSalesOrderResponse(order)
	return &resp, events, nil
}

// lowStockAlerts re-reads every line's variant after the sale and returns
// one alert per line that sits below its minimum. Read failures only skip
// the alert.
func (s *SalesOrderService) lowStockAlerts(ctx context.Context, actor shared.Actor, refs []inventory.VariantRef) []notification.Draft {
	found := make([]*notification.Draft, len(refs))
	_ = forEach(len(refs), func(i int) error {
		snap, err := s.stock.quantities.GetVariant(ctx, actor.TenantID, refs[i])
		if err != nil {
			logger.L(ctx).Warn("Skipping low stock check",
				zap.String("variant", refs[i].String()),
				zap.Error(err))
			return nil
		}
		if d, ok := notification.LowStockAlert(notification.VariantLevel{
			ProductName:   snap.ProductName,
			PackingSize:   snap.PackingSize,
			Quantity:      snap.Quantity,
			MinStockLevel: snap.MinStockLevel,
		}); ok {
			d = d.For(actor)
			found[i] = &d
		}
		return nil
	})

	var out []notification.Draft
	for _, d := range found {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out
}

// Update revises the order lines and moves the difference.
// Old lines are matched by product and variant; unmatched new lines count
// from zero.
func (s *SalesOrderService) Update(ctx context.Context, actor shared.Actor, req UpdateSalesOrderRequest) (*SalesOrderResponse, []shared.DomainEvent, error) {
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
	if err := s.stock.check(ctx, "update_sale", snaps, func(i int, snap inventory.VariantSnapshot) error {
		return inventory.CheckUpdate(snap, olds[i], order.Lines[i].Quantity)
	}); err != nil {
		return nil, nil, err
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, nil, err
	}

	moves := make([]movement, len(order.Lines))
	for i, l := range order.Lines {
		moves[i] = movement{ref: refs[i], kind: inventory.MovementUpdateSale, quantity: l.Quantity, delta: inventory.UpdateSaleDelta(olds[i], l.Quantity)}
	}
	if err := s.stock.applyPersisted(ctx, actor, "update_sale", order.ID, moves); err != nil {
		return nil, nil, err
	}

	resp := ToSalesOrderResponse(order)
	return &resp, []shared.DomainEvent{trade.NewSalesOrderEvent(trade.EventTypeSalesOrderUpdated, order)}, nil
}

// Delete soft-deletes the order and returns every line's stock. There is
// no ceiling check on the returned quantity.
func (s *SalesOrderService) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]shared.DomainEvent, error) {
	order, err := s.orders.FindByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	if err := order.Delete(); err != nil {
		return nil, err
	}

	stock := s.stock.reversing()
	refs := lineRefs(order.Lines)
	if _, err := stock.snapshots(ctx, actor.TenantID, refs); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	moves := make([]movement, len(order.Lines))
	for i, l := range order.Lines {
		moves[i] = movement{ref: refs[i], kind: inventory.MovementDeleteSale, quantity: l.Quantity, delta: inventory.DeleteSaleDelta(l.Quantity)}
	}
	if err := stock.applyPersisted(ctx, actor, "delete_sale", order.ID, moves); err != nil {
		return nil, err
	}
	return []shared.DomainEvent{trade.NewSalesOrderEvent(trade.EventTypeSalesOrderDeleted, order)}, nil
}

// GetByID returns a live order
func (s *SalesOrderService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.find(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToSalesOrderResponse(order)
	return &resp, nil
}

// find hides soft-deleted orders
func (s *SalesOrderService) find(ctx context.Context, tenantID, id uuid.UUID) (*trade.SalesOrder, error) {
	order, err := s.orders.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if order.IsDeleted {
		return nil, shared.NewNotFoundError("Order")
	}
	return order, nil
}

// List returns a page of live orders, optionally for one customer
func (s *SalesOrderService) List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, req ListOrdersRequest) (shared.Paginated[SalesOrderResponse], error) {
	filter := req.toFilter(customerID)
	orders, total, err := s.orders.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[SalesOrderResponse]{}, err
	}
	out := make([]SalesOrderResponse, len(orders))
	for i := range orders {
		out[i] = ToSalesOrderResponse(&orders[i])
	}
	return shared.NewPaginated(out, total, filter.Page, filter.PageSize), nil
}
