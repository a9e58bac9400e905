package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Service exposes the stock ledger and manual adjustments
type Service struct {
	quantities inventory.QuantityStore
	ledger     inventory.StockLedger
	metrics    LedgerMetrics
}

// NewService creates a new inventory Service
func NewService(quantities inventory.QuantityStore, ledger inventory.StockLedger) *Service {
	return &Service{quantities: quantities, ledger: ledger, metrics: NopMetrics{}}
}

// SetMetrics sets the ledger metrics sink
func (s *Service) SetMetrics(m LedgerMetrics) {
	if m != nil {
		s.metrics = m
	}
}

// ListMovements returns a page of ledger entries
func (s *Service) ListMovements(ctx context.Context, tenantID uuid.UUID, req ListMovementsRequest) (shared.Paginated[MovementResponse], error) {
	filter, err := req.toFilter()
	if err != nil {
		return shared.Paginated[MovementResponse]{}, err
	}
	items, total, err := s.ledger.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[MovementResponse]{}, err
	}
	out := make([]MovementResponse, len(items))
	for i := range items {
		out[i] = ToMovementResponse(&items[i])
	}
	return shared.NewPaginated(out, total, filter.Page, filter.PageSize), nil
}

// Adjust applies a manual adjustment or customer return to one variant.
// A result below zero is rejected before anything is written.
func (s *Service) Adjust(ctx context.Context, actor shared.Actor, req AdjustStockRequest) (*MovementResponse, error) {
	kind := inventory.MovementType(req.Type)
	if kind != inventory.MovementAdjustment && kind != inventory.MovementReturn {
		return nil, shared.NewValidationError("Adjustment type must be adjustment or return")
	}
	if req.Delta == 0 {
		return nil, shared.NewValidationError("Adjustment delta cannot be zero")
	}
	if kind == inventory.MovementReturn && req.Delta < 0 {
		return nil, shared.NewValidationError("A return must add stock")
	}

	ref := inventory.VariantRef{ProductID: req.ProductID, VariantID: req.VariantID}
	snap, err := s.quantities.GetVariant(ctx, actor.TenantID, ref)
	if err != nil {
		return nil, err
	}
	if err := inventory.CheckAdjustment(*snap, req.Delta); err != nil {
		s.metrics.StockRejected(ctx, "adjustment")
		return nil, err
	}

	start := time.Now()
	balance, err := s.quantities.Adjust(ctx, actor.TenantID, ref, req.Delta)
	s.metrics.AdjustObserved(ctx, time.Since(start))
	if err != nil {
		return nil, err
	}

	quantity := req.Delta
	if quantity < 0 {
		quantity = -quantity
	}
	movement, err := inventory.NewStockMovement(actor, ref, kind, quantity, req.Delta, balance, req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Append(ctx, movement); err != nil {
		logger.L(ctx).Error("Stock adjusted but ledger append failed",
			zap.String("variant", ref.String()),
			zap.Int64("delta", req.Delta),
			zap.Error(err))
		return nil, err
	}
	s.metrics.MovementRecorded(ctx, kind, req.Delta)

	resp := ToMovementResponse(movement)
	return &resp, nil
}
