package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	appinventory "github.com/shopledger/backend/internal/application/inventory"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// lineLimit bounds the per-request fan-out against the quantity store
const lineLimit = 8

// movement is one planned stock change derived from an order line
type movement struct {
	ref      inventory.VariantRef
	kind     inventory.MovementType
	quantity int64
	delta    int64
}

// stockProtocol reads and moves variant stock for the order workflows.
// Lines are processed in parallel; when several fail, the error of the
// lowest line index is returned so callers see a stable message.
type stockProtocol struct {
	quantities inventory.QuantityStore
	ledger     inventory.StockLedger
	metrics    appinventory.LedgerMetrics
}

func newStockProtocol(quantities inventory.QuantityStore, ledger inventory.StockLedger) *stockProtocol {
	return &stockProtocol{
		quantities: quantities,
		ledger:     ledger,
		metrics:    appinventory.NopMetrics{},
	}
}

// reversing returns a protocol that also reaches variants of soft-deleted
// products, for returning the stock of orders being deleted
func (p *stockProtocol) reversing() *stockProtocol {
	archived, ok := p.quantities.(inventory.ArchivedVariantStore)
	if !ok {
		return p
	}
	cp := *p
	cp.quantities = archived.IncludingDeleted()
	return &cp
}

// forEach runs fn for every index in parallel and returns the error of the
// lowest failing index. Siblings are not cancelled, so a later line's
// failure can never mask an earlier one.
func forEach(n int, fn func(i int) error) error {
	errs := make([]error, n)
	var g errgroup.Group
	g.SetLimit(lineLimit)
	for i := range n {
		g.Go(func() error {
			errs[i] = fn(i)
			return nil
		})
	}
	_ = g.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// snapshots reads the current state of every referenced variant
func (p *stockProtocol) snapshots(ctx context.Context, tenantID uuid.UUID, refs []inventory.VariantRef) ([]inventory.VariantSnapshot, error) {
	out := make([]inventory.VariantSnapshot, len(refs))
	err := forEach(len(refs), func(i int) error {
		snap, err := p.quantities.GetVariant(ctx, tenantID, refs[i])
		if err != nil {
			return err
		}
		out[i] = *snap
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// check runs a sufficiency check per line, in line order
func (p *stockProtocol) check(ctx context.Context, operation string, snaps []inventory.VariantSnapshot, fn func(i int, snap inventory.VariantSnapshot) error) error {
	for i, snap := range snaps {
		if err := fn(i, snap); err != nil {
			p.metrics.StockRejected(ctx, operation)
			return err
		}
	}
	return nil
}

// apply adjusts every variant and appends one ledger entry per movement.
// BalanceAfter is the quantity returned by the atomic adjustment.
// Movements with a zero delta still produce a ledger entry.
func (p *stockProtocol) apply(ctx context.Context, actor shared.Actor, moves []movement) error {
	return forEach(len(moves), func(i int) error {
		m := moves[i]
		start := time.Now()
		balance, err := p.quantities.Adjust(ctx, actor.TenantID, m.ref, m.delta)
		p.metrics.AdjustObserved(ctx, time.Since(start))
		if err != nil {
			return err
		}
		entry, err := inventory.NewStockMovement(actor, m.ref, m.kind, m.quantity, m.delta, balance, "")
		if err != nil {
			return err
		}
		if err := p.ledger.Append(ctx, entry); err != nil {
			logger.L(ctx).Error("Stock adjusted but ledger append failed",
				zap.String("variant", m.ref.String()),
				zap.String("type", m.kind.String()),
				zap.Int64("delta", m.delta),
				zap.Int64("balance_after", balance),
				zap.Error(err))
			return err
		}
		p.metrics.MovementRecorded(ctx, m.kind, m.delta)
		return nil
	})
}

// applyPersisted applies movements for an order that is already stored.
// A failure here leaves the order persisted and possibly some lines moved.
func (p *stockProtocol) applyPersisted(ctx context.Context, actor shared.Actor, operation string, orderID uuid.UUID, moves []movement) error {
	if err := p.apply(ctx, actor, moves); err != nil {
		// TODO(ledger): add a compensating transaction that reverses the
		// movements already applied and restores the order to its previous state.
		logger.L(ctx).Error("Order persisted but stock adjustment failed",
			zap.String("operation", operation),
			zap.String("order_id", orderID.String()),
			zap.Error(err))
		return err
	}
	return nil
}

func lineRefs(lines []trade.Line) []inventory.VariantRef {
	refs := make([]inventory.VariantRef, len(lines))
	for i, l := range lines {
		refs[i] = l.Ref()
	}
	return refs
}
