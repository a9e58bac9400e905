package inventory

import (
	"context"
	"time"

	"github.com/shopledger/backend/internal/domain/inventory"
)

// LedgerMetrics records stock engine activity
type LedgerMetrics interface {
	MovementRecorded(ctx context.Context, kind inventory.MovementType, delta int64)
	StockRejected(ctx context.Context, operation string)
	AdjustObserved(ctx context.Context, elapsed time.Duration)
}

// NopMetrics discards everything
type NopMetrics struct{}

func (NopMetrics) MovementRecorded(context.Context, inventory.MovementType, int64) {}
func (NopMetrics) StockRejected(context.Context, string)                           {}
func (NopMetrics) AdjustObserved(context.Context, time.Duration)                   {}
