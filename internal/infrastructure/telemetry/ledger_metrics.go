package telemetry

import (
	"context"
	"fmt"
	"time"

	appinventory "github.com/shopledger/backend/internal/application/inventory"
	"github.com/shopledger/backend/internal/domain/inventory"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// LedgerMetrics records stock engine activity as OpenTelemetry instruments
type LedgerMetrics struct {
	movements metric.Int64Counter
	units     metric.Int64Counter
	rejected  metric.Int64Counter
	adjust    metric.Float64Histogram
}

// NewLedgerMetrics creates the stock ledger instruments on meter
func NewLedgerMetrics(meter metric.Meter) (*LedgerMetrics, error) {
	movements, err := meter.Int64Counter("stock_movements_total",
		metric.WithDescription("Ledger entries written"),
		metric.WithUnit("{movement}"))
	if err != nil {
		return nil, fmt.Errorf("create movements counter: %w", err)
	}
	units, err := meter.Int64Counter("stock_movement_units_total",
		metric.WithDescription("Absolute units moved by ledger entries"),
		metric.WithUnit("{unit}"))
	if err != nil {
		return nil, fmt.Errorf("create units counter: %w", err)
	}
	rejected, err := meter.Int64Counter("stock_rejections_total",
		metric.WithDescription("Operations refused for insufficient stock"),
		metric.WithUnit("{operation}"))
	if err != nil {
		return nil, fmt.Errorf("create rejections counter: %w", err)
	}
	adjust, err := meter.Float64Histogram("stock_adjust_duration_seconds",
		metric.WithDescription("Latency of the atomic quantity adjust"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1))
	if err != nil {
		return nil, fmt.Errorf("create adjust histogram: %w", err)
	}
	return &LedgerMetrics{movements: movements, units: units, rejected: rejected, adjust: adjust}, nil
}

func (m *LedgerMetrics) MovementRecorded(ctx context.Context, kind inventory.MovementType, delta int64) {
	attrs := metric.WithAttributes(attribute.String("movement_type", string(kind)))
	m.movements.Add(ctx, 1, attrs)
	if delta < 0 {
		delta = -delta
	}
	m.units.Add(ctx, delta, attrs)
}

func (m *LedgerMetrics) StockRejected(ctx context.Context, operation string) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

func (m *LedgerMetrics) AdjustObserved(ctx context.Context, elapsed time.Duration) {
	m.adjust.Record(ctx, elapsed.Seconds())
}

var _ appinventory.LedgerMetrics = (*LedgerMetrics)(nil)
