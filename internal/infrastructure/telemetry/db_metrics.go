package telemetry

import (
	"context"
	"database/sql"

	"go.opentelemetry.io/otel/metric"
)

// RegisterDBPoolMetrics reports connection pool statistics through
// observable gauges read on each collection.
func RegisterDBPoolMetrics(meter metric.Meter, db *sql.DB) error {
	open, err := meter.Int64ObservableGauge("db_pool_open_connections",
		metric.WithDescription("Open connections, in use and idle"))
	if err != nil {
		return err
	}
	inUse, err := meter.Int64ObservableGauge("db_pool_in_use_connections",
		metric.WithDescription("Connections currently in use"))
	if err != nil {
		return err
	}
	idle, err := meter.Int64ObservableGauge("db_pool_idle_connections",
		metric.WithDescription("Idle connections"))
	if err != nil {
		return err
	}
	waits, err := meter.Int64ObservableCounter("db_pool_wait_count",
		metric.WithDescription("Connections waited for"))
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		s := db.Stats()
		o.ObserveInt64(open, int64(s.OpenConnections))
		o.ObserveInt64(inUse, int64(s.InUse))
		o.ObserveInt64(idle, int64(s.Idle))
		o.ObserveInt64(waits, s.WaitCount)
		return nil
	}, open, inUse, idle, waits)
	return err
}
