package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultSlowQuery = 200 * time.Millisecond

// DBTracingConfig controls gorm instrumentation
type DBTracingConfig struct {
	Enabled   bool
	FullSQL   bool // include bound variables in db.statement
	SlowQuery time.Duration
	DBName    string
}

type queryStartKey struct{}

// RegisterDBTracing installs the otelgorm plugin and a callback pair that
// annotates each span with rows affected, table and slow query markers.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.SlowQuery <= 0 {
		cfg.SlowQuery = defaultSlowQuery
	}
	if cfg.DBName == "" {
		cfg.DBName = "postgresql"
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.FullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	before := func(tx *gorm.DB) {
		if tx.Statement.Context != nil {
			tx.Statement.Context = context.WithValue(tx.Statement.Context, queryStartKey{}, time.Now())
		}
	}
	after := func(tx *gorm.DB) { annotateSpan(tx, cfg.SlowQuery) }

	cb := db.Callback()
	if err := cb.Create().Before("gorm:create").Register("span_timing:before_create", before); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("span_timing:after_create", after); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("span_timing:before_query", before); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("span_timing:after_query", after); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("span_timing:before_update", before); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("span_timing:after_update", after); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("span_timing:before_delete", before); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("span_timing:after_delete", after); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register("span_timing:before_row", before); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register("span_timing:after_row", after); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("span_timing:before_raw", before); err != nil {
		return err
	}
	if err := cb.Raw().After("gorm:raw").Register("span_timing:after_raw", after); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Bool("full_sql", cfg.FullSQL),
		zap.Duration("slow_query", cfg.SlowQuery))
	return nil
}

func annotateSpan(tx *gorm.DB, slow time.Duration) {
	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", tx.Statement.RowsAffected))
	if tx.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", tx.Statement.Table))
	}
	if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, tx.Error.Error())
		span.RecordError(tx.Error)
	}
	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		if elapsed := time.Since(start); elapsed > slow {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
		}
	}
}
