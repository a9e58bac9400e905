// Package jobs runs background work on asynq queues backed by Redis.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	appprinting "github.com/shopledger/backend/internal/application/printing"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	// TaskInvoiceArchive renders a sales document and stores it in S3
	TaskInvoiceArchive = "invoice:archive"

	archiveMaxRetry = 5
	archiveTimeout  = 2 * time.Minute
)

// NewInvoiceArchiveTask builds the archive task. The task id makes repeated
// enqueues of the same document collapse into one.
func NewInvoiceArchiveTask(req appprinting.ArchiveRequest, queue string) (*asynq.Task, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInvoiceArchive, body,
		asynq.Queue(queue),
		asynq.MaxRetry(archiveMaxRetry),
		asynq.Timeout(archiveTimeout),
		asynq.TaskID(appprinting.ArchiveKey(req.TenantID, req.OrderID, req.Kind)),
	), nil
}

// Archiver performs the archive work
type Archiver interface {
	Archive(ctx context.Context, req appprinting.ArchiveRequest) error
}

// invoiceArchiveHandler decodes the payload and delegates to the archiver.
// Malformed payloads are not retried.
func invoiceArchiveHandler(archiver Archiver) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var req appprinting.ArchiveRequest
		if err := json.Unmarshal(t.Payload(), &req); err != nil {
			return fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
		}
		if !req.Kind.IsValid() {
			return fmt.Errorf("unknown document kind %q: %w", req.Kind, asynq.SkipRetry)
		}
		if err := archiver.Archive(ctx, req); err != nil {
			logger.L(ctx).Warn("Invoice archive attempt failed",
				zap.String("order_id", req.OrderID.String()),
				zap.String("kind", string(req.Kind)),
				zap.Error(err))
			return err
		}
		return nil
	}
}
