package jobs

import (
	"context"
	"errors"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// WorkerConfig collects what the worker needs to start
type WorkerConfig struct {
	Redis       asynq.RedisConnOpt
	Concurrency int
	Queue       string
	Logger      *zap.Logger
	Archiver    Archiver
}

// Worker wraps the asynq server and its handlers
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewWorker constructs a worker for the configured queue
func NewWorker(cfg WorkerConfig) (*Worker, error) {
	if cfg.Archiver == nil {
		return nil, errors.New("jobs: archiver is required")
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	if cfg.Queue == "" {
		cfg.Queue = "default"
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	srv := asynq.NewServer(cfg.Redis, asynq.Config{
		Concurrency: cfg.Concurrency,
		Queues:      map[string]int{cfg.Queue: 1},
		Logger:      cfg.Logger.Named("asynq").Sugar(),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			cfg.Logger.Error("Background task failed",
				zap.String("type", task.Type()),
				zap.Error(err))
		}),
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskInvoiceArchive, invoiceArchiveHandler(cfg.Archiver))

	return &Worker{server: srv, mux: mux, logger: cfg.Logger}, nil
}

// Start begins processing in the background
func (w *Worker) Start() error {
	w.logger.Info("Background worker starting")
	return w.server.Start(w.mux)
}

// Shutdown waits for active tasks and stops the worker
func (w *Worker) Shutdown() {
	w.server.Shutdown()
	w.logger.Info("Background worker stopped")
}
