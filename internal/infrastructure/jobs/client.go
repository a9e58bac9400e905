package jobs

import (
	"context"
	"errors"

	"github.com/hibiken/asynq"
	appprinting "github.com/shopledger/backend/internal/application/printing"
)

// Client submits jobs to the queue
type Client struct {
	client *asynq.Client
	queue  string
}

// NewClient creates a queue client
func NewClient(redis asynq.RedisConnOpt, queue string) *Client {
	if queue == "" {
		queue = "default"
	}
	return &Client{client: asynq.NewClient(redis), queue: queue}
}

// EnqueueInvoiceArchive schedules an archive task. A task that is already
// queued for the same document is not an error.
func (c *Client) EnqueueInvoiceArchive(ctx context.Context, req appprinting.ArchiveRequest) error {
	task, err := NewInvoiceArchiveTask(req, c.queue)
	if err != nil {
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

// Close releases the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}

var _ appprinting.ArchiveQueue = (*Client)(nil)
