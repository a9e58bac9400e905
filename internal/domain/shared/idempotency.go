package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers client-supplied idempotency keys so a retried
// order submission is not applied to stock twice.
type IdempotencyStore interface {
	// MarkProcessed records the key with a TTL.
	// Returns true if the key was newly marked, false if it was already seen.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// IsProcessed checks if a key has already been recorded
	IsProcessed(ctx context.Context, key string) (bool, error)

	// Release forgets a key, used when the guarded request failed
	Release(ctx context.Context, key string) error

	Close() error
}
