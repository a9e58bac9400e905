package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Repository persists notifications. List skips deleted rows and returns
// the newest first.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Notification, error)
	List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Notification, int64, error)
	Save(ctx context.Context, n *Notification) error
}
