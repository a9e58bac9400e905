package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// PaymentFilter narrows payment listings
type PaymentFilter struct {
	shared.Filter
	PartyType PartyType
	PartyID   *uuid.UUID
}

// PaymentRepository persists payments. FindByID and List skip deleted rows.
type PaymentRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Payment, error)
	List(ctx context.Context, tenantID uuid.UUID, filter PaymentFilter) ([]Payment, int64, error)
	Save(ctx context.Context, p *Payment) error
}
