package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// CustomerRepository persists customers. Lookups skip deleted rows.
type CustomerRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)
	List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Customer, int64, error)
	// ExistsByPhone ignores excludeID so an update can keep its own number
	ExistsByPhone(ctx context.Context, tenantID uuid.UUID, phone string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, c *Customer) error
}

// SupplierRepository persists suppliers. Lookups skip deleted rows.
type SupplierRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Supplier, error)
	List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Supplier, int64, error)
	ExistsByPhone(ctx context.Context, tenantID uuid.UUID, phone string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, s *Supplier) error
}
