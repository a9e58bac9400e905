package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// UnknownCategoryName is shown for products without a resolvable category
const UnknownCategoryName = "Unknown Category"

// ProductView is a product joined with its category name
type ProductView struct {
	Product      Product
	CategoryName string
}

// ProductFilter narrows product listings
type ProductFilter struct {
	shared.Filter
	CategoryID *uuid.UUID
}

// ProductRepository defines the interface for product persistence.
// Save never writes variant quantities of existing variants.
type ProductRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	FindViewByID(ctx context.Context, tenantID, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, tenantID uuid.UUID, filter ProductFilter) ([]ProductView, int64, error)
	Create(ctx context.Context, product *Product) error
	Save(ctx context.Context, product *Product) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Category, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]Category, error)
	Save(ctx context.Context, category *Category) error
}
