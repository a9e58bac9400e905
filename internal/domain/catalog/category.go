package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Category groups products for browsing and reporting
type Category struct {
	shared.TenantEntity
	Name        string
	Description string
	IsDeleted   bool
}

// NewCategory creates a category for a tenant
func NewCategory(tenantID uuid.UUID, name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewValidationError("Category name cannot exceed 100 characters")
	}
	return &Category{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		Description:  strings.TrimSpace(description),
	}, nil
}

// Rename updates name and description
func (c *Category) Rename(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Category name cannot be empty")
	}
	c.Name = name
	c.Description = strings.TrimSpace(description)
	c.Touch()
	return nil
}

// Delete soft-deletes the category
func (c *Category) Delete() {
	c.IsDeleted = true
	c.Touch()
}
