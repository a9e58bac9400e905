package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/catalog"
)

// CategoryService handles product categories
type CategoryService struct {
	categories catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create adds a category
func (s *CategoryService) Create(ctx context.Context, tenantID uuid.UUID, req CategoryRequest) (*CategoryResponse, error) {
	c, err := catalog.NewCategory(tenantID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(c)
	return &resp, nil
}

// Update renames a category
func (s *CategoryService) Update(ctx context.Context, tenantID, id uuid.UUID, req CategoryRequest) (*CategoryResponse, error) {
	c, err := s.categories.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := c.Rename(req.Name, req.Description); err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(c)
	return &resp, nil
}

// List returns every live category
func (s *CategoryService) List(ctx context.Context, tenantID uuid.UUID) ([]CategoryResponse, error) {
	list, err := s.categories.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryResponse, len(list))
	for i := range list {
		out[i] = ToCategoryResponse(&list[i])
	}
	return out, nil
}

// Delete soft-deletes a category. Its products show "Unknown Category".
func (s *CategoryService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	c, err := s.categories.FindByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	c.Delete()
	return s.categories.Save(ctx, c)
}
