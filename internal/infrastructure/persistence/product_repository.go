package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func preloadVariants(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindByID finds a live product with its variants
func (r *GormProductRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	err := r.db.WithContext(ctx).
		Scopes(tenantScope(tenantID)).
		Preload("Variants", preloadVariants).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Product")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindViewByID finds a product together with its category name
func (r *GormProductRepository) FindViewByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.ProductView, error) {
	p, err := r.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	names, err := r.categoryNames(ctx, tenantID, []catalog.Product{*p})
	if err != nil {
		return nil, err
	}
	return &catalog.ProductView{Product: *p, CategoryName: categoryName(names, p.CategoryID)}, nil
}

// List returns a page of live products with category names
func (r *GormProductRepository) List(ctx context.Context, tenantID uuid.UUID, filter catalog.ProductFilter) ([]catalog.ProductView, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Scopes(tenantScope(tenantID)).
		Where("is_deleted = ?", false)
	if s := strings.TrimSpace(filter.Search); s != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ProductModel
	if err := paginate(query, filter.Filter, ProductSortFields).
		Preload("Variants", preloadVariants).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	products := make([]catalog.Product, len(rows))
	for i := range rows {
		products[i] = *rows[i].ToDomain()
	}
	names, err := r.categoryNames(ctx, tenantID, products)
	if err != nil {
		return nil, 0, err
	}
	views := make([]catalog.ProductView, len(products))
	for i, p := range products {
		views[i] = catalog.ProductView{Product: p, CategoryName: categoryName(names, p.CategoryID)}
	}
	return views, total, nil
}

// categoryNames loads the names of live categories referenced by products
func (r *GormProductRepository) categoryNames(ctx context.Context, tenantID uuid.UUID, products []catalog.Product) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		if p.CategoryID != nil {
			ids = append(ids, *p.CategoryID)
		}
	}
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var cats []models.CategoryModel
	if err := r.db.WithContext(ctx).
		Scopes(tenantScope(tenantID)).
		Where("id IN ? AND is_deleted = ?", ids, false).
		Find(&cats).Error; err != nil {
		return nil, err
	}
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names, nil
}

func categoryName(names map[uuid.UUID]string, id *uuid.UUID) string {
	if id == nil {
		return catalog.UnknownCategoryName
	}
	if n, ok := names[*id]; ok {
		return n
	}
	return catalog.UnknownCategoryName
}

// Create inserts a product and its variants, opening quantities included
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	model := &models.ProductModel{}
	model.FromDomain(product)
	return r.db.WithContext(ctx).Create(model).Error
}

// Save updates product details and variant attributes. Existing variant
// quantities are never written; new variants are inserted as given.
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	model := &models.ProductModel{}
	model.FromDomain(product)
	variants := model.Variants
	model.Variants = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ProductModel{}).
			Scopes(tenantScope(product.TenantID)).
			Where("id = ?", product.ID).
			Updates(map[string]any{
				"category_id": model.CategoryID,
				"name":        model.Name,
				"description": model.Description,
				"is_deleted":  model.IsDeleted,
				"updated_at":  model.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError("Product")
		}

		for i := range variants {
			v := &variants[i]
			res := tx.Model(&models.ProductVariantModel{}).
				Where("tenant_id = ? AND product_id = ? AND id = ?", v.TenantID, v.ProductID, v.ID).
				Select(models.VariantUpdatableColumns).
				Updates(v)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				if err := tx.Create(v).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a live category
func (r *GormCategoryRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).
		Scopes(tenantScope(tenantID)).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Category")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns all live categories ordered by name
func (r *GormCategoryRepository) List(ctx context.Context, tenantID uuid.UUID) ([]catalog.Category, error) {
	var rows []models.CategoryModel
	if err := r.db.WithContext(ctx).
		Scopes(tenantScope(tenantID)).
		Where("is_deleted = ?", false).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]catalog.Category, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	model := &models.CategoryModel{}
	model.FromDomain(category)
	return r.db.WithContext(ctx).Save(model).Error
}
