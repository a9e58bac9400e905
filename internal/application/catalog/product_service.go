package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// openingStockNote marks ledger entries written when a variant is created
// with stock already on hand
const openingStockNote = "Opening stock"

// ProductService handles product catalog operations
type ProductService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	ledger     inventory.StockLedger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, categories catalog.CategoryRepository, ledger inventory.StockLedger) *ProductService {
	return &ProductService{products: products, categories: categories, ledger: ledger}
}

// Create adds a product. Opening stock is written straight onto the new
// variants and recorded as adjustment entries.
func (s *ProductService) Create(ctx context.Context, actor shared.Actor, req CreateProductRequest) (*ProductResponse, error) {
	if err := s.ensureCategory(ctx, actor.TenantID, req.CategoryID); err != nil {
		return nil, err
	}
	specs := make([]catalog.VariantSpec, len(req.Variants))
	for i, v := range req.Variants {
		specs[i] = v.spec()
	}
	product, err := catalog.NewProduct(actor.TenantID, req.Name, req.Description, req.CategoryID, specs)
	if err != nil {
		return nil, err
	}
	opening := make(map[uuid.UUID]int64)
	for i, v := range req.Variants {
		product.Variants[i].Quantity = v.OpeningStock
		opening[product.Variants[i].ID] = v.OpeningStock
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.recordOpeningStock(ctx, actor, product, opening)
	return s.GetByID(ctx, actor.TenantID, product.ID)
}

// Update edits product details and variant attributes. Quantities of
// existing variants are never touched here.
func (s *ProductService) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, actor.TenantID, req.CategoryID); err != nil {
		return nil, err
	}
	if err := product.UpdateDetails(req.Name, req.Description, req.CategoryID); err != nil {
		return nil, err
	}

	opening := make(map[uuid.UUID]int64)
	for _, v := range req.Variants {
		if v.ID != nil {
			if err := product.UpdateVariant(*v.ID, v.spec()); err != nil {
				return nil, err
			}
			continue
		}
		added, err := product.AddVariant(v.spec())
		if err != nil {
			return nil, err
		}
		added.Quantity = v.OpeningStock
		opening[added.ID] = v.OpeningStock
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	s.recordOpeningStock(ctx, actor, product, opening)
	return s.GetByID(ctx, actor.TenantID, product.ID)
}

// recordOpeningStock appends adjustment entries for new variants that
// start with stock. Failures are logged; the product is already stored.
func (s *ProductService) recordOpeningStock(ctx context.Context, actor shared.Actor, product *catalog.Product, opening map[uuid.UUID]int64) {
	for variantID, qty := range opening {
		if qty <= 0 {
			continue
		}
		ref := inventory.VariantRef{ProductID: product.ID, VariantID: variantID}
		entry, err := inventory.NewStockMovement(actor, ref, inventory.MovementAdjustment, qty, qty, qty, openingStockNote)
		if err == nil {
			err = s.ledger.Append(ctx, entry)
		}
		if err != nil {
			logger.L(ctx).Error("Failed to record opening stock",
				zap.String("variant", ref.String()),
				zap.Int64("quantity", qty),
				zap.Error(err))
		}
	}
}

func (s *ProductService) ensureCategory(ctx context.Context, tenantID uuid.UUID, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	_, err := s.categories.FindByID(ctx, tenantID, *categoryID)
	return err
}

// GetByID returns a product with its category name
func (s *ProductService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ProductResponse, error) {
	view, err := s.products.FindViewByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(view)
	return &resp, nil
}

// List returns a page of products
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, req ListProductsRequest) (shared.Paginated[ProductResponse], error) {
	filter := req.toFilter()
	views, total, err := s.products.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	out := make([]ProductResponse, len(views))
	for i := range views {
		out[i] = ToProductResponse(&views[i])
	}
	return shared.NewPaginated(out, total, filter.Page, filter.PageSize), nil
}

// Delete soft-deletes a product. Existing orders keep their frozen lines.
func (s *ProductService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	product, err := s.products.FindByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := product.Delete(); err != nil {
		return err
	}
	return s.products.Save(ctx, product)
}
