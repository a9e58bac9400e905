package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memProducts struct {
	items      map[uuid.UUID]catalog.Product
	categories *memCategories
}

func copyProduct(p catalog.Product) catalog.Product {
	p.Variants = append([]catalog.Variant(nil), p.Variants...)
	return p
}

func (m *memProducts) FindByID(_ context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	p, ok := m.items[id]
	if !ok || p.TenantID != tenantID || p.IsDeleted {
		return nil, shared.NewNotFoundError("Product")
	}
	cp := copyProduct(p)
	return &cp, nil
}

func (m *memProducts) FindViewByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.ProductView, error) {
	p, err := m.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return &catalog.ProductView{Product: *p, CategoryName: m.categories.nameOf(p.CategoryID)}, nil
}

func (m *memProducts) List(_ context.Context, tenantID uuid.UUID, _ catalog.ProductFilter) ([]catalog.ProductView, int64, error) {
	var out []catalog.ProductView
	for _, p := range m.items {
		if p.TenantID == tenantID && !p.IsDeleted {
			out = append(out, catalog.ProductView{Product: copyProduct(p), CategoryName: m.categories.nameOf(p.CategoryID)})
		}
	}
	return out, int64(len(out)), nil
}

func (m *memProducts) Create(_ context.Context, p *catalog.Product) error {
	m.items[p.ID] = copyProduct(*p)
	return nil
}

// Save keeps stored quantities of existing variants like the gorm repository
func (m *memProducts) Save(_ context.Context, p *catalog.Product) error {
	stored := m.items[p.ID]
	next := copyProduct(*p)
	for i := range next.Variants {
		for _, old := range stored.Variants {
			if old.ID == next.Variants[i].ID {
				next.Variants[i].Quantity = old.Quantity
			}
		}
	}
	m.items[p.ID] = next
	return nil
}

type memCategories struct {
	items map[uuid.UUID]catalog.Category
}

func (m *memCategories) nameOf(id *uuid.UUID) string {
	if id == nil {
		return catalog.UnknownCategoryName
	}
	c, ok := m.items[*id]
	if !ok || c.IsDeleted {
		return catalog.UnknownCategoryName
	}
	return c.Name
}

func (m *memCategories) FindByID(_ context.Context, tenantID, id uuid.UUID) (*catalog.Category, error) {
	c, ok := m.items[id]
	if !ok || c.TenantID != tenantID || c.IsDeleted {
		return nil, shared.NewNotFoundError("Category")
	}
	return &c, nil
}

func (m *memCategories) List(_ context.Context, tenantID uuid.UUID) ([]catalog.Category, error) {
	var out []catalog.Category
	for _, c := range m.items {
		if c.TenantID == tenantID && !c.IsDeleted {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategories) Save(_ context.Context, c *catalog.Category) error {
	m.items[c.ID] = *c
	return nil
}

type memLedger struct {
	entries []inventory.StockMovement
}

func (l *memLedger) Append(_ context.Context, m *inventory.StockMovement) error {
	l.entries = append(l.entries, *m)
	return nil
}

func (l *memLedger) List(_ context.Context, _ uuid.UUID, _ inventory.StockMovementFilter) ([]inventory.StockMovement, int64, error) {
	return l.entries, int64(len(l.entries)), nil
}

var testActor = shared.Actor{TenantID: uuid.New(), UserID: uuid.New(), UserName: "asha"}

type catalogFixture struct {
	products   *ProductService
	categories *CategoryService
	ledger     *memLedger
}

func newCatalogFixture() catalogFixture {
	cats := &memCategories{items: map[uuid.UUID]catalog.Category{}}
	prods := &memProducts{items: map[uuid.UUID]catalog.Product{}, categories: cats}
	ledger := &memLedger{}
	return catalogFixture{
		products:   NewProductService(prods, cats, ledger),
		categories: NewCategoryService(cats),
		ledger:     ledger,
	}
}

func variant(packing string, opening, min int64) VariantInput {
	return VariantInput{
		PackingSize:   packing,
		RetailPrice:   decimal.NewFromInt(60),
		TaxRate:       decimal.NewFromInt(5),
		MinStockLevel: min,
		OpeningStock:  opening,
	}
}

func TestProductService_CreateRecordsOpeningStock(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()
	cat, err := f.categories.Create(ctx, testActor.TenantID, CategoryRequest{Name: "Grains"})
	require.NoError(t, err)

	resp, err := f.products.Create(ctx, testActor, CreateProductRequest{
		Name:       "Rice",
		CategoryID: &cat.ID,
		Variants:   []VariantInput{variant("1kg", 12, 5), variant("5kg", 0, 2), variant("10kg", 3, 5)},
	})

	require.NoError(t, err)
	assert.Equal(t, "Grains", resp.CategoryName)
	require.Len(t, resp.Variants, 3)
	assert.Equal(t, "In Stock", resp.Variants[0].StockStatus)
	assert.Equal(t, "Out of Stock", resp.Variants[1].StockStatus)
	assert.Equal(t, "Low Stock", resp.Variants[2].StockStatus)

	require.Len(t, f.ledger.entries, 2)
	for _, e := range f.ledger.entries {
		assert.Equal(t, inventory.MovementAdjustment, e.Type)
		assert.Equal(t, e.Quantity, e.Delta)
		assert.Equal(t, e.Quantity, e.BalanceAfter)
		assert.Equal(t, openingStockNote, e.Note)
	}
}

func TestProductService_CreateUnknownCategory(t *testing.T) {
	f := newCatalogFixture()
	missing := uuid.New()

	_, err := f.products.Create(context.Background(), testActor, CreateProductRequest{
		Name:       "Rice",
		CategoryID: &missing,
		Variants:   []VariantInput{variant("1kg", 0, 0)},
	})

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductService_UpdateNeverTouchesQuantity(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()
	created, err := f.products.Create(ctx, testActor, CreateProductRequest{
		Name:     "Rice",
		Variants: []VariantInput{variant("1kg", 12, 5)},
	})
	require.NoError(t, err)

	existing := variant("1 kg", 999, 20)
	existing.ID = &created.Variants[0].ID
	updated, err := f.products.Update(ctx, testActor, created.ID, UpdateProductRequest{
		Name:     "Basmati Rice",
		Variants: []VariantInput{existing, variant("25kg", 4, 1)},
	})

	require.NoError(t, err)
	assert.Equal(t, "Basmati Rice", updated.Name)
	assert.Equal(t, catalog.UnknownCategoryName, updated.CategoryName)
	require.Len(t, updated.Variants, 2)
	assert.Equal(t, int64(12), updated.Variants[0].Quantity)
	assert.Equal(t, "Low Stock", updated.Variants[0].StockStatus)
	assert.Equal(t, int64(4), updated.Variants[1].Quantity)
	assert.Len(t, f.ledger.entries, 2)
}

func TestCategoryService_DeleteFallsBackToUnknown(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()
	cat, err := f.categories.Create(ctx, testActor.TenantID, CategoryRequest{Name: "Oils"})
	require.NoError(t, err)
	product, err := f.products.Create(ctx, testActor, CreateProductRequest{
		Name:       "Sunflower Oil",
		CategoryID: &cat.ID,
		Variants:   []VariantInput{variant("1l", 0, 0)},
	})
	require.NoError(t, err)

	require.NoError(t, f.categories.Delete(ctx, testActor.TenantID, cat.ID))

	got, err := f.products.GetByID(ctx, testActor.TenantID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.UnknownCategoryName, got.CategoryName)
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()
	created, err := f.products.Create(ctx, testActor, CreateProductRequest{
		Name:     "Rice",
		Variants: []VariantInput{variant("1kg", 0, 0)},
	})
	require.NoError(t, err)

	require.NoError(t, f.products.Delete(ctx, testActor.TenantID, created.ID))
	_, err = f.products.GetByID(ctx, testActor.TenantID, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
