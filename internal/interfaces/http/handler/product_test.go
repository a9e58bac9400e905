package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	catalogapp "github.com/shopledger/backend/internal/application/catalog"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProducts struct {
	mock.Mock
}

func (m *mockProducts) Create(ctx context.Context, actor shared.Actor, req catalogapp.CreateProductRequest) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, actor, req)
	resp, _ := args.Get(0).(*catalogapp.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockProducts) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, req catalogapp.UpdateProductRequest) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, actor, id, req)
	resp, _ := args.Get(0).(*catalogapp.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockProducts) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, tenantID, id)
	resp, _ := args.Get(0).(*catalogapp.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockProducts) List(ctx context.Context, tenantID uuid.UUID, req catalogapp.ListProductsRequest) (shared.Paginated[catalogapp.ProductResponse], error) {
	args := m.Called(ctx, tenantID, req)
	return args.Get(0).(shared.Paginated[catalogapp.ProductResponse]), args.Error(1)
}

func (m *mockProducts) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

type mockCategories struct {
	mock.Mock
}

func (m *mockCategories) Create(ctx context.Context, tenantID uuid.UUID, req catalogapp.CategoryRequest) (*catalogapp.CategoryResponse, error) {
	args := m.Called(ctx, tenantID, req)
	resp, _ := args.Get(0).(*catalogapp.CategoryResponse)
	return resp, args.Error(1)
}

func (m *mockCategories) Update(ctx context.Context, tenantID, id uuid.UUID, req catalogapp.CategoryRequest) (*catalogapp.CategoryResponse, error) {
	args := m.Called(ctx, tenantID, id, req)
	resp, _ := args.Get(0).(*catalogapp.CategoryResponse)
	return resp, args.Error(1)
}

func (m *mockCategories) List(ctx context.Context, tenantID uuid.UUID) ([]catalogapp.CategoryResponse, error) {
	args := m.Called(ctx, tenantID)
	resp, _ := args.Get(0).([]catalogapp.CategoryResponse)
	return resp, args.Error(1)
}

func (m *mockCategories) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func setupProducts(actor shared.Actor) (*mockProducts, http.Handler) {
	products := &mockProducts{}
	h := NewProductHandler(products)
	r := newTestRouter(actor)
	r.POST("/products", h.Create)
	r.GET("/products", h.List)
	r.GET("/products/:id", h.GetByID)
	r.PUT("/products/:id", h.Update)
	r.DELETE("/products/:id", h.Delete)
	return products, r
}

func TestProductHandler_Create(t *testing.T) {
	actor := testActor()
	products, r := setupProducts(actor)
	productID := uuid.New()

	products.On("Create", mock.Anything, actor, mock.MatchedBy(func(req catalogapp.CreateProductRequest) bool {
		return req.Name == "Basmati Rice" &&
			len(req.Variants) == 1 &&
			req.Variants[0].OpeningStock == 10 &&
			req.Variants[0].RetailPrice.Equal(decimal.RequireFromString("95.50"))
	})).Return(&catalogapp.ProductResponse{
		ID:           productID,
		Name:         "Basmati Rice",
		CategoryName: "Unknown Category",
		Variants: []catalogapp.VariantResponse{{
			PackingSize:   "1kg",
			MinStockLevel: 5,
			Quantity:      10,
			StockStatus:   "In Stock",
		}},
	}, nil)

	rec := doRequest(r, http.MethodPost, "/products", map[string]any{
		"name": "Basmati Rice",
		"variants": []map[string]any{{
			"packingSize":   "1kg",
			"retailPrice":   "95.50",
			"minStockLevel": 5,
			"openingStock":  10,
		}},
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	product := decodeData[catalogapp.ProductResponse](t, rec)
	assert.Equal(t, productID, product.ID)
	assert.Equal(t, "In Stock", product.Variants[0].StockStatus)
	products.AssertExpectations(t)
}

func TestProductHandler_Create_Validation(t *testing.T) {
	actor := testActor()
	products, r := setupProducts(actor)

	rec := doRequest(r, http.MethodPost, "/products", map[string]any{
		"name":     "Basmati Rice",
		"variants": []map[string]any{{"packingSize": "1kg", "openingStock": -1}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeResponse(t, rec).Message, "openingStock")
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	actor := testActor()
	products, r := setupProducts(actor)
	productID := uuid.New()

	products.On("Update", mock.Anything, actor, productID, mock.Anything).
		Return(&catalogapp.ProductResponse{ID: productID, Name: "Rice"}, nil)
	products.On("Delete", mock.Anything, actor.TenantID, productID).Return(nil)

	rec := doRequest(r, http.MethodPut, "/products/"+productID.String(), map[string]any{
		"name":     "Rice",
		"variants": []map[string]any{{"packingSize": "5kg"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Product updated successfully", decodeResponse(t, rec).Message)

	rec = doRequest(r, http.MethodDelete, "/products/"+productID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted successfully", decodeResponse(t, rec).Message)
	products.AssertExpectations(t)
}

func TestProductHandler_GetAndList(t *testing.T) {
	actor := testActor()
	products, r := setupProducts(actor)
	missing := uuid.New()

	products.On("GetByID", mock.Anything, actor.TenantID, missing).Return(nil, shared.NewNotFoundError("Product"))
	products.On("List", mock.Anything, actor.TenantID, catalogapp.ListProductsRequest{Search: "rice", Page: 1}).
		Return(shared.Paginated[catalogapp.ProductResponse]{
			Items:    []catalogapp.ProductResponse{{Name: "Basmati Rice"}},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}, nil)

	rec := doRequest(r, http.MethodGet, "/products/"+missing.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(r, http.MethodGet, "/products?search=rice&page=1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	items := decodeData[[]catalogapp.ProductResponse](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "Basmati Rice", items[0].Name)
}

func TestCategoryHandler(t *testing.T) {
	actor := testActor()
	categories := &mockCategories{}
	h := NewCategoryHandler(categories)
	r := newTestRouter(actor)
	r.POST("/categories", h.Create)
	r.GET("/categories", h.List)
	r.PUT("/categories/:id", h.Update)
	r.DELETE("/categories/:id", h.Delete)

	categoryID := uuid.New()
	req := catalogapp.CategoryRequest{Name: "Grains"}
	categories.On("Create", mock.Anything, actor.TenantID, req).
		Return(&catalogapp.CategoryResponse{ID: categoryID, Name: "Grains"}, nil)
	categories.On("List", mock.Anything, actor.TenantID).
		Return([]catalogapp.CategoryResponse{{ID: categoryID, Name: "Grains"}}, nil)
	categories.On("Update", mock.Anything, actor.TenantID, categoryID, catalogapp.CategoryRequest{Name: "Pulses"}).
		Return(nil, shared.NewNotFoundError("Category"))
	categories.On("Delete", mock.Anything, actor.TenantID, categoryID).Return(nil)

	rec := doRequest(r, http.MethodPost, "/categories", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, categoryID, decodeData[catalogapp.CategoryResponse](t, rec).ID)

	rec = doRequest(r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]catalogapp.CategoryResponse](t, rec), 1)

	rec = doRequest(r, http.MethodPut, "/categories/"+categoryID.String(), catalogapp.CategoryRequest{Name: "Pulses"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(r, http.MethodPost, "/categories", map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(r, http.MethodDelete, "/categories/"+categoryID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	categories.AssertExpectations(t)
}
