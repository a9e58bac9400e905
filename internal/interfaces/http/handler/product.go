package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/shopledger/backend/internal/application/catalog"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Products is the catalog service used by ProductHandler
type Products interface {
	Create(ctx context.Context, actor shared.Actor, req catalogapp.CreateProductRequest) (*catalogapp.ProductResponse, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, req catalogapp.UpdateProductRequest) (*catalogapp.ProductResponse, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*catalogapp.ProductResponse, error)
	List(ctx context.Context, tenantID uuid.UUID, req catalogapp.ListProductsRequest) (shared.Paginated[catalogapp.ProductResponse], error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// ProductHandler handles the /products endpoints
type ProductHandler struct {
	BaseHandler
	products Products
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products Products) *ProductHandler {
	return &ProductHandler{products: products}
}

// Create godoc
// @ID           createProduct
// @Summary      Create a product
// @Description  Creates a product with its variants. A positive opening stock is recorded as an adjustment in the stock ledger.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateProductRequest true "Product"
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Product created successfully", product)
}

// Update godoc
// @ID           updateProduct
// @Summary      Update a product
// @Description  Updates product details. Variants with an id are updated and the others are added. Stock quantities are never edited here.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body catalogapp.UpdateProductRequest true "Product"
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.products.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Product updated successfully", product)
}

// GetByID godoc
// @ID           getProduct
// @Summary      Get a product
// @Description  Returns the product with its category name and the stock status of each variant
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), actor.TenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Product retrieved successfully", product)
}

// List godoc
// @ID           listProducts
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Page size" default(20) maximum(100)
// @Param        orderBy query string false "Sort field"
// @Param        orderDir query string false "Sort direction" Enums(asc, desc)
// @Param        search query string false "Name search"
// @Param        categoryId query string false "Category filter" format(uuid)
// @Success      200 {object} APIResponse[[]catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req catalogapp.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.products.List(c.Request.Context(), actor.TenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Products retrieved successfully", page.Items, page.Total, page.Page, page.PageSize)
}

// Delete godoc
// @ID           deleteProduct
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} SuccessResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), actor.TenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Product deleted successfully", nil)
}
