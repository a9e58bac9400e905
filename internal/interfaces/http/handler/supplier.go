package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	partnerapp "github.com/shopledger/backend/internal/application/partner"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Suppliers is the supplier service used by SupplierHandler
type Suppliers interface {
	Create(ctx context.Context, tenantID uuid.UUID, req partnerapp.SupplierRequest) (*partnerapp.SupplierResponse, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req partnerapp.SupplierRequest) (*partnerapp.SupplierResponse, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*partnerapp.SupplierResponse, error)
	List(ctx context.Context, tenantID uuid.UUID, req partnerapp.ListPartiesRequest) (shared.Paginated[partnerapp.SupplierResponse], error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// SupplierHandler handles the /suppliers endpoints
type SupplierHandler struct {
	BaseHandler
	suppliers Suppliers
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(suppliers Suppliers) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// Create godoc
// @ID           createSupplier
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.SupplierRequest true "Supplier"
// @Success      200 {object} APIResponse[partnerapp.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /suppliers [post]
func (h *SupplierHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req partnerapp.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	supplier, err := h.suppliers.Create(c.Request.Context(), actor.TenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Supplier created successfully", supplier)
}

// Update godoc
// @ID           updateSupplier
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Param        request body partnerapp.SupplierRequest true "Supplier"
// @Success      200 {object} APIResponse[partnerapp.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req partnerapp.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	supplier, err := h.suppliers.Update(c.Request.Context(), actor.TenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Supplier updated successfully", supplier)
}

// GetByID godoc
// @ID           getSupplier
// @Summary      Get a supplier
// @Tags         suppliers
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.SupplierResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	supplier, err := h.suppliers.GetByID(c.Request.Context(), actor.TenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Supplier retrieved successfully", supplier)
}

// List godoc
// @ID           listSuppliers
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Page size" default(20) maximum(100)
// @Param        orderBy query string false "Sort field"
// @Param        orderDir query string false "Sort direction" Enums(asc, desc)
// @Param        search query string false "Name or phone search"
// @Success      200 {object} APIResponse[[]partnerapp.SupplierResponse]
// @Security     BearerAuth
// @Router       /suppliers [get]
func (h *SupplierHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req partnerapp.ListPartiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.suppliers.List(c.Request.Context(), actor.TenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Suppliers retrieved successfully", page.Items, page.Total, page.Page, page.PageSize)
}

// Delete godoc
// @ID           deleteSupplier
// @Summary      Delete a supplier
// @Tags         suppliers
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} SuccessResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.suppliers.Delete(c.Request.Context(), actor.TenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Supplier deleted successfully", nil)
}
