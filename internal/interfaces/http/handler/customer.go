package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	partnerapp "github.com/shopledger/backend/internal/application/partner"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Customers is the customer service used by CustomerHandler
type Customers interface {
	Create(ctx context.Context, tenantID uuid.UUID, req partnerapp.CustomerRequest) (*partnerapp.CustomerResponse, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req partnerapp.CustomerRequest) (*partnerapp.CustomerResponse, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*partnerapp.CustomerResponse, error)
	List(ctx context.Context, tenantID uuid.UUID, req partnerapp.ListPartiesRequest) (shared.Paginated[partnerapp.CustomerResponse], error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// CustomerHandler handles the /customers endpoints
type CustomerHandler struct {
	BaseHandler
	customers Customers
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customers Customers) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Create godoc
// @ID           createCustomer
// @Summary      Create a customer
// @Description  Phone numbers are unique per tenant
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CustomerRequest true "Customer"
// @Success      200 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req partnerapp.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), actor.TenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Customer created successfully", customer)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body partnerapp.CustomerRequest true "Customer"
// @Success      200 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req partnerapp.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), actor.TenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Customer updated successfully", customer)
}

// GetByID godoc
// @ID           getCustomer
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.customers.GetByID(c.Request.Context(), actor.TenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Customer retrieved successfully", customer)
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Page size" default(20) maximum(100)
// @Param        orderBy query string false "Sort field"
// @Param        orderDir query string false "Sort direction" Enums(asc, desc)
// @Param        search query string false "Name or phone search"
// @Success      200 {object} APIResponse[[]partnerapp.CustomerResponse]
// @Security     BearerAuth
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req partnerapp.ListPartiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.customers.List(c.Request.Context(), actor.TenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Customers retrieved successfully", page.Items, page.Total, page.Page, page.PageSize)
}

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} SuccessResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.customers.Delete(c.Request.Context(), actor.TenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Customer deleted successfully", nil)
}
