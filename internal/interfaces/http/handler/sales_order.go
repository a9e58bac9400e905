package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/shared"
)

// SalesOrders is the sales workflow used by SalesOrderHandler
type SalesOrders interface {
	Create(ctx context.Context, actor shared.Actor, req tradeapp.CreateSalesOrderRequest) (*tradeapp.SalesOrderResponse, []shared.DomainEvent, error)
	Update(ctx context.Context, actor shared.Actor, req tradeapp.UpdateSalesOrderRequest) (*tradeapp.SalesOrderResponse, []shared.DomainEvent, error)
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]shared.DomainEvent, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*tradeapp.SalesOrderResponse, error)
	List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, req tradeapp.ListOrdersRequest) (shared.Paginated[tradeapp.SalesOrderResponse], error)
}

// SalesOrderHandler handles the /order endpoints
type SalesOrderHandler struct {
	BaseHandler
	orders SalesOrders
	events shared.EventPublisher
}

// NewSalesOrderHandler creates a new SalesOrderHandler
func NewSalesOrderHandler(orders SalesOrders, events shared.EventPublisher) *SalesOrderHandler {
	return &SalesOrderHandler{orders: orders, events: events}
}

// Create godoc
// @ID           createSalesOrder
// @Summary      Create a sales order
// @Description  Checks stock for every line, stores the order and decrements stock. Insufficient stock on any line rejects the whole order.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Client key making retries safe"
// @Param        request body tradeapp.CreateSalesOrderRequest true "Sales order"
// @Success      200 {object} APIResponse[tradeapp.SalesOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /order [post]
func (h *SalesOrderHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req tradeapp.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	order, events, err := h.orders.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	publish(c, h.events, events)
	h.Success(c, "Order created successfully", order)
}

// Update godoc
// @ID           updateSalesOrder
// @Summary      Update a sales order
// @Description  Replaces the order lines and applies the quantity difference per line to stock
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body tradeapp.UpdateSalesOrderRequest true "Sales order with id"
// @Success      200 {object} APIResponse[tradeapp.SalesOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /order [put]
func (h *SalesOrderHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req tradeapp.UpdateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	order, events, err := h.orders.Update(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	publish(c, h.events, events)
	h.Success(c, "Order updated successfully", order)
}

// Delete godoc
// @ID           deleteSalesOrder
// @Summary      Delete a sales order
// @Description  Soft-deletes the order and returns its quantities to stock
// @Tags         orders
// @Produce      json
// @Param        id query string true "Order ID" format(uuid)
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /order [delete]
func (h *SalesOrderHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidQuery(c, "id")
	if !ok {
		return
	}

	events, err := h.orders.Delete(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	publish(c, h.events, events)
	h.Success(c, "Order deleted successfully", nil)
}

// GetByID godoc
// @ID           getSalesOrder
// @Summary      Get a sales order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.SalesOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /order/{id} [get]
func (h *SalesOrderHandler) GetByID(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.GetByID(c.Request.Context(), actor.TenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Order retrieved successfully", order)
}

// List godoc
// @ID           listSalesOrders
// @Summary      List sales orders
// @Tags         orders
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Page size" default(20) maximum(100)
// @Param        orderBy query string false "Sort field" default(captureDate)
// @Param        orderDir query string false "Sort direction" Enums(asc, desc)
// @Param        search query string false "Invoice number search"
// @Success      200 {object} APIResponse[[]tradeapp.SalesOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /order [get]
func (h *SalesOrderHandler) List(c *gin.Context) {
	h.list(c, nil)
}

// ListByCustomer godoc
// @ID           listSalesOrdersByCustomer
// @Summary      List the sales orders of a customer
// @Tags         orders
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]tradeapp.SalesOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /order/customer/{customerId} [get]
func (h *SalesOrderHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := h.uuidParam(c, "customerId")
	if !ok {
		return
	}
	h.list(c, &customerID)
}

func (h *SalesOrderHandler) list(c *gin.Context, customerID *uuid.UUID) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req tradeapp.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.orders.List(c.Request.Context(), actor.TenantID, customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Orders retrieved successfully", page.Items, page.Total, page.Page, page.PageSize)
}
