package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/shared"
)

// PurchaseOrders is the purchase workflow used by PurchaseOrderHandler
type PurchaseOrders interface {
	Create(ctx context.Context, actor shared.Actor, req tradeapp.CreatePurchaseOrderRequest) (*tradeapp.PurchaseOrderResponse, []shared.DomainEvent, error)
	Update(ctx context.Context, actor shared.Actor, req tradeapp.UpdatePurchaseOrderRequest) (*tradeapp.PurchaseOrderResponse, []shared.DomainEvent, error)
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]shared.DomainEvent, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*tradeapp.PurchaseOrderResponse, error)
	List(ctx context.Context, tenantID uuid.UUID, supplierID *uuid.UUID, req tradeapp.ListOrdersRequest) (shared.Paginated[tradeapp.PurchaseOrderResponse], error)
}

// PurchaseOrderHandler handles the /purchase-order endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orders PurchaseOrders
	events shared.EventPublisher
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orders PurchaseOrders, events shared.EventPublisher) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orders: orders, events: events}
}

// Create godoc
// @ID           createPurchaseOrder
// @Summary      Create a purchase order
// @Description  Stores the purchase and adds every line quantity to stock
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Client key making retries safe"
// @Param        request body tradeapp.CreatePurchaseOrderRequest true "Purchase order"
// @Success      200 {object} APIResponse[tradeapp.PurchaseOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchase-order [post]
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req tradeapp.CreatePurchaseOrderRequest
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
	h.Success(c, "Purchase order created successfully", order)
}

// Update godoc
// @ID           updatePurchaseOrder
// @Summary      Update a purchase order
// @Description  Replaces the lines and applies the quantity difference per line to stock. A reduction below zero stock is rejected.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        request body tradeapp.UpdatePurchaseOrderRequest true "Purchase order with id"
// @Success      200 {object} APIResponse[tradeapp.PurchaseOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchase-order [put]
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req tradeapp.UpdatePurchaseOrderRequest
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
	h.Success(c, "Purchase order updated successfully", order)
}

// Delete godoc
// @ID           deletePurchaseOrder
// @Summary      Delete a purchase order
// @Description  Soft-deletes the purchase and removes its quantities from stock
// @Tags         purchase-orders
// @Produce      json
// @Param        id query string true "Purchase order ID" format(uuid)
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchase-order [delete]
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
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
	h.Success(c, "Purchase order deleted successfully", nil)
}

// GetByID godoc
// @ID           getPurchaseOrder
// @Summary      Get a purchase order
// @Tags         purchase-orders
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.PurchaseOrderResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchase-order/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
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
	h.Success(c, "Purchase order retrieved successfully", order)
}

// List godoc
// @ID           listPurchaseOrders
// @Summary      List purchase orders
// @Tags         purchase-orders
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Page size" default(20) maximum(100)
// @Param        orderBy query string false "Sort field"
// @Param        orderDir query string false "Sort direction" Enums(asc, desc)
// @Param        search query string false "Bill number search"
// @Success      200 {object} APIResponse[[]tradeapp.PurchaseOrderResponse]
// @Security     BearerAuth
// @Router       /purchase-order [get]
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	h.list(c, nil)
}

// ListBySupplier godoc
// @ID           listPurchaseOrdersBySupplier
// @Summary      List the purchase orders of a supplier
// @Tags         purchase-orders
// @Produce      json
// @Param        supplierId path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[[]tradeapp.PurchaseOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchase-order/supplier/{supplierId} [get]
func (h *PurchaseOrderHandler) ListBySupplier(c *gin.Context) {
	supplierID, ok := h.uuidParam(c, "supplierId")
	if !ok {
		return
	}
	h.list(c, &supplierID)
}

func (h *PurchaseOrderHandler) list(c *gin.Context, supplierID *uuid.UUID) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req tradeapp.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.orders.List(c.Request.Context(), actor.TenantID, supplierID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Purchase orders retrieved successfully", page.Items, page.Total, page.Page, page.PageSize)
}
