package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/shopledger/backend/internal/application/finance"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Payments is the payment service used by PaymentHandler
type Payments interface {
	Create(ctx context.Context, actor shared.Actor, req financeapp.PaymentRequest) (*financeapp.PaymentResponse, []shared.DomainEvent, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req financeapp.PaymentRequest) (*financeapp.PaymentResponse, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*financeapp.PaymentResponse, error)
	List(ctx context.Context, tenantID uuid.UUID, req financeapp.ListPaymentsRequest) (shared.Paginated[financeapp.PaymentResponse], error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// PaymentHandler handles the /payments endpoints
type PaymentHandler struct {
	BaseHandler
	payments Payments
	events   shared.EventPublisher
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments Payments, events shared.EventPublisher) *PaymentHandler {
	return &PaymentHandler{payments: payments, events: events}
}

// Create godoc
// @ID           createPayment
// @Summary      Record a payment
// @Description  Records a customer receipt or a supplier outlay and raises the matching notification
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body financeapp.PaymentRequest true "Payment"
// @Success      200 {object} APIResponse[financeapp.PaymentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req financeapp.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	payment, events, err := h.payments.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	publish(c, h.events, events)
	h.Success(c, "Payment created successfully", payment)
}

// Update godoc
// @ID           updatePayment
// @Summary      Update a payment
// @Description  Replaces amount, type, mode, notes and the payment detail. The party cannot change.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Param        request body financeapp.PaymentRequest true "Payment"
// @Success      200 {object} APIResponse[financeapp.PaymentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req financeapp.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	payment, err := h.payments.Update(c.Request.Context(), actor.TenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Payment updated successfully", payment)
}

// GetByID godoc
// @ID           getPayment
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} APIResponse[financeapp.PaymentResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.payments.GetByID(c.Request.Context(), actor.TenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Payment retrieved successfully", payment)
}

// List godoc
// @ID           listPayments
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Page size" default(20) maximum(100)
// @Param        orderBy query string false "Sort field" default(captureDate)
// @Param        orderDir query string false "Sort direction" Enums(asc, desc)
// @Param        partyType query string false "Party type" Enums(customer, supplier)
// @Param        partyId query string false "Party filter" format(uuid)
// @Success      200 {object} APIResponse[[]financeapp.PaymentResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req financeapp.ListPaymentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.payments.List(c.Request.Context(), actor.TenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Payments retrieved successfully", page.Items, page.Total, page.Page, page.PageSize)
}

// Delete godoc
// @ID           deletePayment
// @Summary      Delete a payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} SuccessResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.payments.Delete(c.Request.Context(), actor.TenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Payment deleted successfully", nil)
}
