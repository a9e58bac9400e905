package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/shopledger/backend/internal/application/inventory"
	"github.com/shopledger/backend/internal/domain/shared"
)

// StockLedger is the inventory service used by InventoryHandler
type StockLedger interface {
	ListMovements(ctx context.Context, tenantID uuid.UUID, req inventoryapp.ListMovementsRequest) (shared.Paginated[inventoryapp.MovementResponse], error)
	Adjust(ctx context.Context, actor shared.Actor, req inventoryapp.AdjustStockRequest) (*inventoryapp.MovementResponse, error)
}

// InventoryHandler exposes the stock ledger
type InventoryHandler struct {
	BaseHandler
	ledger StockLedger
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(ledger StockLedger) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// ListMovements godoc
// @ID           listStockMovements
// @Summary      List stock movements
// @Description  Returns ledger entries, newest first unless another order is requested
// @Tags         inventory
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Page size" default(20) maximum(100)
// @Param        orderBy query string false "Sort field" default(createdAt)
// @Param        orderDir query string false "Sort direction" Enums(asc, desc)
// @Param        productId query string false "Product filter" format(uuid)
// @Param        variantId query string false "Variant filter" format(uuid)
// @Param        type query string false "Movement type" Enums(sale, purchase, adjustment, return)
// @Success      200 {object} APIResponse[[]inventoryapp.MovementResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /stock-movements [get]
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req inventoryapp.ListMovementsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.ledger.ListMovements(c.Request.Context(), actor.TenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Stock movements retrieved successfully", page.Items, page.Total, page.Page, page.PageSize)
}

// Adjust godoc
// @ID           adjustStock
// @Summary      Adjust stock manually
// @Description  Applies a signed delta to a variant and records an adjustment or return movement. A result below zero is rejected.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.AdjustStockRequest true "Adjustment"
// @Success      200 {object} APIResponse[inventoryapp.MovementResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /stock-adjustments [post]
func (h *InventoryHandler) Adjust(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req inventoryapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	movement, err := h.ledger.Adjust(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Stock adjusted successfully", movement)
}
