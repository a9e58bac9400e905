package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	printingapp "github.com/shopledger/backend/internal/application/printing"
)

// DocumentRenderer renders sales order PDFs
type DocumentRenderer interface {
	Render(ctx context.Context, tenantID, orderID uuid.UUID, kind printingapp.DocumentKind) (*printingapp.PDFDocument, error)
}

// PrintHandler serves the invoice and slip PDFs of a sales order
type PrintHandler struct {
	BaseHandler
	renderer DocumentRenderer
}

// NewPrintHandler creates a new PrintHandler
func NewPrintHandler(renderer DocumentRenderer) *PrintHandler {
	return &PrintHandler{renderer: renderer}
}

// Invoice godoc
// @ID           getOrderInvoice
// @Summary      Render the invoice of a sales order
// @Description  Returns an A4 PDF shown inline by the browser
// @Tags         print
// @Produce      application/pdf
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {file} file
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /order/{id}/invoice [get]
func (h *PrintHandler) Invoice(c *gin.Context) {
	h.render(c, printingapp.KindInvoice)
}

// Slip godoc
// @ID           getOrderSlip
// @Summary      Render the receipt slip of a sales order
// @Description  Returns a narrow receipt-printer PDF shown inline by the browser
// @Tags         print
// @Produce      application/pdf
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {file} file
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /order/{id}/slip [get]
func (h *PrintHandler) Slip(c *gin.Context) {
	h.render(c, printingapp.KindSlip)
}

func (h *PrintHandler) render(c *gin.Context, kind printingapp.DocumentKind) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	orderID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	doc, err := h.renderer.Render(c.Request.Context(), actor.TenantID, orderID, kind)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", kind.Filename()))
	c.Header("Cache-Control", "no-store")
	if doc.PageCount > 0 {
		c.Header("X-Page-Count", strconv.Itoa(doc.PageCount))
	}
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}
