package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	notificationapp "github.com/shopledger/backend/internal/application/notification"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Notifications is the notification service used by NotificationHandler
type Notifications interface {
	List(ctx context.Context, tenantID uuid.UUID, req notificationapp.ListNotificationsRequest) (shared.Paginated[notificationapp.NotificationResponse], error)
	MarkRead(ctx context.Context, tenantID, id uuid.UUID) (*notificationapp.NotificationResponse, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// NotificationHandler handles the /notifications endpoints
type NotificationHandler struct {
	BaseHandler
	notifications Notifications
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications Notifications) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List godoc
// @ID           listNotifications
// @Summary      List notifications
// @Description  Returns the tenant's notifications that are not deleted, newest first
// @Tags         notifications
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]notificationapp.NotificationResponse]
// @Security     BearerAuth
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req notificationapp.ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.notifications.List(c.Request.Context(), actor.TenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Notifications retrieved successfully", page.Items, page.Total, page.Page, page.PageSize)
}

// MarkRead godoc
// @ID           markNotificationRead
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        id path string true "Notification ID" format(uuid)
// @Success      200 {object} APIResponse[notificationapp.NotificationResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	n, err := h.notifications.MarkRead(c.Request.Context(), actor.TenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Notification marked as read", n)
}

// Delete godoc
// @ID           deleteNotification
// @Summary      Delete a notification
// @Tags         notifications
// @Produce      json
// @Param        id path string true "Notification ID" format(uuid)
// @Success      200 {object} SuccessResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.notifications.Delete(c.Request.Context(), actor.TenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Notification deleted successfully", nil)
}
