package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/notification"
	"github.com/shopledger/backend/internal/domain/shared"
)

// ListNotificationsRequest holds the query parameters of GET /notifications
type ListNotificationsRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

func (r ListNotificationsRequest) toFilter() shared.Filter {
	return shared.Filter{Page: r.Page, PageSize: r.PageSize}.Normalize()
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Link        string    `json:"link,omitempty"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a notification to a response
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		Type:        string(n.Type),
		Name:        n.Name,
		Description: n.Description,
		Link:        n.Link,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
}
