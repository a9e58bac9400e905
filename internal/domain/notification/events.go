package notification

import "github.com/shopledger/backend/internal/domain/shared"

const (
	AggregateTypeNotification      = "Notification"
	EventTypeNotificationRequested = "NotificationRequested"
)

// RequestedEvent asks the notification subscriber to persist a draft.
// Workflows return these instead of writing notifications themselves.
type RequestedEvent struct {
	shared.BaseDomainEvent
	Draft Draft `json:"draft"`
}

// NewRequestedEvent wraps a draft into an event
func NewRequestedEvent(d Draft) *RequestedEvent {
	return &RequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeNotificationRequested, AggregateTypeNotification, d.UserID, d.TenantID),
		Draft:           d,
	}
}
