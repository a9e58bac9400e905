package notification

import (
	"context"
	"fmt"

	"github.com/shopledger/backend/internal/domain/notification"
	"github.com/shopledger/backend/internal/domain/shared"
)

// RequestedHandler persists the drafts carried by NotificationRequested
// events. Workflows never write notifications directly.
type RequestedHandler struct {
	service *Service
}

// NewRequestedHandler creates the event subscriber
func NewRequestedHandler(service *Service) *RequestedHandler {
	return &RequestedHandler{service: service}
}

// EventTypes returns the event types this handler is interested in
func (h *RequestedHandler) EventTypes() []string {
	return []string{notification.EventTypeNotificationRequested}
}

// Handle stores the notification draft
func (h *RequestedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	e, ok := event.(*notification.RequestedEvent)
	if !ok {
		return fmt.Errorf("unexpected event %T for %s", event, event.EventType())
	}
	_, err := h.service.Record(ctx, e.Draft)
	return err
}

var _ shared.EventHandler = (*RequestedHandler)(nil)
