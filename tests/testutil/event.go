package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/notification"
	"github.com/shopledger/backend/internal/domain/shared"
)

// EventRecorder is a shared.EventHandler that keeps every event it is
// handed. Subscribe it to a bus to observe what the workflows publish.
type EventRecorder struct {
	mu     sync.Mutex
	types  []string
	events []shared.DomainEvent
	err    error
	signal chan struct{}
}

// NewEventRecorder records the given event types, or every event when
// none are given
func NewEventRecorder(eventTypes ...string) *EventRecorder {
	return &EventRecorder{types: eventTypes, signal: make(chan struct{}, 1)}
}

func (r *EventRecorder) EventTypes() []string { return r.types }

func (r *EventRecorder) Handle(_ context.Context, event shared.DomainEvent) error {
	r.mu.Lock()
	r.events = append(r.events, event)
	err := r.err
	r.mu.Unlock()

	select {
	case r.signal <- struct{}{}:
	default:
	}
	return err
}

// FailWith makes later Handle calls return err after recording
func (r *EventRecorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Events returns a copy of the recorded events in arrival order
func (r *EventRecorder) Events() []shared.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]shared.DomainEvent(nil), r.events...)
}

// Len returns the number of recorded events
func (r *EventRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Drafts returns the notification drafts among the recorded events
func (r *EventRecorder) Drafts() []notification.Draft {
	return RequestedDrafts(r.Events())
}

// WaitFor blocks until at least n events were recorded or timeout passes.
// The bus delivers on its own goroutines, so tests wait instead of sleeping.
func (r *EventRecorder) WaitFor(t *testing.T, n int, timeout time.Duration) bool {
	t.Helper()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for r.Len() < n {
		select {
		case <-r.signal:
		case <-deadline.C:
			return r.Len() >= n
		}
	}
	return true
}

// RequestedDrafts extracts the drafts from the NotificationRequested events
// a workflow returned. Other events are skipped.
func RequestedDrafts(events []shared.DomainEvent) []notification.Draft {
	requested := shared.EventsOf[*notification.RequestedEvent](events)
	drafts := make([]notification.Draft, len(requested))
	for i, e := range requested {
		drafts[i] = e.Draft
	}
	return drafts
}

// DraftNames returns the names of the drafts
func DraftNames(drafts []notification.Draft) []string {
	names := make([]string, len(drafts))
	for i, d := range drafts {
		names[i] = d.Name
	}
	return names
}

// TestEvent is a bare event for bus and recorder tests
type TestEvent struct {
	shared.BaseDomainEvent
}

// NewTestEvent creates an event of eventType for tenantID
func NewTestEvent(eventType string, tenantID uuid.UUID) *TestEvent {
	return &TestEvent{BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Test", uuid.New(), tenantID)}
}
