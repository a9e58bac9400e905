package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/notification"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRecorder_Handle(t *testing.T) {
	rec := NewEventRecorder("TestEvent")
	event := NewTestEvent("TestEvent", uuid.New())

	require.NoError(t, rec.Handle(context.Background(), event))

	assert.Equal(t, []string{"TestEvent"}, rec.EventTypes())
	assert.Equal(t, 1, rec.Len())
	assert.Same(t, event, rec.Events()[0])
}

func TestEventRecorder_FailWith(t *testing.T) {
	rec := NewEventRecorder()
	rec.FailWith(assert.AnError)

	err := rec.Handle(context.Background(), NewTestEvent("TestEvent", uuid.New()))

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, rec.Len(), "failed events are still recorded")
}

func TestEventRecorder_WaitFor(t *testing.T) {
	rec := NewEventRecorder()
	tenantID := uuid.New()

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = rec.Handle(context.Background(), NewTestEvent("A", tenantID))
		_ = rec.Handle(context.Background(), NewTestEvent("B", tenantID))
	}()

	assert.True(t, rec.WaitFor(t, 2, time.Second))
	assert.False(t, rec.WaitFor(t, 3, 30*time.Millisecond))
}

func TestRequestedDrafts(t *testing.T) {
	actor := shared.Actor{TenantID: uuid.New(), UserID: uuid.New()}
	alert, ok := notification.LowStockAlert(notification.VariantLevel{
		ProductName: "Basmati Rice", PackingSize: "5kg", Quantity: 4, MinStockLevel: 5,
	})
	require.True(t, ok)

	events := []shared.DomainEvent{
		NewTestEvent("TestEvent", actor.TenantID),
		notification.NewRequestedEvent(alert.For(actor)),
		notification.NewRequestedEvent(notification.OrderCreated(uuid.New(), "INV-1", "asha").For(actor)),
	}

	drafts := RequestedDrafts(events)
	require.Len(t, drafts, 2)
	assert.Equal(t, []string{"Low Stock Alert", "New Sales Order Created"}, DraftNames(drafts))
	assert.Equal(t, actor.TenantID, drafts[0].TenantID)
}

func TestEventRecorder_Drafts(t *testing.T) {
	rec := NewEventRecorder(notification.EventTypeNotificationRequested)
	actor := shared.Actor{TenantID: uuid.New(), UserID: uuid.New()}

	err := rec.Handle(context.Background(),
		notification.NewRequestedEvent(notification.OrderCreated(uuid.New(), "INV-2", "").For(actor)))
	require.NoError(t, err)

	drafts := rec.Drafts()
	require.Len(t, drafts, 1)
	assert.Contains(t, drafts[0].Description, "Unknown User")
}
