package shared

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stockEvent struct {
	BaseDomainEvent
}

type orderEvent struct {
	BaseDomainEvent
	Invoice string
}

func TestNewBaseDomainEvent(t *testing.T) {
	tenantID, aggID := uuid.New(), uuid.New()
	e := NewBaseDomainEvent("SalesOrderCreated", "SalesOrder", aggID, tenantID)

	assert.NotEqual(t, uuid.Nil, e.EventID())
	assert.Equal(t, "SalesOrderCreated", e.EventType())
	assert.Equal(t, "SalesOrder", e.AggregateType())
	assert.Equal(t, aggID, e.AggregateID())
	assert.Equal(t, tenantID, e.TenantID())
	assert.False(t, e.OccurredAt().IsZero())
}

func TestEventsOf(t *testing.T) {
	tenantID := uuid.New()
	first := &orderEvent{BaseDomainEvent: NewBaseDomainEvent("A", "Order", uuid.New(), tenantID), Invoice: "INV-1"}
	second := &orderEvent{BaseDomainEvent: NewBaseDomainEvent("B", "Order", uuid.New(), tenantID), Invoice: "INV-2"}
	events := []DomainEvent{
		first,
		&stockEvent{BaseDomainEvent: NewBaseDomainEvent("C", "Stock", uuid.New(), tenantID)},
		second,
	}

	orders := EventsOf[*orderEvent](events)
	assert.Equal(t, []*orderEvent{first, second}, orders)
	assert.Len(t, EventsOf[*stockEvent](events), 1)
	assert.Empty(t, EventsOf[*stockEvent](nil))
}
