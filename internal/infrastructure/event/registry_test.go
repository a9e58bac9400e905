package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerRegistry(t *testing.T) {
	r := NewHandlerRegistry()
	typed := &recordingHandler{}
	all := &recordingHandler{}

	r.Register(typed, "OrderCreated", "OrderUpdated")
	r.Register(all)

	assert.Len(t, r.HandlersFor("OrderCreated"), 2)
	assert.Len(t, r.HandlersFor("OrderDeleted"), 1)
	assert.Equal(t, 3, r.Len())

	r.Unregister(typed)
	assert.Len(t, r.HandlersFor("OrderCreated"), 1)
	assert.Equal(t, 1, r.Len())

	r.Unregister(all)
	assert.Empty(t, r.HandlersFor("OrderCreated"))
}
