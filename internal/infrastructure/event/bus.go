// Package event delivers domain events from request handlers to their
// subscribers inside the process.
package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopledger/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrBusStopped is returned by Publish when the bus is not running
var ErrBusStopped = errors.New("event bus is not running")

const defaultDeliveryTimeout = 30 * time.Second

// InMemoryEventBus implements shared.EventBus. Every handler receives each
// event on its own goroutine, detached from the publisher's cancellation, so
// a slow notification never holds up the HTTP response.
type InMemoryEventBus struct {
	registry        *HandlerRegistry
	logger          *zap.Logger
	deliveryTimeout time.Duration

	mu       sync.RWMutex
	running  bool
	inflight sync.WaitGroup
}

// Option configures the bus
type Option func(*InMemoryEventBus)

// WithDeliveryTimeout bounds a single handler invocation
func WithDeliveryTimeout(d time.Duration) Option {
	return func(b *InMemoryEventBus) {
		if d > 0 {
			b.deliveryTimeout = d
		}
	}
}

// NewInMemoryEventBus creates a stopped bus; call Start before publishing
func NewInMemoryEventBus(logger *zap.Logger, opts ...Option) *InMemoryEventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &InMemoryEventBus{
		registry:        NewHandlerRegistry(),
		logger:          logger,
		deliveryTimeout: defaultDeliveryTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish schedules delivery of the events and returns immediately
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.running {
		return ErrBusStopped
	}

	detached := context.WithoutCancel(ctx)
	for _, ev := range events {
		for _, h := range b.registry.HandlersFor(ev.EventType()) {
			b.inflight.Add(1)
			go b.deliver(detached, h, ev)
		}
	}
	return nil
}

// Subscribe registers a handler. Without explicit types the handler's own
// EventTypes are used.
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(handler, eventTypes...)
	b.logger.Debug("Event handler subscribed", zap.Strings("event_types", eventTypes))
}

// Unsubscribe removes a handler
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.registry.Unregister(handler)
}

// Start accepts events
func (b *InMemoryEventBus) Start(_ context.Context) error {
	b.mu.Lock()
	b.running = true
	b.mu.Unlock()
	b.logger.Info("Event bus started", zap.Int("handlers", b.registry.Len()))
	return nil
}

// Stop refuses new events and waits for in-flight deliveries or ctx
func (b *InMemoryEventBus) Stop(ctx context.Context) error {
	b.mu.Lock()
	b.running = false
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info("Event bus stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("event bus stop: %w", ctx.Err())
	}
}

func (b *InMemoryEventBus) deliver(ctx context.Context, h shared.EventHandler, ev shared.DomainEvent) {
	defer b.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Event handler panicked",
				zap.String("event_type", ev.EventType()),
				zap.String("event_id", ev.EventID().String()),
				zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, b.deliveryTimeout)
	defer cancel()

	if err := h.Handle(ctx, ev); err != nil {
		b.logger.Error("Event handler failed",
			zap.String("event_type", ev.EventType()),
			zap.String("event_id", ev.EventID().String()),
			zap.Error(err))
	}
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)
