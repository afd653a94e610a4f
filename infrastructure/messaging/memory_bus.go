// Package messaging provides the in-process event bus backing the
// reactive stores.
package messaging

import (
	"sync"

	"go.uber.org/zap"

	"travelbook/domain/events"
	apperrors "travelbook/pkg/errors"
)

// listenerEntry keeps registration order stable while allowing
// removal through the unsubscribe closure.
type listenerEntry struct {
	fn func(events.Event)
}

// MemoryBus is a synchronous in-process implementation of events.Bus.
// Publish runs every matching listener on the calling goroutine, in
// registration order. Listener panics are not recovered; they surface
// to the publisher like any other panic.
type MemoryBus struct {
	mu        sync.RWMutex
	listeners map[string][]*listenerEntry
	logger    *zap.Logger
}

// NewMemoryBus creates an empty bus
func NewMemoryBus(logger *zap.Logger) *MemoryBus {
	return &MemoryBus{
		listeners: make(map[string][]*listenerEntry),
		logger:    logger,
	}
}

// Publish delivers the event to all listeners registered for its type
// identifier. An event reporting an empty identifier is a programming
// error and panics with a typed events error.
func (b *MemoryBus) Publish(event events.Event) {
	eventType := event.EventType()
	if eventType == "" {
		panic(apperrors.NewEventsError("event has no type identifier"))
	}

	b.mu.RLock()
	registered := b.listeners[eventType]
	snapshot := make([]*listenerEntry, len(registered))
	copy(snapshot, registered)
	b.mu.RUnlock()

	b.logger.Debug("publishing event",
		zap.String("eventType", eventType),
		zap.Int("listeners", len(snapshot)),
	)

	// Dispatch over a snapshot so listeners may subscribe or
	// unsubscribe without invalidating this delivery.
	for _, entry := range snapshot {
		entry.fn(event)
	}
}

// Subscribe registers a listener for one event type identifier and
// returns a closure that removes it again. The closure is safe to
// call more than once.
func (b *MemoryBus) Subscribe(eventType string, listener func(events.Event)) events.Unsubscribe {
	entry := &listenerEntry{fn: listener}

	b.mu.Lock()
	b.listeners[eventType] = append(b.listeners[eventType], entry)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.remove(eventType, entry)
		})
	}
}

func (b *MemoryBus) remove(eventType string, entry *listenerEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	registered := b.listeners[eventType]
	for i, candidate := range registered {
		if candidate == entry {
			b.listeners[eventType] = append(registered[:i:i], registered[i+1:]...)
			return
		}
	}
}
