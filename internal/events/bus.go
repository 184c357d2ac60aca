package events

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(ctx context.Context, event Event) error
	Priority() int
	ID() string
}

// Bus manages hook distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)

	// Stable so equal priorities keep subscription order
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})

	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)

		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
		return
	}
}

// ListenerCount returns how many listeners an event type has
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.listeners[eventType])
}

// Emit sends an event to all registered listeners in priority order.
// A cancelled event stops propagation; the caller checks IsCancelled.
func (b *Bus) Emit(ctx context.Context, event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s cancelled, stopping propagation", event.GetType())
			break
		}

		if err := listener.HandleEvent(ctx, event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	log.Printf("EventBus: Cleared all listeners")
}
