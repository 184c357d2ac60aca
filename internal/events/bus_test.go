package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/combat"
	"github.com/KirkDiggler/projectfu-discord/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()

	// Track execution order
	var executionOrder []string
	record := func(name string) func(context.Context, events.Event) error {
		return func(context.Context, events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	// Subscribe in random order
	bus.Subscribe(events.EventTypeRenderChatMessage, &events.ListenerFunc{Name: "low", Order: 300, Callback: record("low")})
	bus.Subscribe(events.EventTypeRenderChatMessage, &events.ListenerFunc{Name: "high", Order: 100, Callback: record("high")})
	bus.Subscribe(events.EventTypeRenderChatMessage, &events.ListenerFunc{Name: "medium", Order: 200, Callback: record("medium")})
	bus.Subscribe(events.EventTypeRenderChatMessage, &events.ListenerFunc{Name: "medium-2", Order: 200, Callback: record("medium-2")})

	err := bus.Emit(context.Background(), events.NewRenderChatMessageEvent(&chat.Message{ID: "msg-1"}))
	require.NoError(t, err)

	// Lower priority number runs first, ties keep subscription order
	assert.Equal(t, []string{"high", "medium", "medium-2", "low"}, executionOrder)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus()

	var firstExecuted, secondExecuted bool

	// First listener vetoes the creation
	bus.Subscribe(events.EventTypePreCreateCombatant, &events.ListenerFunc{
		Name:  "first",
		Order: events.PriorityGuard,
		Callback: func(_ context.Context, e events.Event) error {
			firstExecuted = true
			e.Cancel()
			return nil
		},
	})

	// Second listener should not execute
	bus.Subscribe(events.EventTypePreCreateCombatant, &events.ListenerFunc{
		Name:  "second",
		Order: events.PrioritySystem,
		Callback: func(context.Context, events.Event) error {
			secondExecuted = true
			return nil
		},
	})

	event := events.NewPreCreateCombatantEvent("user-1", "enc-1", &combat.Combatant{ID: "c1"})
	err := bus.Emit(context.Background(), event)
	require.NoError(t, err)

	assert.True(t, firstExecuted)
	assert.False(t, secondExecuted)
	assert.True(t, event.IsCancelled())
}

func TestEventBus_ListenerError(t *testing.T) {
	bus := events.NewBus()
	boom := errors.New("boom")

	bus.Subscribe(events.EventTypePrepareCheck, &events.ListenerFunc{
		Name:     "broken",
		Callback: func(context.Context, events.Event) error { return boom },
	})

	err := bus.Emit(context.Background(), events.NewPrepareCheckEvent("user-1", nil, nil))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus()
	noop := func(context.Context, events.Event) error { return nil }

	bus.Subscribe(events.EventTypeDamageApplied, &events.ListenerFunc{Name: "a", Callback: noop})
	bus.Subscribe(events.EventTypeDamageApplied, &events.ListenerFunc{Name: "b", Callback: noop})
	require.Equal(t, 2, bus.ListenerCount(events.EventTypeDamageApplied))

	bus.Unsubscribe(events.EventTypeDamageApplied, "a")
	assert.Equal(t, 1, bus.ListenerCount(events.EventTypeDamageApplied))

	bus.Clear()
	assert.Equal(t, 0, bus.ListenerCount(events.EventTypeDamageApplied))
}

func TestRenderChatMessageEvent_AddAction(t *testing.T) {
	event := events.NewRenderChatMessageEvent(&chat.Message{ID: "msg-1", AuthorID: "user-1"})
	event.AddAction(chat.Action{ID: "a"})
	event.AddAction(chat.Action{ID: "b"})

	assert.Equal(t, "user-1", event.UserID)
	assert.Len(t, event.Actions, 2)
}
