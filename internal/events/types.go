package events

import (
	"context"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/combat"
)

// EventType represents the hook an event is dispatched on
type EventType string

// Event is the base interface for all hook events
type Event interface {
	GetType() EventType
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	UserID    string
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// PreCreateCombatantEvent fires before a combatant joins an encounter.
// Cancelling it vetoes the creation.
type PreCreateCombatantEvent struct {
	BaseEvent
	EncounterID string
	Combatant   *combat.Combatant
}

// NewPreCreateCombatantEvent builds a preCreateCombatant event
func NewPreCreateCombatantEvent(userID, encounterID string, c *combat.Combatant) *PreCreateCombatantEvent {
	return &PreCreateCombatantEvent{
		BaseEvent:   BaseEvent{Type: EventTypePreCreateCombatant, UserID: userID},
		EncounterID: encounterID,
		Combatant:   c,
	}
}

// RenderChatMessageEvent fires when a chat message is rendered for
// delivery. Listeners attach actions.
type RenderChatMessageEvent struct {
	BaseEvent
	Message *chat.Message
	Actions []chat.Action
}

// NewRenderChatMessageEvent builds a renderChatMessage event
func NewRenderChatMessageEvent(msg *chat.Message) *RenderChatMessageEvent {
	return &RenderChatMessageEvent{
		BaseEvent: BaseEvent{Type: EventTypeRenderChatMessage, UserID: msg.AuthorID},
		Message:   msg,
	}
}

// AddAction attaches an action to the rendered message
func (e *RenderChatMessageEvent) AddAction(a chat.Action) {
	e.Actions = append(e.Actions, a)
}

// PrepareCheckEvent fires after a check's initializers ran and before it is
// rolled. Listeners adjust the check through check.Configure.
type PrepareCheckEvent struct {
	BaseEvent
	Actor *actor.Actor
	Check *check.Check
}

// NewPrepareCheckEvent builds a prepareCheck event
func NewPrepareCheckEvent(userID string, a *actor.Actor, c *check.Check) *PrepareCheckEvent {
	return &PrepareCheckEvent{
		BaseEvent: BaseEvent{Type: EventTypePrepareCheck, UserID: userID},
		Actor:     a,
		Check:     c,
	}
}

// DamageAppliedEvent fires once per actor after damage was applied
type DamageAppliedEvent struct {
	BaseEvent
	ActorID   string
	MessageID string
	Delta     int
	Affinity  string
}

// NewDamageAppliedEvent builds a damageApplied event
func NewDamageAppliedEvent(userID, actorID, messageID string, delta int, affinityKey string) *DamageAppliedEvent {
	return &DamageAppliedEvent{
		BaseEvent: BaseEvent{Type: EventTypeDamageApplied, UserID: userID},
		ActorID:   actorID,
		MessageID: messageID,
		Delta:     delta,
		Affinity:  affinityKey,
	}
}

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	Name     string
	Order    int
	Callback func(ctx context.Context, event Event) error
}

func (l *ListenerFunc) ID() string    { return l.Name }
func (l *ListenerFunc) Priority() int { return l.Order }
func (l *ListenerFunc) HandleEvent(ctx context.Context, event Event) error {
	return l.Callback(ctx, event)
}
