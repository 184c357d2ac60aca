package encounter

import (
	"context"

	"github.com/KirkDiggler/projectfu-discord/internal/events"
	"github.com/KirkDiggler/projectfu-discord/internal/notify"
)

// KeyTokenWithoutActor is shown when a token without an actor tries to join
const KeyTokenWithoutActor = "FU.CombatTokenWithoutActor"

// ActorGuard vetoes combatants that have no actor
type ActorGuard struct{}

// AttachActorGuard subscribes the guard to preCreateCombatant
func AttachActorGuard(bus *events.Bus) *ActorGuard {
	g := &ActorGuard{}
	bus.Subscribe(events.EventTypePreCreateCombatant, g)
	return g
}

func (g *ActorGuard) ID() string    { return "fu_combatant_actor_guard" }
func (g *ActorGuard) Priority() int { return events.PriorityGuard }

func (g *ActorGuard) HandleEvent(ctx context.Context, event events.Event) error {
	pre, ok := event.(*events.PreCreateCombatantEvent)
	if !ok {
		return nil
	}
	if pre.Combatant == nil || pre.Combatant.ActorID == "" {
		notify.Info(ctx, KeyTokenWithoutActor)
		pre.Cancel()
	}
	return nil
}
