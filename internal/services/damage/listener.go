package damage

import (
	"context"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
	"github.com/KirkDiggler/projectfu-discord/internal/events"
	"github.com/KirkDiggler/projectfu-discord/internal/templates"
)

// ApplyDamageListenerID identifies the renderChatMessage listener
const ApplyDamageListenerID = "fu_apply_damage_actions"

// Button labels
const (
	KeyApplyDamage      = "FU.ChatApplyDamage"
	KeyIgnoreResistance = "FU.ChatApplyDamageIgnoreResistance"
	KeyIgnoreImmunity   = "FU.ChatApplyDamageIgnoreImmunity"
)

// ApplyDamageListener adds the apply-damage buttons to messages whose check
// carries damage
type ApplyDamageListener struct {
	localizer templates.Localizer
}

// AttachApplyDamage subscribes the listener to renderChatMessage
func AttachApplyDamage(bus *events.Bus, localizer templates.Localizer) *ApplyDamageListener {
	l := &ApplyDamageListener{localizer: localizer}
	bus.Subscribe(events.EventTypeRenderChatMessage, l)
	return l
}

func (l *ApplyDamageListener) ID() string    { return ApplyDamageListenerID }
func (l *ApplyDamageListener) Priority() int { return events.PrioritySystem }

func (l *ApplyDamageListener) HandleEvent(_ context.Context, event events.Event) error {
	render, ok := event.(*events.RenderChatMessageEvent)
	if !ok || render.Message == nil {
		return nil
	}
	if check.Inspect(render.Message).GetDamage() == nil {
		return nil
	}

	id := render.Message.ID
	render.AddAction(chat.Action{
		ID:    CustomID(id, affinity.ClickModifiers{}),
		Label: l.localize(KeyApplyDamage),
		Style: chat.ActionStyleDanger,
	})
	render.AddAction(chat.Action{
		ID:    CustomID(id, affinity.ClickModifiers{Shift: true}),
		Label: l.localize(KeyIgnoreResistance),
		Style: chat.ActionStyleSecondary,
	})
	render.AddAction(chat.Action{
		ID:    CustomID(id, affinity.ClickModifiers{Shift: true, Ctrl: true}),
		Label: l.localize(KeyIgnoreImmunity),
		Style: chat.ActionStyleSecondary,
	})
	return nil
}

func (l *ApplyDamageListener) localize(key string) string {
	if l.localizer == nil {
		return key
	}
	return l.localizer.Localize(key)
}
