// Package damage applies a check's damage to the acting user's targets,
// adjusted by each target's affinity to the damage type.
package damage

//go:generate mockgen -destination=mock/mock_service.go -package=mockdamage -source=service.go

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/KirkDiggler/projectfu-discord/internal/events"
	"github.com/KirkDiggler/projectfu-discord/internal/latch"
	"github.com/KirkDiggler/projectfu-discord/internal/notify"
	"github.com/KirkDiggler/projectfu-discord/internal/services/character"
	"github.com/KirkDiggler/projectfu-discord/internal/services/chatlog"
	"github.com/KirkDiggler/projectfu-discord/internal/templates"
)

// Notification keys
const (
	KeyNoActorsSelected = "FU.ChatApplyDamageNoActorsSelected"
	KeyBusy             = "FU.ChatApplyDamageBusy"
)

// Service applies damage from chat messages
type Service interface {
	// ApplyDamage applies the damage carried by a message's check to the
	// user's selected actors, or their bound character
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)

	// Trigger runs ApplyDamage unless an application for the same message is
	// already in flight, in which case it reports false and does nothing
	Trigger(ctx context.Context, input *ApplyDamageInput) (bool, *ApplyDamageOutput, error)
}

// ApplyDamageInput identifies the message and the keys held on click
type ApplyDamageInput struct {
	UserID    string
	MessageID string
	Modifiers affinity.ClickModifiers
}

// Application is the outcome for one actor
type Application struct {
	ActorID  string
	Affinity affinity.Value
	Delta    int
	HP       actor.Resource
	Message  *chat.Message
}

// ApplyDamageOutput holds one application per target, in target order
type ApplyDamageOutput struct {
	Damage       int
	Type         affinity.DamageType
	Applications []Application
}

type service struct {
	characters character.Service
	chatLog    chatlog.Service
	bus        *events.Bus
	renderer   templates.Renderer
	localizer  templates.Localizer
	inFlight   *latch.Set
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	CharacterService character.Service
	ChatLog          chatlog.Service
	Bus              *events.Bus
	Renderer         templates.Renderer
	Localizer        templates.Localizer
	Latch            *latch.Set
}

// NewService creates a new damage service
func NewService(cfg *ServiceConfig) Service {
	if cfg.CharacterService == nil {
		panic("character service is required")
	}
	if cfg.ChatLog == nil {
		panic("chat log is required")
	}
	if cfg.Bus == nil {
		panic("event bus is required")
	}
	if cfg.Renderer == nil {
		panic("renderer is required")
	}
	if cfg.Localizer == nil {
		panic("localizer is required")
	}

	svc := &service{
		characters: cfg.CharacterService,
		chatLog:    cfg.ChatLog,
		bus:        cfg.Bus,
		renderer:   cfg.Renderer,
		localizer:  cfg.Localizer,
		inFlight:   cfg.Latch,
	}
	if svc.inFlight == nil {
		svc.inFlight = latch.New()
	}
	return svc
}

func (s *service) Trigger(ctx context.Context, input *ApplyDamageInput) (bool, *ApplyDamageOutput, error) {
	if input == nil || input.MessageID == "" {
		return false, nil, dnderr.InvalidArgument("message ID is required")
	}

	var out *ApplyDamageOutput
	ran, err := s.inFlight.Do(input.MessageID, func() error {
		var err error
		out, err = s.ApplyDamage(ctx, input)
		return err
	})
	if !ran {
		log.Printf("Damage: dropped click on message %s from %s, application in flight", input.MessageID, input.UserID)
	}
	return ran, out, err
}

func (s *service) ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error) {
	if input == nil || input.MessageID == "" {
		return nil, dnderr.InvalidArgument("message ID is required")
	}

	source, err := s.chatLog.Get(ctx, input.MessageID)
	if err != nil {
		return nil, err
	}

	inspector := check.Inspect(source)
	damage := inspector.GetDamage()
	if damage == nil || damage.Total == nil {
		return nil, dnderr.FailedPrecondition("message carries no resolved damage").
			WithMeta("message_id", input.MessageID)
	}

	targets, err := s.characters.ResolveTargets(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		notify.Error(ctx, KeyNoActorsSelected)
		return nil, dnderr.FailedPrecondition("no actors selected").
			WithLocalizationKey(KeyNoActorsSelected)
	}

	from := ""
	if c := source.SourceCheck(); c != nil {
		from = c.Details.Name
	}

	out := &ApplyDamageOutput{
		Damage:       *damage.Total,
		Type:         damage.Type,
		Applications: make([]Application, len(targets)),
	}

	// Every target is updated even when another fails
	var g errgroup.Group
	for i, target := range targets {
		g.Go(func() error {
			app, err := s.applyTo(ctx, input, source, target, damage, from)
			if err != nil {
				return err
			}
			out.Applications[i] = *app
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *service) applyTo(ctx context.Context, input *ApplyDamageInput, source *chat.Message, target *actor.Actor, damage *check.DamageData, from string) (*Application, error) {
	value := target.Affinity(damage.Type)
	delta := affinity.Delta(value, *damage.Total, input.Modifiers)

	updated, err := s.characters.ModifyResource(ctx, target.ID, actor.ResourceHP, delta)
	if err != nil {
		return nil, err
	}

	content, err := s.renderer.Render(s.localizer, templates.ChatApplyDamage, templates.ApplyDamageParams{
		Message: affinity.MessageKey(value, input.Modifiers),
		Actor:   target.Name,
		Damage:  abs(delta),
		Type:    s.localizer.Localize(damage.Type.LabelKey()),
		From:    from,
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to render damage message")
	}

	msg, err := s.chatLog.Create(ctx, &chat.Message{
		ChannelID: source.ChannelID,
		AuthorID:  input.UserID,
		Speaker:   source.Speaker,
		Flavor:    s.localizer.Localize(value.LabelKey()),
		Content:   content,
	})
	if err != nil {
		return nil, err
	}

	event := events.NewDamageAppliedEvent(input.UserID, target.ID, source.ID, delta, value.String())
	if err := s.bus.Emit(ctx, event); err != nil {
		log.Printf("Damage: damageApplied listener failed for %s: %v", target.ID, err)
	}

	log.Printf("Damage: %s %+d HP (%s, %s) from message %s", target.Name, delta, value, damage.Type, source.ID)

	return &Application{
		ActorID:  target.ID,
		Affinity: value,
		Delta:    delta,
		HP:       updated.Resources.HP,
		Message:  msg,
	}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
