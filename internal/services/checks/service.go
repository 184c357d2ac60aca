// Package checks rolls attribute checks for actors and posts them to the
// chat log with their damage and target outcomes.
package checks

//go:generate mockgen -destination=mock/mock_service.go -package=mockchecks -source=service.go

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/projectfu-discord/internal/dice"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/KirkDiggler/projectfu-discord/internal/events"
	"github.com/KirkDiggler/projectfu-discord/internal/services/character"
	"github.com/KirkDiggler/projectfu-discord/internal/services/chatlog"
	"github.com/KirkDiggler/projectfu-discord/internal/templates"
	"github.com/KirkDiggler/projectfu-discord/internal/uuid"
)

// Service rolls checks
type Service interface {
	// Roll prepares, rolls and posts a check
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)
}

// RollInput describes the check to roll
type RollInput struct {
	UserID    string
	ChannelID string
	ActorID   string
	Type      check.Type
	Primary   check.Attribute
	Secondary check.Attribute
	Modifiers []check.Modifier
	Details   check.Details

	// Difficulty of zero or less means none
	Difficulty int
	HrZero     bool

	// Damage is seeded from its first modifier; the rest are bonuses
	Damage          *check.DamageData
	TargetedDefense check.Defense
	TargetIDs       []string

	// Callbacks run after the built-in initializers
	Callbacks []check.Callback
}

// RollOutput is the rolled check and the chat message carrying it
type RollOutput struct {
	Check   *check.Check
	Message *chat.Message
}

type service struct {
	characters    character.Service
	chatLog       chatlog.Service
	bus           *events.Bus
	roller        dice.Roller
	renderer      templates.Renderer
	localizer     templates.Localizer
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	CharacterService character.Service
	ChatLog          chatlog.Service
	Bus              *events.Bus
	Roller           dice.Roller
	Renderer         templates.Renderer
	Localizer        templates.Localizer
	UUIDGenerator    uuid.Generator
}

// NewService creates a new check service
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
		roller:     cfg.Roller,
		renderer:   cfg.Renderer,
		localizer:  cfg.Localizer,
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.ChannelID == "" {
		return nil, dnderr.InvalidArgument("channel ID is required")
	}

	source, err := s.characters.GetActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	primaryDie := source.Attributes.Die(input.Primary)
	secondaryDie := source.Attributes.Die(input.Secondary)
	if primaryDie <= 0 || secondaryDie <= 0 {
		return nil, dnderr.InvalidArgumentf("cannot roll %s + %s for %s", input.Primary, input.Secondary, source.Name)
	}

	defense := input.TargetedDefense
	if defense == "" {
		defense = check.DefensePhysical
	}
	targets, err := s.targets(ctx, input.TargetIDs, defense)
	if err != nil {
		return nil, err
	}

	checkType := input.Type
	if checkType == "" {
		checkType = check.TypeAttribute
	}
	c := &check.Check{
		ID:        s.uuidGenerator.New(),
		Type:      checkType,
		ActorID:   source.ID,
		Primary:   input.Primary,
		Secondary: input.Secondary,
		Modifiers: append([]check.Modifier(nil), input.Modifiers...),
		Details:   input.Details,
	}

	callbacks := []check.Callback{
		check.InitDifficulty(input.Difficulty),
		check.InitHrZero(input.HrZero),
		check.InitDamage(input.Damage),
		check.InitTargets(defense, targets),
	}
	check.Prepare(c, append(callbacks, input.Callbacks...)...)

	prepare := events.NewPrepareCheckEvent(input.UserID, source, c)
	if err := s.bus.Emit(ctx, prepare); err != nil {
		return nil, dnderr.Wrap(err, "failed to prepare check")
	}
	if prepare.IsCancelled() {
		return nil, dnderr.Vetoed("check was cancelled")
	}

	if err := s.roll(c, primaryDie, secondaryDie); err != nil {
		return nil, err
	}

	msg, err := s.post(ctx, input, source, c, primaryDie, secondaryDie)
	if err != nil {
		return nil, err
	}

	log.Printf("Checks: %s rolled %s+%s = %d (HR %d) in %s",
		source.Name, c.Primary, c.Secondary, c.Result.Total, c.Result.HR, input.ChannelID)

	return &RollOutput{Check: c, Message: msg}, nil
}

func (s *service) targets(ctx context.Context, ids []string, defense check.Defense) ([]check.TargetData, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.characters.GetActors(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]check.TargetData, len(found))
	for i, t := range found {
		out[i] = check.TargetData{
			Name:       t.Name,
			UUID:       t.ID,
			Link:       "actor:" + t.ID,
			Difficulty: t.Defense(defense),
		}
	}
	return out, nil
}

// roll fills in the result and resolves the damage total
func (s *service) roll(c *check.Check, primaryDie, secondaryDie int) error {
	primary, err := s.roller.Roll(1, primaryDie, 0)
	if err != nil {
		return dnderr.Wrap(err, "failed to roll primary attribute")
	}
	secondary, err := s.roller.Roll(1, secondaryDie, 0)
	if err != nil {
		return dnderr.Wrap(err, "failed to roll secondary attribute")
	}

	p, q := primary.Total, secondary.Total
	modifier := c.ModifierTotal()
	c.Result = &check.Result{
		Primary:   check.Roll{Attribute: c.Primary, Dice: primaryDie, Result: p},
		Secondary: check.Roll{Attribute: c.Secondary, Dice: secondaryDie, Result: q},
		Modifier:  modifier,
		Total:     p + q + modifier,
		HR:        max(p, q),
		Critical:  p == q && p >= 6,
		Fumble:    p == 1 && q == 1,
	}

	hrZero := false
	if v := check.Inspect(c).GetHrZero(); v != nil {
		hrZero = *v
	}
	check.Configure(c).ModifyDamage(func(damage *check.DamageData) *check.DamageData {
		if damage != nil {
			damage.Resolve(c.Result.HR, hrZero)
		}
		return damage
	})
	return nil
}

func (s *service) post(ctx context.Context, input *RollInput, source *actor.Actor, c *check.Check, primaryDie, secondaryDie int) (*chat.Message, error) {
	inspector := check.Inspect(c)

	params := templates.CheckParams{
		Name:     c.Details.Name,
		Summary:  c.Details.Summary,
		Roll:     rollSummary(c.Result, primaryDie, secondaryDie),
		Total:    c.Result.Total,
		HR:       c.Result.HR,
		Critical: c.Result.Critical,
		Fumble:   c.Result.Fumble,
	}
	if params.Name == "" {
		params.Name = fmt.Sprintf("%s + %s", c.Primary, c.Secondary)
	}
	if d := inspector.GetDifficulty(); d != nil {
		params.Difficulty = *d
	}
	for _, t := range inspector.GetTargets() {
		params.Targets = append(params.Targets, templates.CheckTarget{
			Name:       t.Name,
			Difficulty: t.Difficulty,
			Hit:        hits(c.Result, t.Difficulty),
		})
	}
	if damage := inspector.GetDamage(); damage != nil {
		params.Damage = damage.TotalOrZero()
		params.DamageType = s.localizer.Localize(damage.Type.LabelKey())
	}

	content, err := s.renderer.Render(s.localizer, templates.ChatCheck, params)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to render check")
	}

	msg := &chat.Message{
		ChannelID: input.ChannelID,
		AuthorID:  input.UserID,
		Speaker:   chat.Speaker{ActorID: source.ID, Alias: source.Name},
		Flavor:    params.Name,
		Content:   content,
	}
	if err := msg.SetCheck(c); err != nil {
		return nil, dnderr.Wrap(err, "failed to attach check to message")
	}

	return s.chatLog.Create(ctx, msg)
}

// hits reports whether a result beats a target's difficulty. Criticals always
// hit and fumbles always miss.
func hits(r *check.Result, difficulty int) bool {
	if r.Fumble {
		return false
	}
	return r.Critical || r.Total >= difficulty
}

func rollSummary(r *check.Result, primaryDie, secondaryDie int) string {
	out := fmt.Sprintf("d%d (%d) + d%d (%d)", primaryDie, r.Primary.Result, secondaryDie, r.Secondary.Result)
	if r.Modifier != 0 {
		out += fmt.Sprintf(" %+d", r.Modifier)
	}
	return out
}
