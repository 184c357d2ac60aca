package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=mockencounter -source=service.go

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/combat"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/KirkDiggler/projectfu-discord/internal/events"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/encounters"
	"github.com/KirkDiggler/projectfu-discord/internal/services/character"
	"github.com/KirkDiggler/projectfu-discord/internal/uuid"
)

// Service defines the encounter service interface
type Service interface {
	// CreateEncounter opens an encounter in a channel
	CreateEncounter(ctx context.Context, input *CreateEncounterInput) (*combat.Encounter, error)

	// GetEncounter retrieves an encounter by ID
	GetEncounter(ctx context.Context, encounterID string) (*combat.Encounter, error)

	// GetActiveEncounter returns the channel's open encounter, or nil
	GetActiveEncounter(ctx context.Context, channelID string) (*combat.Encounter, error)

	// AddCombatant runs the preCreateCombatant hook and adds the combatant
	// unless a listener vetoed it. Vetoed creation reports false.
	AddCombatant(ctx context.Context, input *AddCombatantInput) (*combat.Combatant, bool, error)

	// RemoveCombatant removes a combatant from an encounter
	RemoveCombatant(ctx context.Context, encounterID, combatantID string) error

	// StartEncounter begins round one with the given faction
	StartEncounter(ctx context.Context, encounterID string, first combat.Faction) (*combat.Encounter, error)

	// TakeTurn spends one of a combatant's turns
	TakeTurn(ctx context.Context, encounterID, combatantID string) (*combat.Encounter, error)

	// TurnSummary lists each combatant's faction and remaining turns
	TurnSummary(ctx context.Context, encounterID string) ([]CombatantTurns, error)

	// EndEncounter completes the encounter
	EndEncounter(ctx context.Context, encounterID string) error
}

// CreateEncounterInput contains data for creating an encounter
type CreateEncounterInput struct {
	ChannelID string
	Name      string
	UserID    string
}

// AddCombatantInput describes the combatant to create. ActorID may be empty
// for tokens that have no actor.
type AddCombatantInput struct {
	EncounterID string
	UserID      string
	Name        string
	ActorID     string
	Token       *combat.Token
	Hidden      bool
}

// CombatantTurns is one row of a turn summary
type CombatantTurns struct {
	Combatant *combat.Combatant
	Faction   combat.Faction
	Total     int
	Remaining int
}

type service struct {
	repository    encounters.Repository
	characters    character.Service
	bus           *events.Bus
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository       encounters.Repository
	CharacterService character.Service
	Bus              *events.Bus
	UUIDGenerator    uuid.Generator
}

// NewService creates a new encounter service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.CharacterService == nil {
		panic("character service is required")
	}
	if cfg.Bus == nil {
		panic("event bus is required")
	}

	svc := &service{
		repository: cfg.Repository,
		characters: cfg.CharacterService,
		bus:        cfg.Bus,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateEncounter opens an encounter in a channel
func (s *service) CreateEncounter(ctx context.Context, input *CreateEncounterInput) (*combat.Encounter, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.ChannelID) == "" {
		return nil, dnderr.InvalidArgument("channel ID is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "Encounter"
	}

	active, err := s.repository.GetActiveByChannel(ctx, input.ChannelID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to check for active encounter")
	}
	if active != nil {
		return nil, dnderr.AlreadyExistsf("channel already has an open encounter: %s", active.Name).
			WithMeta("encounter_id", active.ID)
	}

	enc := combat.NewEncounter(s.uuidGenerator.New(), input.ChannelID, name, input.UserID)
	if err := s.repository.Create(ctx, enc); err != nil {
		return nil, dnderr.Wrap(err, "failed to create encounter")
	}

	log.Printf("Encounter: %s created %q in channel %s", input.UserID, name, input.ChannelID)
	return enc, nil
}

// GetEncounter retrieves an encounter by ID
func (s *service) GetEncounter(ctx context.Context, encounterID string) (*combat.Encounter, error) {
	if encounterID == "" {
		return nil, dnderr.InvalidArgument("encounter ID is required")
	}
	enc, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get encounter '%s'", encounterID)
	}
	return enc, nil
}

// GetActiveEncounter returns the channel's open encounter, or nil
func (s *service) GetActiveEncounter(ctx context.Context, channelID string) (*combat.Encounter, error) {
	return s.repository.GetActiveByChannel(ctx, channelID)
}

// AddCombatant creates a combatant through the preCreateCombatant hook
func (s *service) AddCombatant(ctx context.Context, input *AddCombatantInput) (*combat.Combatant, bool, error) {
	if input == nil {
		return nil, false, dnderr.InvalidArgument("input cannot be nil")
	}

	enc, err := s.GetEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, false, err
	}
	if !enc.IsOpen() {
		return nil, false, dnderr.FailedPrecondition("encounter has ended")
	}

	c := &combat.Combatant{
		ID:      s.uuidGenerator.New(),
		Name:    input.Name,
		ActorID: input.ActorID,
		Token:   input.Token,
		Hidden:  input.Hidden,
	}
	if c.ActorID == "" && c.Token != nil {
		c.ActorID = c.Token.ActorID
	}

	if c.ActorID != "" {
		a, err := s.characters.GetActor(ctx, c.ActorID)
		if err != nil {
			return nil, false, err
		}
		if c.Name == "" {
			c.Name = a.Name
		}
	}
	if c.Name == "" && c.Token != nil {
		c.Name = c.Token.Name
	}

	event := events.NewPreCreateCombatantEvent(input.UserID, enc.ID, c)
	if err := s.bus.Emit(ctx, event); err != nil {
		return nil, false, dnderr.Wrap(err, "failed to run preCreateCombatant")
	}
	if event.IsCancelled() {
		log.Printf("Encounter: creation of combatant %q in %s was vetoed", c.Name, enc.ID)
		return nil, false, nil
	}

	enc.AddCombatant(c)
	enc.AddLog(fmt.Sprintf("%s joins the encounter", c.Name))
	if err := s.repository.Update(ctx, enc); err != nil {
		return nil, false, dnderr.Wrap(err, "failed to save encounter")
	}

	return c, true, nil
}

// RemoveCombatant removes a combatant from an encounter
func (s *service) RemoveCombatant(ctx context.Context, encounterID, combatantID string) error {
	enc, err := s.GetEncounter(ctx, encounterID)
	if err != nil {
		return err
	}
	c, ok := enc.Combatants[combatantID]
	if !ok {
		return dnderr.NotFoundf("combatant %s not in encounter", combatantID)
	}

	enc.RemoveCombatant(combatantID)
	enc.AddLog(fmt.Sprintf("%s leaves the encounter", c.Name))
	return s.repository.Update(ctx, enc)
}

// StartEncounter begins round one
func (s *service) StartEncounter(ctx context.Context, encounterID string, first combat.Faction) (*combat.Encounter, error) {
	enc, err := s.GetEncounter(ctx, encounterID)
	if err != nil {
		return nil, err
	}
	if err := enc.Start(first); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeFailedPrecondition, "cannot start encounter")
	}
	if err := s.repository.Update(ctx, enc); err != nil {
		return nil, dnderr.Wrap(err, "failed to save encounter")
	}
	return enc, nil
}

// TakeTurn spends one of a combatant's turns. Turn counts come from the
// actors as they are now.
func (s *service) TakeTurn(ctx context.Context, encounterID, combatantID string) (*combat.Encounter, error) {
	enc, err := s.GetEncounter(ctx, encounterID)
	if err != nil {
		return nil, err
	}

	turns, err := s.turnCounter(ctx, enc)
	if err != nil {
		return nil, err
	}

	if err := enc.TakeTurn(combatantID, turns); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeFailedPrecondition, "cannot take turn").
			WithLocalizationKey("FU.CombatNotYourTurn")
	}
	if err := s.repository.Update(ctx, enc); err != nil {
		return nil, dnderr.Wrap(err, "failed to save encounter")
	}
	return enc, nil
}

// TurnSummary lists combatants in join order with their remaining turns
func (s *service) TurnSummary(ctx context.Context, encounterID string) ([]CombatantTurns, error) {
	enc, err := s.GetEncounter(ctx, encounterID)
	if err != nil {
		return nil, err
	}
	turns, err := s.turnCounter(ctx, enc)
	if err != nil {
		return nil, err
	}

	out := make([]CombatantTurns, 0, len(enc.Order))
	for _, id := range enc.Order {
		c := enc.Combatants[id]
		out = append(out, CombatantTurns{
			Combatant: c,
			Faction:   c.Faction(),
			Total:     turns(c),
			Remaining: enc.RemainingTurns(id, turns),
		})
	}
	return out, nil
}

// EndEncounter completes the encounter
func (s *service) EndEncounter(ctx context.Context, encounterID string) error {
	enc, err := s.GetEncounter(ctx, encounterID)
	if err != nil {
		return err
	}
	enc.End()
	return s.repository.Update(ctx, enc)
}

// turnCounter reads every combatant's actor once and counts turns from them.
// Deleted actors count as one turn.
func (s *service) turnCounter(ctx context.Context, enc *combat.Encounter) (combat.TurnCounter, error) {
	byID := make(map[string]*actor.Actor)
	for _, c := range enc.Combatants {
		if c.ActorID == "" {
			continue
		}
		if _, seen := byID[c.ActorID]; seen {
			continue
		}
		a, err := s.characters.GetActor(ctx, c.ActorID)
		if dnderr.IsNotFound(err) {
			byID[c.ActorID] = nil
			continue
		}
		if err != nil {
			return nil, err
		}
		byID[c.ActorID] = a
	}

	return func(c *combat.Combatant) int {
		return c.TotalTurns(byID[c.ActorID])
	}, nil
}
