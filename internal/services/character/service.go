package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/classfeature"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/actors"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/users"
	"github.com/KirkDiggler/projectfu-discord/internal/uuid"
)

// Service manages actors and which of them a user is acting through
type Service interface {
	// GetActor retrieves an actor by ID
	GetActor(ctx context.Context, actorID string) (*actor.Actor, error)

	// GetActors retrieves several actors, in the order asked for
	GetActors(ctx context.Context, actorIDs []string) ([]*actor.Actor, error)

	// ListActors returns every actor
	ListActors(ctx context.Context) ([]*actor.Actor, error)

	// SaveActor creates the actor, or replaces it when it already exists
	SaveActor(ctx context.Context, a *actor.Actor) (*actor.Actor, error)

	// ModifyResource changes a resource by delta and returns the updated actor
	ModifyResource(ctx context.Context, actorID, path string, delta int) (*actor.Actor, error)

	// BindCharacter sets the user's default character
	BindCharacter(ctx context.Context, userID, actorID string) error

	// Select replaces the user's selected actors
	Select(ctx context.Context, userID string, actorIDs []string) error

	// ClearSelection drops the user's selection
	ClearSelection(ctx context.Context, userID string) error

	// ResolveTargets returns the selected actors, else the bound character.
	// It is empty when the user has neither.
	ResolveTargets(ctx context.Context, userID string) ([]*actor.Actor, error)

	// ClassFeatures decodes the actor's class feature items
	ClassFeatures(ctx context.Context, actorID string) ([]classfeature.DataModel, error)
}

type service struct {
	actors        actors.Repository
	users         users.Repository
	registry      *classfeature.Registry
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Actors        actors.Repository
	Users         users.Repository
	Registry      *classfeature.Registry
	UUIDGenerator uuid.Generator
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Actors == nil {
		panic("actor repository is required")
	}
	if cfg.Users == nil {
		panic("user repository is required")
	}

	svc := &service{
		actors:   cfg.Actors,
		users:    cfg.Users,
		registry: cfg.Registry,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) GetActor(ctx context.Context, actorID string) (*actor.Actor, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, dnderr.InvalidArgument("actor ID is required")
	}

	a, err := s.actors.Get(ctx, actorID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get actor '%s'", actorID).
			WithMeta("actor_id", actorID)
	}
	return a, nil
}

func (s *service) GetActors(ctx context.Context, actorIDs []string) ([]*actor.Actor, error) {
	if len(actorIDs) == 0 {
		return []*actor.Actor{}, nil
	}
	found, err := s.actors.GetMany(ctx, actorIDs)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get actors")
	}
	return found, nil
}

func (s *service) ListActors(ctx context.Context) ([]*actor.Actor, error) {
	return s.actors.List(ctx)
}

func (s *service) SaveActor(ctx context.Context, a *actor.Actor) (*actor.Actor, error) {
	if a == nil {
		return nil, dnderr.InvalidArgument("actor is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return nil, dnderr.InvalidArgument("actor name is required")
	}

	saved := a.Clone()
	if saved.ID == "" {
		saved.ID = s.uuidGenerator.New()
	}
	if saved.Type == "" {
		saved.Type = actor.TypeCharacter
	}

	err := s.actors.Update(ctx, saved)
	if dnderr.IsNotFound(err) {
		err = s.actors.Create(ctx, saved)
	}
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to save actor '%s'", saved.Name)
	}
	return saved, nil
}

func (s *service) ModifyResource(ctx context.Context, actorID, path string, delta int) (*actor.Actor, error) {
	updated, err := s.actors.ModifyResource(ctx, actorID, path, delta)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to modify %s on actor '%s'", path, actorID).
			WithMeta("actor_id", actorID)
	}
	return updated, nil
}

func (s *service) BindCharacter(ctx context.Context, userID, actorID string) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID is required")
	}
	if actorID != "" {
		if _, err := s.GetActor(ctx, actorID); err != nil {
			return err
		}
	}
	return s.users.BindCharacter(ctx, userID, actorID)
}

func (s *service) Select(ctx context.Context, userID string, actorIDs []string) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID is required")
	}
	if _, err := s.GetActors(ctx, actorIDs); err != nil {
		return err
	}
	return s.users.Select(ctx, userID, actorIDs)
}

func (s *service) ClearSelection(ctx context.Context, userID string) error {
	return s.users.ClearSelection(ctx, userID)
}

func (s *service) ResolveTargets(ctx context.Context, userID string) ([]*actor.Actor, error) {
	selected, err := s.users.GetSelection(ctx, userID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get selection")
	}

	if len(selected) > 0 {
		targets, err := s.existing(ctx, selected)
		if err != nil {
			return nil, err
		}
		if len(targets) < len(selected) {
			log.Printf("Character: %d of %d selected actors for user %s no longer exist",
				len(selected)-len(targets), len(selected), userID)
		}
		if len(targets) > 0 {
			return targets, nil
		}
	}

	bound, err := s.users.GetCharacter(ctx, userID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get bound character")
	}
	if bound == "" {
		return []*actor.Actor{}, nil
	}

	a, err := s.actors.Get(ctx, bound)
	if dnderr.IsNotFound(err) {
		log.Printf("Character: bound character %s for user %s no longer exists", bound, userID)
		return []*actor.Actor{}, nil
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get bound character")
	}
	return []*actor.Actor{a}, nil
}

func (s *service) ClassFeatures(ctx context.Context, actorID string) ([]classfeature.DataModel, error) {
	if s.registry == nil {
		return nil, dnderr.FailedPrecondition("no class feature registry configured")
	}

	a, err := s.GetActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var models []classfeature.DataModel
	for _, item := range a.ClassFeatures() {
		model, err := s.registry.Decode(item.FeatureType, item.Data)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to decode class feature '%s'", item.Name).
				WithMeta("item_id", item.ID)
		}
		models = append(models, model)
	}
	return models, nil
}

// existing fetches the actors that still exist, skipping deleted ones
func (s *service) existing(ctx context.Context, ids []string) ([]*actor.Actor, error) {
	found, err := s.actors.GetMany(ctx, ids)
	if err == nil {
		return found, nil
	}
	if !dnderr.IsNotFound(err) {
		return nil, dnderr.Wrap(err, "failed to get selected actors")
	}

	found = make([]*actor.Actor, 0, len(ids))
	for _, id := range ids {
		a, err := s.actors.Get(ctx, id)
		if dnderr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to get actor '%s'", id)
		}
		found = append(found, a)
	}
	return found, nil
}
