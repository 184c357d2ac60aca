package actors

//go:generate mockgen -destination=mock/mock_repository.go -package=mockactors -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
)

// Repository stores actors. Reads return copies; callers never share state
// with the store.
type Repository interface {
	Create(ctx context.Context, a *actor.Actor) error
	Get(ctx context.Context, id string) (*actor.Actor, error)
	// GetMany returns actors in the order of ids and fails if any is missing
	GetMany(ctx context.Context, ids []string) ([]*actor.Actor, error)
	Update(ctx context.Context, a *actor.Actor) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*actor.Actor, error)

	// ModifyResource adds delta to a resource bar as one atomic
	// read-modify-write and returns the updated actor
	ModifyResource(ctx context.Context, id, path string, delta int) (*actor.Actor, error)
}
