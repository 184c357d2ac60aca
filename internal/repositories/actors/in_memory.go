package actors

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu     sync.RWMutex
	actors map[string]*actor.Actor
}

// NewInMemoryRepository creates a new in-memory actor repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		actors: make(map[string]*actor.Actor),
	}
}

func validate(a *actor.Actor) error {
	if a == nil {
		return dnderr.InvalidArgument("actor cannot be nil")
	}
	if a.ID == "" {
		return dnderr.InvalidArgument("actor ID cannot be empty")
	}
	return nil
}

// Create stores a new actor
func (r *inMemoryRepository) Create(ctx context.Context, a *actor.Actor) error {
	if err := validate(a); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[a.ID]; exists {
		return dnderr.AlreadyExistsf("actor with ID %s already exists", a.ID)
	}
	r.actors[a.ID] = a.Clone()
	return nil
}

// Get retrieves an actor by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*actor.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.actors[id]
	if !exists {
		return nil, dnderr.NotFoundf("actor not found: %s", id)
	}
	return a.Clone(), nil
}

// GetMany retrieves actors in the order given
func (r *inMemoryRepository) GetMany(ctx context.Context, ids []string) ([]*actor.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*actor.Actor, 0, len(ids))
	for _, id := range ids {
		a, exists := r.actors[id]
		if !exists {
			return nil, dnderr.NotFoundf("actor not found: %s", id)
		}
		out = append(out, a.Clone())
	}
	return out, nil
}

// Update replaces an existing actor
func (r *inMemoryRepository) Update(ctx context.Context, a *actor.Actor) error {
	if err := validate(a); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[a.ID]; !exists {
		return dnderr.NotFoundf("actor not found: %s", a.ID)
	}
	r.actors[a.ID] = a.Clone()
	return nil
}

// Delete removes an actor
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[id]; !exists {
		return dnderr.NotFoundf("actor not found: %s", id)
	}
	delete(r.actors, id)
	return nil
}

// List returns every actor sorted by name
func (r *inMemoryRepository) List(ctx context.Context) ([]*actor.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*actor.Actor, 0, len(r.actors))
	for _, a := range r.actors {
		out = append(out, a.Clone())
	}
	sortByName(out)
	return out, nil
}

// ModifyResource changes a resource under the write lock
func (r *inMemoryRepository) ModifyResource(ctx context.Context, id, path string, delta int) (*actor.Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.actors[id]
	if !exists {
		return nil, dnderr.NotFoundf("actor not found: %s", id)
	}
	if _, err := a.ModifyResource(path, delta, true); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, fmt.Sprintf("failed to modify %s", id))
	}
	return a.Clone(), nil
}

func sortByName(list []*actor.Actor) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name == list[j].Name {
			return list[i].ID < list[j].ID
		}
		return list[i].Name < list[j].Name
	})
}
