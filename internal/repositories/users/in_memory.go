package users

import (
	"context"
	"sync"

	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
)

type inMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]string
	selections map[string][]string
}

// NewInMemoryRepository creates a new in-memory user repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		characters: make(map[string]string),
		selections: make(map[string][]string),
	}
}

func (r *inMemoryRepository) BindCharacter(ctx context.Context, userID, actorID string) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if actorID == "" {
		delete(r.characters, userID)
		return nil
	}
	r.characters[userID] = actorID
	return nil
}

func (r *inMemoryRepository) GetCharacter(ctx context.Context, userID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.characters[userID], nil
}

func (r *inMemoryRepository) Select(ctx context.Context, userID string, actorIDs []string) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(actorIDs) == 0 {
		delete(r.selections, userID)
		return nil
	}
	r.selections[userID] = dedupe(actorIDs)
	return nil
}

func (r *inMemoryRepository) ClearSelection(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.selections, userID)
	return nil
}

func (r *inMemoryRepository) GetSelection(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.selections[userID]...), nil
}

// dedupe drops repeated IDs, keeping first occurrences in order
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
