package encounters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/combat"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
)

type inMemoryRepository struct {
	mu         sync.RWMutex
	encounters map[string]*combat.Encounter
	byChannel  map[string]string // channelID -> latest encounter ID
}

// NewInMemoryRepository creates a new in-memory encounter repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		encounters: make(map[string]*combat.Encounter),
		byChannel:  make(map[string]string),
	}
}

// Create stores a new encounter
func (r *inMemoryRepository) Create(ctx context.Context, encounter *combat.Encounter) error {
	if encounter == nil || encounter.ID == "" {
		return dnderr.InvalidArgument("encounter ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.encounters[encounter.ID]; exists {
		return dnderr.AlreadyExistsf("encounter with ID %s already exists", encounter.ID)
	}

	r.encounters[encounter.ID] = encounter.Clone()
	r.byChannel[encounter.ChannelID] = encounter.ID
	return nil
}

// Get retrieves an encounter by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*combat.Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	encounter, exists := r.encounters[id]
	if !exists {
		return nil, dnderr.NotFoundf("encounter not found: %s", id)
	}
	return encounter.Clone(), nil
}

// Update modifies an existing encounter
func (r *inMemoryRepository) Update(ctx context.Context, encounter *combat.Encounter) error {
	if encounter == nil || encounter.ID == "" {
		return dnderr.InvalidArgument("encounter ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.encounters[encounter.ID]; !exists {
		return dnderr.NotFoundf("encounter not found: %s", encounter.ID)
	}
	r.encounters[encounter.ID] = encounter.Clone()
	return nil
}

// Delete removes an encounter
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	encounter, exists := r.encounters[id]
	if !exists {
		return dnderr.NotFoundf("encounter not found: %s", id)
	}
	if r.byChannel[encounter.ChannelID] == id {
		delete(r.byChannel, encounter.ChannelID)
	}
	delete(r.encounters, id)
	return nil
}

// GetActiveByChannel returns nil, nil when the channel has no open encounter
func (r *inMemoryRepository) GetActiveByChannel(ctx context.Context, channelID string) (*combat.Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byChannel[channelID]
	if !ok {
		return nil, nil
	}
	encounter := r.encounters[id]
	if encounter == nil || !encounter.IsOpen() {
		return nil, nil
	}
	return encounter.Clone(), nil
}
