package messages

import (
	"context"
	"sync"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	messages map[string]*chat.Message
	channels map[string][]string
}

// NewInMemoryRepository creates a new in-memory message repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		messages: make(map[string]*chat.Message),
		channels: make(map[string][]string),
	}
}

func validate(msg *chat.Message) error {
	if msg == nil {
		return dnderr.InvalidArgument("message cannot be nil")
	}
	if msg.ID == "" {
		return dnderr.InvalidArgument("message ID cannot be empty")
	}
	return nil
}

func (r *inMemoryRepository) Create(ctx context.Context, msg *chat.Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.messages[msg.ID]; exists {
		return dnderr.AlreadyExistsf("message with ID %s already exists", msg.ID)
	}
	r.messages[msg.ID] = msg.Clone()
	r.channels[msg.ChannelID] = append(r.channels[msg.ChannelID], msg.ID)
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, exists := r.messages[id]
	if !exists {
		return nil, dnderr.NotFoundf("message not found: %s", id)
	}
	return msg.Clone(), nil
}

func (r *inMemoryRepository) Update(ctx context.Context, msg *chat.Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.messages[msg.ID]; !exists {
		return dnderr.NotFoundf("message not found: %s", msg.ID)
	}
	r.messages[msg.ID] = msg.Clone()
	return nil
}

func (r *inMemoryRepository) ListByChannel(ctx context.Context, channelID string, limit int) ([]*chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.channels[channelID]
	out := make([]*chat.Message, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, r.messages[ids[i]].Clone())
	}
	return out, nil
}
