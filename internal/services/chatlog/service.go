package chatlog

//go:generate mockgen -destination=mock/mock_service.go -package=mockchatlog -source=service.go

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/KirkDiggler/projectfu-discord/internal/events"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/messages"
	"github.com/KirkDiggler/projectfu-discord/internal/uuid"
)

// Service is the chat log: messages are stored, rendered through the
// renderChatMessage hook and delivered to the sink
type Service interface {
	// Create persists and posts a new message
	Create(ctx context.Context, msg *chat.Message) (*chat.Message, error)

	// Get retrieves a message by ID
	Get(ctx context.Context, id string) (*chat.Message, error)

	// Render collects the actions listeners attach to a message
	Render(ctx context.Context, msg *chat.Message) ([]chat.Action, error)

	// ListRecent returns the newest messages in a channel
	ListRecent(ctx context.Context, channelID string, limit int) ([]*chat.Message, error)
}

// Sink delivers rendered messages to users
type Sink interface {
	Deliver(ctx context.Context, msg *chat.Message, actions []chat.Action) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, msg *chat.Message, actions []chat.Action) error

func (f SinkFunc) Deliver(ctx context.Context, msg *chat.Message, actions []chat.Action) error {
	return f(ctx, msg, actions)
}

type service struct {
	repository    messages.Repository
	bus           *events.Bus
	sink          Sink
	uuidGenerator uuid.Generator
	now           func() time.Time
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    messages.Repository
	Bus           *events.Bus
	Sink          Sink
	UUIDGenerator uuid.Generator
	Clock         func() time.Time
}

// NewService creates a new chat log service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Bus == nil {
		panic("event bus is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		bus:           cfg.Bus,
		sink:          cfg.Sink,
		uuidGenerator: cfg.UUIDGenerator,
		now:           cfg.Clock,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

func (s *service) Create(ctx context.Context, msg *chat.Message) (*chat.Message, error) {
	if msg == nil {
		return nil, dnderr.InvalidArgument("message is required")
	}
	if msg.ChannelID == "" {
		return nil, dnderr.InvalidArgument("channel ID is required")
	}

	stored := msg.Clone()
	if stored.ID == "" {
		stored.ID = s.uuidGenerator.New()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now().UTC()
	}

	if err := s.repository.Create(ctx, stored); err != nil {
		return nil, dnderr.Wrap(err, "failed to store chat message")
	}

	actions, err := s.Render(ctx, stored)
	if err != nil {
		return nil, err
	}

	if s.sink != nil {
		if err := s.sink.Deliver(ctx, stored, actions); err != nil {
			log.Printf("ChatLog: failed to deliver message %s: %v", stored.ID, err)
			return stored, dnderr.Wrap(err, "failed to deliver chat message")
		}
	}

	return stored, nil
}

func (s *service) Get(ctx context.Context, id string) (*chat.Message, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("message ID is required")
	}
	msg, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get chat message %s", id)
	}
	return msg, nil
}

func (s *service) Render(ctx context.Context, msg *chat.Message) ([]chat.Action, error) {
	event := events.NewRenderChatMessageEvent(msg)
	if err := s.bus.Emit(ctx, event); err != nil {
		return nil, dnderr.Wrap(err, "failed to render chat message")
	}
	return event.Actions, nil
}

func (s *service) ListRecent(ctx context.Context, channelID string, limit int) ([]*chat.Message, error) {
	return s.repository.ListByChannel(ctx, channelID, limit)
}
