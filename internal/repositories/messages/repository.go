package messages

//go:generate mockgen -destination=mock/mock_repository.go -package=mockmessages -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
)

// Repository stores chat log messages
type Repository interface {
	Create(ctx context.Context, msg *chat.Message) error
	Get(ctx context.Context, id string) (*chat.Message, error)
	Update(ctx context.Context, msg *chat.Message) error
	// ListByChannel returns the newest messages first
	ListByChannel(ctx context.Context, channelID string, limit int) ([]*chat.Message, error)
}
