package messages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/redis/go-redis/v9"
)

const (
	messageKeyPrefix  = "message:"
	channelMessageKey = "channel:%s:messages"

	// Chat history kept per channel
	channelHistory = 200

	defaultMessageTTL = 7 * 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client     redis.UniversalClient
	MessageTTL time.Duration
}

type redisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed message repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.MessageTTL
	if ttl == 0 {
		ttl = defaultMessageTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}
}

func messageKey(id string) string {
	return messageKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, msg *chat.Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}

	created, err := r.client.SetNX(ctx, messageKey(msg.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	if !created {
		return dnderr.AlreadyExistsf("message with ID %s already exists", msg.ID)
	}

	channelKey := fmt.Sprintf(channelMessageKey, msg.ChannelID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, channelKey, msg.ID)
	pipe.LTrim(ctx, channelKey, 0, channelHistory-1)
	pipe.Expire(ctx, channelKey, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to index message: %w", err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, id string) (*chat.Message, error) {
	data, err := r.client.Get(ctx, messageKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("message not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return decode(data)
}

// Update keeps the remaining TTL of the stored message
func (r *redisRepository) Update(ctx context.Context, msg *chat.Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}

	err = r.client.SetArgs(ctx, messageKey(msg.ID), data, redis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dnderr.NotFoundf("message not found: %s", msg.ID)
		}
		return fmt.Errorf("failed to update message: %w", err)
	}
	return nil
}

func (r *redisRepository) ListByChannel(ctx context.Context, channelID string, limit int) ([]*chat.Message, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	ids, err := r.client.LRange(ctx, fmt.Sprintf(channelMessageKey, channelID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if len(ids) == 0 {
		return []*chat.Message{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = messageKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	out := make([]*chat.Message, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			// expired
			continue
		}
		msg, err := decode([]byte(s))
		if err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, nil
}

func decode(data []byte) (*chat.Message, error) {
	var msg chat.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %w", err)
	}
	return &msg, nil
}
