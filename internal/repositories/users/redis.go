package users

import (
	"context"
	"errors"
	"fmt"

	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/redis/go-redis/v9"
)

const (
	characterKey = "user:%s:character"
	selectionKey = "user:%s:selection"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed user repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{client: cfg.Client}
}

func (r *redisRepository) BindCharacter(ctx context.Context, userID, actorID string) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID cannot be empty")
	}

	key := fmt.Sprintf(characterKey, userID)
	var err error
	if actorID == "" {
		err = r.client.Del(ctx, key).Err()
	} else {
		err = r.client.Set(ctx, key, actorID, 0).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to bind character: %w", err)
	}
	return nil
}

func (r *redisRepository) GetCharacter(ctx context.Context, userID string) (string, error) {
	actorID, err := r.client.Get(ctx, fmt.Sprintf(characterKey, userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get bound character: %w", err)
	}
	return actorID, nil
}

// Select swaps the whole list in one transaction
func (r *redisRepository) Select(ctx context.Context, userID string, actorIDs []string) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID cannot be empty")
	}

	key := fmt.Sprintf(selectionKey, userID)
	ids := dedupe(actorIDs)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(ids) > 0 {
		values := make([]interface{}, len(ids))
		for i, id := range ids {
			values[i] = id
		}
		pipe.RPush(ctx, key, values...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update selection: %w", err)
	}
	return nil
}

func (r *redisRepository) ClearSelection(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, fmt.Sprintf(selectionKey, userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}
	return nil
}

func (r *redisRepository) GetSelection(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.LRange(ctx, fmt.Sprintf(selectionKey, userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get selection: %w", err)
	}
	return ids, nil
}
