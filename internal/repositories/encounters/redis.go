package encounters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/combat"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/redis/go-redis/v9"
)

const (
	encounterKeyPrefix = "encounter:"
	channelEncounter   = "channel:%s:encounter"

	defaultEncounterTTL = 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	EncounterTTL time.Duration
}

type redisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed encounter repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.EncounterTTL
	if ttl == 0 {
		ttl = defaultEncounterTTL
	}
	return &redisRepository{client: cfg.Client, ttl: ttl}
}

func (r *redisRepository) Create(ctx context.Context, encounter *combat.Encounter) error {
	if encounter == nil || encounter.ID == "" {
		return dnderr.InvalidArgument("encounter ID cannot be empty")
	}

	data, err := json.Marshal(encounter)
	if err != nil {
		return fmt.Errorf("failed to serialize encounter: %w", err)
	}

	created, err := r.client.SetNX(ctx, encounterKeyPrefix+encounter.ID, data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create encounter: %w", err)
	}
	if !created {
		return dnderr.AlreadyExistsf("encounter with ID %s already exists", encounter.ID)
	}

	if err := r.client.Set(ctx, fmt.Sprintf(channelEncounter, encounter.ChannelID), encounter.ID, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to index encounter: %w", err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, id string) (*combat.Encounter, error) {
	data, err := r.client.Get(ctx, encounterKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("encounter not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get encounter: %w", err)
	}

	var encounter combat.Encounter
	if err := json.Unmarshal(data, &encounter); err != nil {
		return nil, fmt.Errorf("failed to deserialize encounter: %w", err)
	}
	return &encounter, nil
}

func (r *redisRepository) Update(ctx context.Context, encounter *combat.Encounter) error {
	if encounter == nil || encounter.ID == "" {
		return dnderr.InvalidArgument("encounter ID cannot be empty")
	}

	data, err := json.Marshal(encounter)
	if err != nil {
		return fmt.Errorf("failed to serialize encounter: %w", err)
	}

	updated, err := r.client.SetXX(ctx, encounterKeyPrefix+encounter.ID, data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to update encounter: %w", err)
	}
	if !updated {
		return dnderr.NotFoundf("encounter not found: %s", encounter.ID)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, encounterKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete encounter: %w", err)
	}
	if n == 0 {
		return dnderr.NotFoundf("encounter not found: %s", id)
	}
	return nil
}

func (r *redisRepository) GetActiveByChannel(ctx context.Context, channelID string) (*combat.Encounter, error) {
	id, err := r.client.Get(ctx, fmt.Sprintf(channelEncounter, channelID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get channel encounter: %w", err)
	}

	encounter, err := r.Get(ctx, id)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if !encounter.IsOpen() {
		return nil, nil
	}
	return encounter, nil
}
