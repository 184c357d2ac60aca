package actors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/redis/go-redis/v9"
)

const (
	actorKeyPrefix = "actor:"
	actorIndexKey  = "actors"

	// Optimistic transaction retries for ModifyResource
	maxModifyRetries = 5
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed actor repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

func actorKey(id string) string {
	return actorKeyPrefix + id
}

// Create stores a new actor, failing if the ID is taken
func (r *redisRepository) Create(ctx context.Context, a *actor.Actor) error {
	if err := validate(a); err != nil {
		return err
	}

	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to serialize actor: %w", err)
	}

	created, err := r.client.SetNX(ctx, actorKey(a.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create actor: %w", err)
	}
	if !created {
		return dnderr.AlreadyExistsf("actor with ID %s already exists", a.ID)
	}

	if err := r.client.SAdd(ctx, actorIndexKey, a.ID).Err(); err != nil {
		return fmt.Errorf("failed to index actor: %w", err)
	}
	return nil
}

// Get retrieves an actor by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*actor.Actor, error) {
	data, err := r.client.Get(ctx, actorKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("actor not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	return decode(data)
}

// GetMany fetches all actors in one round trip
func (r *redisRepository) GetMany(ctx context.Context, ids []string) ([]*actor.Actor, error) {
	if len(ids) == 0 {
		return []*actor.Actor{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = actorKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get actors: %w", err)
	}

	out := make([]*actor.Actor, 0, len(ids))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, dnderr.NotFoundf("actor not found: %s", ids[i])
		}
		a, err := decode([]byte(s))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Update replaces an existing actor
func (r *redisRepository) Update(ctx context.Context, a *actor.Actor) error {
	if err := validate(a); err != nil {
		return err
	}

	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to serialize actor: %w", err)
	}

	updated, err := r.client.SetXX(ctx, actorKey(a.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to update actor: %w", err)
	}
	if !updated {
		return dnderr.NotFoundf("actor not found: %s", a.ID)
	}
	return nil
}

// Delete removes an actor and its index entry
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, actorKey(id))
	pipe.SRem(ctx, actorIndexKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete actor: %w", err)
	}
	if del.Val() == 0 {
		return dnderr.NotFoundf("actor not found: %s", id)
	}
	return nil
}

// List returns every indexed actor sorted by name. Index entries whose
// actor has vanished are skipped.
func (r *redisRepository) List(ctx context.Context) ([]*actor.Actor, error) {
	ids, err := r.client.SMembers(ctx, actorIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	if len(ids) == 0 {
		return []*actor.Actor{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = actorKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}

	out := make([]*actor.Actor, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			log.Printf("Actors: index references missing actor %s", ids[i])
			continue
		}
		a, err := decode([]byte(s))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	sortByName(out)
	return out, nil
}

// ModifyResource performs the change inside a WATCH transaction so
// concurrent modifications of the same actor never lose an update
func (r *redisRepository) ModifyResource(ctx context.Context, id, path string, delta int) (*actor.Actor, error) {
	key := actorKey(id)
	var result *actor.Actor

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return dnderr.NotFoundf("actor not found: %s", id)
			}
			return fmt.Errorf("failed to get actor: %w", err)
		}

		a, err := decode(data)
		if err != nil {
			return err
		}
		if _, err := a.ModifyResource(path, delta, true); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, fmt.Sprintf("failed to modify %s", id))
		}

		updated, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to serialize actor: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		if err != nil {
			return err
		}
		result = a
		return nil
	}

	for attempt := 0; attempt < maxModifyRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}
		log.Printf("Actors: concurrent update of %s, retrying (%d/%d)", id, attempt+1, maxModifyRetries)
	}

	return nil, dnderr.Internalf("failed to modify %s after %d attempts", id, maxModifyRetries)
}

func decode(data []byte) (*actor.Actor, error) {
	var a actor.Actor
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to deserialize actor: %w", err)
	}
	return &a, nil
}
