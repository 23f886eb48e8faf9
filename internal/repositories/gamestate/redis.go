package gamestate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameStateKeyPrefix = "gamestate:"
	liveGamesKey       = "gamestate:live"
)

// RedisConfig holds configuration for the Redis game state storage
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Registry restores stored games by kind
	Registry *games.Registry

	// TTL expires games abandoned mid-match. Zero keeps them forever.
	TTL time.Duration
}

// redisStorage implements the Storage interface using Redis
type redisStorage struct {
	client   *redis.Client
	registry *games.Registry
	ttl      time.Duration
}

// NewRedis creates a new Redis-backed game state storage
func NewRedis(cfg *RedisConfig) (*redisStorage, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if cfg.Registry == nil {
		return nil, errors.New("registry cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStorage{
		client:   cfg.RedisClient,
		registry: cfg.Registry,
		ttl:      cfg.TTL,
	}, nil
}

// Get loads and restores the game of a party
func (r *redisStorage) Get(ctx context.Context, input *GetInput) (games.Game, error) {
	if input == nil || input.PartyID == "" {
		return nil, errors.New("input and party ID cannot be empty")
	}

	data, err := r.client.Get(ctx, gameStateKeyPrefix+input.PartyID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}

	return restore(r.registry, env)
}

// Set stores the game under the party key and indexes it as live
func (r *redisStorage) Set(ctx context.Context, input *SetInput) error {
	if input == nil || input.PartyID == "" || input.Game == nil {
		return errors.New("input, party ID and game cannot be empty")
	}

	env, err := encode(input.Game)
	if err != nil {
		return err
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameStateKeyPrefix+input.PartyID, data, r.ttl)
	pipe.SAdd(ctx, liveGamesKey, input.PartyID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}
	return nil
}

// Delete removes the game and its index entry
func (r *redisStorage) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil || input.PartyID == "" {
		return errors.New("input and party ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, gameStateKeyPrefix+input.PartyID)
	pipe.SRem(ctx, liveGamesKey, input.PartyID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game state: %w", err)
	}
	return nil
}
