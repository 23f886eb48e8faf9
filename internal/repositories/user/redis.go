package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix     = "user:"
	usernameKeyPrefix = "username:"
)

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetUserByID retrieves a user by ID from Redis
func (r *redisRepository) GetUserByID(ctx context.Context, input *GetUserByIDInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userJSON, err := r.client.Get(ctx, userKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// GetUserByUsername resolves the username index, then loads the user
func (r *redisRepository) GetUserByUsername(ctx context.Context, input *GetUserByUsernameInput) (*models.User, error) {
	if input == nil || strings.TrimSpace(input.Username) == "" {
		return nil, errors.New("input and username cannot be empty")
	}

	userID, err := r.client.Get(ctx, usernameKey(input.Username)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user ID for username: %w", err)
	}

	return r.GetUserByID(ctx, &GetUserByIDInput{UserID: userID})
}

// SaveUser persists a user and moves its username index when the username changed
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}
	user := input.User
	if user.ID == "" {
		return errors.New("user ID cannot be empty")
	}

	if user.Username != "" {
		owner, err := r.client.Get(ctx, usernameKey(user.Username)).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if err == nil && owner != user.ID {
			return ErrUsernameTaken
		}
	}

	previous, err := r.GetUserByID(ctx, &GetUserByIDInput{UserID: user.ID})
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, userKeyPrefix+user.ID, userJSON, 0)
	if previous != nil && previous.Username != "" && !strings.EqualFold(previous.Username, user.Username) {
		pipe.Del(ctx, usernameKey(previous.Username))
	}
	if user.Username != "" {
		pipe.Set(ctx, usernameKey(user.Username), user.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

func usernameKey(username string) string {
	return usernameKeyPrefix + strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
}
