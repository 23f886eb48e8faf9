package gamestate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/partyline/internal/games"
)

// MemoryConfig holds configuration for the in-memory storage
type MemoryConfig struct {
	Registry *games.Registry
}

// memoryStorage keeps encoded games in a map. Every Get restores a fresh
// instance so callers never share a game.
type memoryStorage struct {
	mu       sync.RWMutex
	registry *games.Registry
	entries  map[string]envelope
}

// NewMemory creates an in-memory storage
func NewMemory(cfg *MemoryConfig) (*memoryStorage, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Registry == nil {
		return nil, errors.New("registry cannot be nil")
	}

	return &memoryStorage{
		registry: cfg.Registry,
		entries:  make(map[string]envelope),
	}, nil
}

func (s *memoryStorage) Get(ctx context.Context, input *GetInput) (games.Game, error) {
	if input == nil || input.PartyID == "" {
		return nil, errors.New("input and party ID cannot be empty")
	}

	s.mu.RLock()
	env, ok := s.entries[input.PartyID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrGameNotFound
	}

	return restore(s.registry, env)
}

func (s *memoryStorage) Set(ctx context.Context, input *SetInput) error {
	if input == nil || input.PartyID == "" || input.Game == nil {
		return errors.New("input, party ID and game cannot be empty")
	}

	env, err := encode(input.Game)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[input.PartyID] = env
	s.mu.Unlock()
	return nil
}

func (s *memoryStorage) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil || input.PartyID == "" {
		return errors.New("input and party ID cannot be empty")
	}

	s.mu.Lock()
	delete(s.entries, input.PartyID)
	s.mu.Unlock()
	return nil
}

func encode(game games.Game) (envelope, error) {
	state, err := game.MarshalState()
	if err != nil {
		return envelope{}, fmt.Errorf("failed to marshal game state: %w", err)
	}
	return envelope{Kind: game.Kind(), State: state}, nil
}

func restore(registry *games.Registry, env envelope) (games.Game, error) {
	def, ok := registry.Lookup(env.Kind)
	if !ok {
		return nil, fmt.Errorf("stored game has unknown kind %q", env.Kind)
	}
	game, err := def.Restore(env.State)
	if err != nil {
		return nil, fmt.Errorf("failed to restore %s game: %w", env.Kind, err)
	}
	return game, nil
}
