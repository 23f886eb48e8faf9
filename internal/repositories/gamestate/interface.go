package gamestate

//go:generate mockgen -package=mocks -destination=mocks/mock_storage.go github.com/KirkDiggler/partyline/internal/repositories/gamestate Storage

import (
	"context"

	"github.com/KirkDiggler/partyline/internal/games"
)

// Storage holds one live game instance per party
type Storage interface {
	// Get loads the game of a party, ErrGameNotFound when there is none
	Get(ctx context.Context, input *GetInput) (games.Game, error)

	// Set stores the game of a party, replacing any previous one
	Set(ctx context.Context, input *SetInput) error

	// Delete removes the game of a party. Deleting a missing game is not an error.
	Delete(ctx context.Context, input *DeleteInput) error
}
