package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/partyline/internal/services/session Service

import (
	"context"

	"github.com/KirkDiggler/partyline/internal/games"
)

// Service owns the live game of every party and drives it through its
// lifecycle. Mutations of one party never overlap.
type Service interface {
	// StartMatch moves a WAITING party to ACTIVE and creates its game
	StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error)

	// NextRound begins a round
	NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error)

	// MiddleRoundAction applies an in-round action such as a vote
	MiddleRoundAction(ctx context.Context, input *MiddleRoundActionInput) (*MiddleRoundActionOutput, error)

	// FinishRound resolves the active round
	FinishRound(ctx context.Context, input *FinishRoundInput) (*FinishRoundOutput, error)

	// FinishMatch ends the match, closes the party and drops the game
	FinishMatch(ctx context.Context, input *FinishMatchInput) (*FinishMatchOutput, error)

	// GetGameState projects the live game for one viewer, nil when there is none
	GetGameState(ctx context.Context, input *GetGameStateInput) (*games.State, error)

	// Abandon drops the live game of a dissolved party
	Abandon(ctx context.Context, input *AbandonInput) error
}
