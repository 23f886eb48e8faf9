package coordinator

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/partyline/internal/services/coordinator Service

import (
	"context"
)

// Service is the only entry point for command sources. Each call resolves
// the caller's party, checks their role, runs the mutation and notifies the
// party. Failures are reported to the caller only.
type Service interface {
	// RegisterUser records who is talking to us and where to reach them
	RegisterUser(ctx context.Context, input *RegisterUserInput) error

	CreateParty(ctx context.Context, input *CreatePartyInput) (*CreatePartyOutput, error)
	JoinParty(ctx context.Context, input *JoinPartyInput) (*JoinPartyOutput, error)
	LeaveParty(ctx context.Context, input *LeavePartyInput) (*LeavePartyOutput, error)
	PromoteToManager(ctx context.Context, input *PromoteToManagerInput) (*PromoteToManagerOutput, error)
	GetMyParty(ctx context.Context, input *GetMyPartyInput) (*GetMyPartyOutput, error)
	GetAvailableParties(ctx context.Context, input *GetAvailablePartiesInput) (*GetAvailablePartiesOutput, error)
	GetParty(ctx context.Context, input *GetPartyInput) (*GetPartyOutput, error)

	StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error)
	NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error)
	MiddleRoundAction(ctx context.Context, input *MiddleRoundActionInput) (*MiddleRoundActionOutput, error)
	FinishRound(ctx context.Context, input *FinishRoundInput) (*FinishRoundOutput, error)
	FinishMatch(ctx context.Context, input *FinishMatchInput) (*FinishMatchOutput, error)
	GetGameState(ctx context.Context, input *GetGameStateInput) (*GetGameStateOutput, error)

	// Help sends the command list to the caller
	Help(ctx context.Context, input *HelpInput) error

	// Dispatch runs a command by name for callers that only have raw text
	Dispatch(ctx context.Context, input *DispatchInput) (*DispatchOutput, error)
}
