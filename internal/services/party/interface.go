package party

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/partyline/internal/services/party Service

import (
	"context"

	"github.com/KirkDiggler/partyline/internal/models"
)

// Service defines party membership operations. It is the only writer of
// party and membership records.
type Service interface {
	// CreateParty creates a WAITING party with the caller as its manager
	CreateParty(ctx context.Context, input *CreatePartyInput) (*CreatePartyOutput, error)

	// JoinParty adds the caller to a WAITING party
	JoinParty(ctx context.Context, input *JoinPartyInput) (*JoinPartyOutput, error)

	// LeaveParty removes the caller from their party, handing over or dissolving it
	LeaveParty(ctx context.Context, input *LeavePartyInput) (*LeavePartyOutput, error)

	// PromoteToManager swaps the manager role to another member
	PromoteToManager(ctx context.Context, input *PromoteToManagerInput) (*PromoteToManagerOutput, error)

	// GetMyParty returns the caller's non-finished party, or nil
	GetMyParty(ctx context.Context, input *GetMyPartyInput) (*models.Party, error)

	// GetAvailableParties lists joinable parties, oldest first
	GetAvailableParties(ctx context.Context, input *GetAvailablePartiesInput) (*GetAvailablePartiesOutput, error)

	// GetParty returns a party by ID, or nil
	GetParty(ctx context.Context, input *GetPartyInput) (*models.Party, error)

	// GetPlayers lists the members of a party in join order
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)

	// UpdateStatus moves a party to a new lifecycle status
	UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error)
}
