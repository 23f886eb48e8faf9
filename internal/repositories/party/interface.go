package party

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/partyline/internal/repositories/party Repository

import (
	"context"

	"github.com/KirkDiggler/partyline/internal/models"
)

// Repository defines the interface for party and membership persistence
type Repository interface {
	// SaveParty creates or replaces a party
	SaveParty(ctx context.Context, input *SavePartyInput) error

	// GetParty retrieves a party by ID
	GetParty(ctx context.Context, input *GetPartyInput) (*models.Party, error)

	// DeleteParty removes a party and all of its memberships
	DeleteParty(ctx context.Context, input *DeletePartyInput) error

	// GetAvailableParties lists WAITING parties, oldest first
	GetAvailableParties(ctx context.Context, input *GetAvailablePartiesInput) (*GetAvailablePartiesOutput, error)

	// AddPlayer creates a membership
	AddPlayer(ctx context.Context, input *AddPlayerInput) error

	// TransferManager hands the manager role from one member to another in a
	// single write; ErrPlayerNotFound if either is not a member
	TransferManager(ctx context.Context, input *TransferManagerInput) error

	// RemovePlayer deletes a membership. A set Successor becomes manager in
	// the same write.
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) error

	// GetPlayersByParty lists the members of a party in join order
	GetPlayersByParty(ctx context.Context, input *GetPlayersByPartyInput) (*GetPlayersByPartyOutput, error)

	// GetActivePartyForUser returns the non-finished party the user belongs to
	GetActivePartyForUser(ctx context.Context, input *GetActivePartyForUserInput) (*models.Party, error)
}
