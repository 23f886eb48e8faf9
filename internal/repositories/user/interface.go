package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/partyline/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/partyline/internal/models"
)

// Repository defines the interface for identity lookup
type Repository interface {
	// GetUserByID retrieves a user by ID
	GetUserByID(ctx context.Context, input *GetUserByIDInput) (*models.User, error)

	// GetUserByUsername retrieves a user by username, case-insensitively
	GetUserByUsername(ctx context.Context, input *GetUserByUsernameInput) (*models.User, error)

	// SaveUser creates or updates a user
	SaveUser(ctx context.Context, input *SaveUserInput) error
}
