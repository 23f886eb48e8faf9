package party

import (
	"errors"

	"github.com/KirkDiggler/partyline/internal/models"
)

var (
	// ErrPartyNotFound is returned when a party is not found
	ErrPartyNotFound = errors.New("party not found")

	// ErrPlayerNotFound is returned when a membership is not found
	ErrPlayerNotFound = errors.New("party player not found")

	// ErrPlayerExists is returned when a user is already a member of the party
	ErrPlayerExists = errors.New("party player already exists")
)

type SavePartyInput struct {
	Party *models.Party
}

type GetPartyInput struct {
	PartyID string
}

type DeletePartyInput struct {
	PartyID string
}

type GetAvailablePartiesInput struct {
	// GameKind filters by kind when set
	GameKind models.GameKind
}

type GetAvailablePartiesOutput struct {
	Parties []*models.Party
}

type AddPlayerInput struct {
	Player *models.PartyPlayer
}

type TransferManagerInput struct {
	PartyID    string
	FromUserID string
	ToUserID   string
}

type RemovePlayerInput struct {
	PartyID string
	UserID  string

	// Successor is promoted to manager when set
	Successor string
}

type GetPlayersByPartyInput struct {
	PartyID string
}

type GetPlayersByPartyOutput struct {
	Players []*models.PartyPlayer
}

type GetActivePartyForUserInput struct {
	UserID string
}
