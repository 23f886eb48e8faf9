package party

import (
	"log/slog"

	"github.com/KirkDiggler/partyline/internal/common/clock"
	"github.com/KirkDiggler/partyline/internal/common/keylock"
	"github.com/KirkDiggler/partyline/internal/common/uuid"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/metrics"
	"github.com/KirkDiggler/partyline/internal/models"
	partyRepo "github.com/KirkDiggler/partyline/internal/repositories/party"
)

const (
	// DefaultMaxPlayers caps party size when Config.MaxPlayers is zero
	DefaultMaxPlayers = 12

	// MaxNameLength bounds party names
	MaxNameLength = 64
)

// Config holds the dependencies of the party service
type Config struct {
	Repository partyRepo.Repository

	// Registry tells which game kinds exist
	Registry *games.Registry

	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Locks is shared with the session manager so both serialize on the same keys
	Locks *keylock.Locker

	MaxPlayers      int
	DefaultLanguage string

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

type CreatePartyInput struct {
	UserID   string
	Name     string
	GameKind models.GameKind
	Language string
}

type CreatePartyOutput struct {
	Party   *models.Party
	Manager *models.PartyPlayer
}

type JoinPartyInput struct {
	UserID  string
	PartyID string
}

type JoinPartyOutput struct {
	Party  *models.Party
	Player *models.PartyPlayer
}

type LeavePartyInput struct {
	UserID string
}

// LeavePartyOutput reports what happened to the party the user left
type LeavePartyOutput struct {
	Party *models.Party

	// PromotedUserID is set when the manager left and the role moved on
	PromotedUserID string

	// Dissolved is true when the last member left and the party was deleted
	Dissolved bool
}

type PromoteToManagerInput struct {
	ActingUserID string
	TargetUserID string
}

type PromoteToManagerOutput struct {
	Party             *models.Party
	PreviousManagerID string
	NewManagerID      string
}

type GetMyPartyInput struct {
	UserID string
}

type GetAvailablePartiesInput struct {
	// GameKind filters by kind when set
	GameKind models.GameKind
}

type GetAvailablePartiesOutput struct {
	Parties []*models.Party
}

type GetPartyInput struct {
	PartyID string
}

type GetPlayersInput struct {
	PartyID string
}

type GetPlayersOutput struct {
	Players []*models.PartyPlayer
}

type UpdateStatusInput struct {
	PartyID string
	Status  models.PartyStatus

	// ExpectedStatus, when set, must match the current status or the update is refused
	ExpectedStatus models.PartyStatus
}

// UpdateStatusOutput carries the updated party and the members read under
// the same lock, so a match can snapshot exactly who was in the party.
type UpdateStatusOutput struct {
	Party   *models.Party
	Players []*models.PartyPlayer
}
