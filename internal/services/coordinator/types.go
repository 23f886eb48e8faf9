package coordinator

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/metrics"
	"github.com/KirkDiggler/partyline/internal/models"
	userRepo "github.com/KirkDiggler/partyline/internal/repositories/user"
	"github.com/KirkDiggler/partyline/internal/services/notification"
	partySvc "github.com/KirkDiggler/partyline/internal/services/party"
	"github.com/KirkDiggler/partyline/internal/services/session"
)

// DefaultTimeout bounds every command, locks included
const DefaultTimeout = 5 * time.Second

// Config holds the dependencies of the coordinator
type Config struct {
	Parties       partySvc.Service
	Sessions      session.Service
	Notifications notification.Service
	Users         userRepo.Repository
	Registry      *games.Registry

	// Timeout applies to each command; zero means DefaultTimeout
	Timeout time.Duration

	// DefaultGameKind is used by "create" when no kind is given
	DefaultGameKind models.GameKind

	// DefaultLanguage is used for users without a party or a preference
	DefaultLanguage string

	// Categories lists the word categories shown by help (optional)
	Categories func(language string) []string

	// Tracer defaults to the global tracer provider
	Tracer trace.Tracer

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

type RegisterUserInput struct {
	User *models.User
}

type CreatePartyInput struct {
	UserID   string
	Name     string
	GameKind models.GameKind
	Language string
}

type CreatePartyOutput struct {
	Party *models.Party
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

type LeavePartyOutput struct {
	Party          *models.Party
	PromotedUserID string
	Dissolved      bool
}

type PromoteToManagerInput struct {
	UserID string

	// Target is a username or user id
	Target string
}

type PromoteToManagerOutput struct {
	Party        *models.Party
	NewManagerID string
}

type GetMyPartyInput struct {
	UserID string
}

// GetMyPartyOutput has a nil Party when the user is not in one
type GetMyPartyOutput struct {
	Party   *models.Party
	Players []*models.PartyPlayer
}

type GetAvailablePartiesInput struct {
	UserID   string
	GameKind models.GameKind
}

type GetAvailablePartiesOutput struct {
	Parties []*models.Party
}

type GetPartyInput struct {
	PartyID string
}

type GetPartyOutput struct {
	Party   *models.Party
	Players []*models.PartyPlayer
}

type StartMatchInput struct {
	UserID string
}

type StartMatchOutput struct {
	Party   *models.Party
	Players []games.Player
}

type NextRoundInput struct {
	UserID string

	// Params defaults to the kind's params for a bare "next"
	Params games.Params
}

type NextRoundOutput struct {
	Round  int
	Result games.Result
}

type MiddleRoundActionInput struct {
	UserID string
	Params games.Params
}

type MiddleRoundActionOutput struct {
	Result games.Result
}

type FinishRoundInput struct {
	UserID string
	Params games.Params
}

type FinishRoundOutput struct {
	Result games.Result
}

type FinishMatchInput struct {
	UserID string
}

// FinishMatchOutput carries the caller's view of the final state
type FinishMatchOutput struct {
	Party *models.Party
	State *games.State
}

type GetGameStateInput struct {
	UserID string
}

// GetGameStateOutput has a nil State when no match is running
type GetGameStateOutput struct {
	Party *models.Party
	State *games.State
}

type HelpInput struct {
	UserID string
}

type DispatchInput struct {
	UserID string

	// Action is a command name such as "vote" or "/vote"
	Action string
	Args   []string
}

type DispatchOutput struct {
	Action models.Action
}
