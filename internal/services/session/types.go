package session

import (
	"log/slog"

	"github.com/KirkDiggler/partyline/internal/common/keylock"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/metrics"
	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/repositories/gamestate"
	partySvc "github.com/KirkDiggler/partyline/internal/services/party"
)

// Config holds the dependencies of the session manager
type Config struct {
	// Parties is the only writer of party records; status changes go through it
	Parties partySvc.Service

	Storage  gamestate.Storage
	Registry *games.Registry

	// Locks may be shared with the party service
	Locks *keylock.Locker

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// ViewFunc projects a game for one viewer
type ViewFunc func(userID string) *games.State

type StartMatchInput struct {
	PartyID string
}

type StartMatchOutput struct {
	Party   *models.Party
	Players []games.Player
	View    ViewFunc
}

type NextRoundInput struct {
	PartyID string
	UserID  string
	Params  games.Params
}

type NextRoundOutput struct {
	Round  int
	Result games.Result
	View   ViewFunc
}

type MiddleRoundActionInput struct {
	PartyID string
	Params  games.Params
}

type MiddleRoundActionOutput struct {
	Result games.Result
	View   ViewFunc
}

type FinishRoundInput struct {
	PartyID string
	Params  games.Params
}

type FinishRoundOutput struct {
	Result games.Result
	View   ViewFunc
}

type FinishMatchInput struct {
	PartyID string
}

// FinishMatchOutput carries the final state; the game is no longer stored
type FinishMatchOutput struct {
	Party *models.Party
	View  ViewFunc
}

type GetGameStateInput struct {
	PartyID string
	UserID  string
}

type AbandonInput struct {
	PartyID string
}
