// Package games defines the lifecycle contract every game kind implements
// and the registry the session manager uses to build and restore them.
package games

import (
	"github.com/KirkDiggler/partyline/internal/models"
)

// Player is one participant snapshotted at match start
type Player struct {
	UserID    string `json:"userId"`
	IsManager bool   `json:"isManager"`
}

// Params is a kind-specific action payload. Each kind rejects params that
// belong to another kind.
type Params interface {
	GameKind() models.GameKind
}

// Result is a kind-specific action outcome
type Result interface {
	GameKind() models.GameKind
}

// State is the per-viewer projection of a game instance. Custom holds the
// kind's own redacted view.
type State struct {
	PartyID      string          `json:"partyId"`
	Kind         models.GameKind `json:"kind"`
	CurrentRound int             `json:"currentRound"`
	IsFinished   bool            `json:"isFinished"`
	RoundEnded   bool            `json:"roundEnded"`
	Players      []Player        `json:"players"`
	Custom       any             `json:"customState,omitempty"`
}

// Outcome is the kind-neutral summary of an action result that
// notifications are built from
type Outcome struct {
	// Progress and Total count participation in the round, e.g. votes cast of players
	Progress int
	Total    int

	// TargetID is the player a resolved round singled out, empty when nobody was
	TargetID    string
	TargetVotes int

	// Winner names the side that took the round
	Winner string
}

// Game is one live match of a kind. Implementations are not safe for
// concurrent use; the session manager serializes access per party.
type Game interface {
	// Kind returns the game kind
	Kind() models.GameKind

	// Start snapshots the players and resets all round state
	Start(players []Player) error

	// AdvanceRound begins a new round
	AdvanceRound(params Params) (Result, error)

	// ApplyMidRoundAction records an action taken while a round is active
	ApplyMidRoundAction(params Params) (Result, error)

	// ResolveRound ends the active round and scores it
	ResolveRound(params Params) (Result, error)

	// FinishMatch marks the match as finished
	FinishMatch() error

	// StateFor projects the game for one viewer, hiding what they may not see
	StateFor(userID string) *State

	// RoundEnded is the universal gate: true when no round is active
	RoundEnded() bool

	// CurrentRound is the number of rounds started so far
	CurrentRound() int

	// IsFinished reports whether FinishMatch was called
	IsFinished() bool

	// Players returns the snapshot taken at Start
	Players() []Player

	// MarshalState encodes the full canonical state, secrets included, for storage
	MarshalState() ([]byte, error)
}

// HasPlayer reports whether userID is part of the snapshot
func HasPlayer(players []Player, userID string) bool {
	for _, p := range players {
		if p.UserID == userID {
			return true
		}
	}
	return false
}
