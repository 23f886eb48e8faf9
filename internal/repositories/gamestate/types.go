package gamestate

import (
	"encoding/json"
	"errors"

	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/models"
)

// ErrGameNotFound is returned when a party has no live game
var ErrGameNotFound = errors.New("game not found")

type GetInput struct {
	PartyID string
}

type SetInput struct {
	PartyID string
	Game    games.Game
}

type DeleteInput struct {
	PartyID string
}

// envelope is the stored form of a game
type envelope struct {
	Kind  models.GameKind `json:"kind"`
	State json.RawMessage `json:"state"`
}
