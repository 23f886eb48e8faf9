package impostor

import (
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/models"
)

const (
	// MinPlayers is the minimum number of players required to start a match
	MinPlayers = 3

	// NotTheWord is returned from NextRound to every caller but the impostor
	NotTheWord = "not the word"

	// HiddenWord replaces the secret word in views of non-impostors
	HiddenWord = "???"
)

// Picker chooses a uniform index in [0, n)
type Picker interface {
	Intn(n int) int
}

// NextRoundParams starts a round
type NextRoundParams struct {
	// UserID is the caller; only the impostor gets the word back
	UserID string

	// Category restricts the word pool (optional)
	Category string

	// Language selects the word list
	Language string
}

func (NextRoundParams) GameKind() models.GameKind { return models.GameKindImpostor }

// NextRoundResult is returned to the caller of NextRound
type NextRoundResult struct {
	Round      int
	Word       string
	IsImpostor bool
}

func (NextRoundResult) GameKind() models.GameKind { return models.GameKindImpostor }

// VoteParams carries voter -> voted-for entries merged into the round
type VoteParams struct {
	Votes map[string]string
}

func (VoteParams) GameKind() models.GameKind { return models.GameKindImpostor }

// VoteResult reports how many votes the round holds after merging
type VoteResult struct {
	VotesCast    int
	PlayersTotal int
}

func (VoteResult) GameKind() models.GameKind { return models.GameKindImpostor }

// FinishRoundParams ends the active round
type FinishRoundParams struct{}

func (FinishRoundParams) GameKind() models.GameKind { return models.GameKindImpostor }

// FinishRoundResult is the scored outcome of a round
type FinishRoundResult struct {
	RoundFinished bool
	ImpostorWins  bool
	AccusedID     string
	Tally         map[string]int
}

func (FinishRoundResult) GameKind() models.GameKind { return models.GameKindImpostor }

// RoundState is the player-visible state of the current round
type RoundState struct {
	Votes        map[string]string `json:"votes"`
	RoundEnded   bool              `json:"roundEnded"`
	Word         string            `json:"word"`
	ImpostorWins *bool             `json:"impostorWins"`
}

// WinRecord is appended once per finished round
type WinRecord struct {
	RoundNumber int  `json:"roundNumber"`
	WasImpostor bool `json:"wasImpostor"`
}

// CustomState is the kind-specific part of the stored game
type CustomState struct {
	CurrentRoundState RoundState  `json:"currentRoundState"`
	WinHistory        []WinRecord `json:"winHistory"`
	UsedWords         []string    `json:"usedWords,omitempty"`
}

// Score sums the win history
type Score struct {
	ImpostorWins int `json:"impostorWins"`
	CrewWins     int `json:"crewWins"`
}

// View is the per-viewer projection placed in games.State.Custom
type View struct {
	Votes        map[string]string `json:"votes"`
	RoundEnded   bool              `json:"roundEnded"`
	Word         string            `json:"word"`
	ImpostorWins *bool             `json:"impostorWins,omitempty"`
	WinHistory   []WinRecord       `json:"winHistory"`
	IsImpostor   bool              `json:"isImpostor"`
	Score        Score             `json:"score"`
}

// stored is the full canonical shape written to game state storage
type stored struct {
	CurrentRound      int            `json:"currentRound"`
	IsFinished        bool           `json:"isFinished"`
	Players           []games.Player `json:"players"`
	CustomState       CustomState    `json:"customState"`
	CurrentImpostorID string         `json:"currentImpostorId"`
	CurrentWord       string         `json:"currentWord"`
}
