// Package impostor implements the word-guessing social deduction game. Each
// round one player is the impostor; the others vote on who they think it is.
package impostor

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/models"
)

// Config holds the collaborators of a game
type Config struct {
	// Words is the secret word pool
	Words *WordPool

	// Picker chooses impostors and words
	Picker Picker
}

// Game is one impostor match
type Game struct {
	state  stored
	words  *WordPool
	picker Picker
}

var _ games.Game = (*Game)(nil)

// New creates an unstarted game
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Picker == nil {
		return nil, fmt.Errorf("picker cannot be nil")
	}
	words := cfg.Words
	if words == nil {
		words = DefaultWordPool()
	}

	return &Game{
		state: stored{
			CustomState: CustomState{
				CurrentRoundState: RoundState{
					Votes:      map[string]string{},
					RoundEnded: true,
				},
				WinHistory: []WinRecord{},
			},
		},
		words:  words,
		picker: cfg.Picker,
	}, nil
}

// Restore rebuilds a game from MarshalState output
func Restore(cfg *Config, data []byte) (*Game, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &g.state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal impostor state: %w", err)
	}
	if g.state.CustomState.CurrentRoundState.Votes == nil {
		g.state.CustomState.CurrentRoundState.Votes = map[string]string{}
	}
	if g.state.CustomState.WinHistory == nil {
		g.state.CustomState.WinHistory = []WinRecord{}
	}
	return g, nil
}

// Kind returns models.GameKindImpostor
func (g *Game) Kind() models.GameKind {
	return models.GameKindImpostor
}

// Start snapshots the players and resets the match
func (g *Game) Start(players []games.Player) error {
	if len(players) < MinPlayers {
		return apperr.Validation("the impostor game needs at least %d players, the party has %d", MinPlayers, len(players))
	}

	snapshot := make([]games.Player, len(players))
	copy(snapshot, players)

	g.state.CurrentRound = 0
	g.state.IsFinished = false
	g.state.Players = snapshot
	g.state.CurrentImpostorID = ""
	g.state.CurrentWord = ""
	g.state.CustomState = CustomState{
		CurrentRoundState: RoundState{
			Votes:      map[string]string{},
			RoundEnded: true,
		},
		WinHistory: []WinRecord{},
	}
	return nil
}

// AdvanceRound picks a new impostor and word and opens voting
func (g *Game) AdvanceRound(params games.Params) (games.Result, error) {
	p, ok := params.(NextRoundParams)
	if !ok {
		return nil, wrongParams(params)
	}
	if g.state.IsFinished {
		return nil, apperr.InvalidState(string(models.ActionNextRound), g.RoundEnded(), "the match is already finished")
	}
	if !g.RoundEnded() {
		return nil, apperr.InvalidState(string(models.ActionNextRound), false, "a round is already in progress")
	}
	if len(g.state.Players) == 0 {
		return nil, apperr.InvalidState(string(models.ActionNextRound), true, "the match has not started")
	}

	word, used, err := g.words.Pick(p.Language, p.Category, g.state.CustomState.UsedWords, g.picker)
	if err != nil {
		return nil, err
	}
	impostor := g.state.Players[g.picker.Intn(len(g.state.Players))].UserID

	g.state.CurrentRound++
	g.state.CurrentImpostorID = impostor
	g.state.CurrentWord = word
	g.state.CustomState.UsedWords = used
	g.state.CustomState.CurrentRoundState = RoundState{
		Votes:      map[string]string{},
		RoundEnded: false,
		Word:       word,
	}

	result := NextRoundResult{
		Round: g.state.CurrentRound,
		Word:  NotTheWord,
	}
	if p.UserID == impostor {
		result.Word = word
		result.IsImpostor = true
	}
	return result, nil
}

// ApplyMidRoundAction merges votes. A voter's latest vote replaces the previous one.
func (g *Game) ApplyMidRoundAction(params games.Params) (games.Result, error) {
	p, ok := params.(VoteParams)
	if !ok {
		return nil, wrongParams(params)
	}
	if g.RoundEnded() {
		return nil, apperr.InvalidState(string(models.ActionVote), true, "there is no round in progress to vote in")
	}
	if len(p.Votes) == 0 {
		return nil, apperr.Validation("no votes given")
	}

	for voter, target := range p.Votes {
		if !games.HasPlayer(g.state.Players, voter) {
			return nil, apperr.Validation("voter %s is not playing this match", voter)
		}
		if !games.HasPlayer(g.state.Players, target) {
			return nil, apperr.Validation("%s is not playing this match", target)
		}
		if voter == target {
			return nil, apperr.Validation("you cannot vote for yourself")
		}
	}

	round := &g.state.CustomState.CurrentRoundState
	for voter, target := range p.Votes {
		round.Votes[voter] = target
	}

	return VoteResult{
		VotesCast:    len(round.Votes),
		PlayersTotal: len(g.state.Players),
	}, nil
}

// ResolveRound tallies the votes. The player with strictly the most votes is
// accused; on a tie the first of the tied players in join order is accused.
// The impostor wins when the accused is someone else or nobody voted.
func (g *Game) ResolveRound(params games.Params) (games.Result, error) {
	if _, ok := params.(FinishRoundParams); !ok {
		return nil, wrongParams(params)
	}
	if g.RoundEnded() {
		return nil, apperr.InvalidState(string(models.ActionFinishRound), true, "there is no round in progress to finish")
	}

	round := &g.state.CustomState.CurrentRoundState
	tally := make(map[string]int, len(round.Votes))
	for _, target := range round.Votes {
		tally[target]++
	}

	accused := ""
	best := 0
	for _, p := range g.state.Players {
		if n := tally[p.UserID]; n > best {
			best = n
			accused = p.UserID
		}
	}

	impostorWins := accused != g.state.CurrentImpostorID
	round.RoundEnded = true
	round.ImpostorWins = &impostorWins
	g.state.CustomState.WinHistory = append(g.state.CustomState.WinHistory, WinRecord{
		RoundNumber: g.state.CurrentRound,
		WasImpostor: impostorWins,
	})

	return FinishRoundResult{
		RoundFinished: true,
		ImpostorWins:  impostorWins,
		AccusedID:     accused,
		Tally:         tally,
	}, nil
}

// FinishMatch closes the match
func (g *Game) FinishMatch() error {
	if !g.RoundEnded() {
		return apperr.InvalidState(string(models.ActionFinishMatch), false, "finish the current round before ending the match")
	}
	g.state.IsFinished = true
	return nil
}

// StateFor projects the game for userID. Only the current impostor sees the
// secret word; the impostor's id is never part of the projection.
func (g *Game) StateFor(userID string) *games.State {
	round := g.state.CustomState.CurrentRoundState
	isImpostor := userID != "" && userID == g.state.CurrentImpostorID

	word := HiddenWord
	if isImpostor && round.Word != "" {
		word = round.Word
	}

	votes := make(map[string]string, len(round.Votes))
	for k, v := range round.Votes {
		votes[k] = v
	}
	history := make([]WinRecord, len(g.state.CustomState.WinHistory))
	copy(history, g.state.CustomState.WinHistory)
	players := make([]games.Player, len(g.state.Players))
	copy(players, g.state.Players)

	return &games.State{
		Kind:         models.GameKindImpostor,
		CurrentRound: g.state.CurrentRound,
		IsFinished:   g.state.IsFinished,
		RoundEnded:   round.RoundEnded,
		Players:      players,
		Custom: &View{
			Votes:        votes,
			RoundEnded:   round.RoundEnded,
			Word:         word,
			ImpostorWins: round.ImpostorWins,
			WinHistory:   history,
			IsImpostor:   isImpostor,
			Score:        g.score(),
		},
	}
}

// RoundEnded reports whether no round is active
func (g *Game) RoundEnded() bool {
	return g.state.CustomState.CurrentRoundState.RoundEnded
}

// CurrentRound returns the number of rounds started
func (g *Game) CurrentRound() int {
	return g.state.CurrentRound
}

// IsFinished reports whether the match is over
func (g *Game) IsFinished() bool {
	return g.state.IsFinished
}

// Players returns the match snapshot
func (g *Game) Players() []games.Player {
	players := make([]games.Player, len(g.state.Players))
	copy(players, g.state.Players)
	return players
}

// MarshalState encodes the canonical state including the secrets
func (g *Game) MarshalState() ([]byte, error) {
	return json.Marshal(g.state)
}

// ImpostorID returns the current impostor. It exists for storage and tests;
// it must not be sent to players.
func (g *Game) ImpostorID() string {
	return g.state.CurrentImpostorID
}

func (g *Game) score() Score {
	var s Score
	for _, r := range g.state.CustomState.WinHistory {
		if r.WasImpostor {
			s.ImpostorWins++
		} else {
			s.CrewWins++
		}
	}
	return s
}

func wrongParams(params games.Params) error {
	if params == nil {
		return apperr.Validation("missing parameters for the impostor game")
	}
	return apperr.Validation("parameters for %s cannot be used in the impostor game", params.GameKind())
}
