package impostor

import (
	"context"
	"strings"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/models"
)

// Definition registers the impostor kind. Every game built from it shares
// cfg's word pool and picker.
func Definition(cfg *Config) (*games.Definition, error) {
	// validate once so New can't fail later
	if _, err := New(cfg); err != nil {
		return nil, err
	}

	return &games.Definition{
		Kind:       models.GameKindImpostor,
		MinPlayers: MinPlayers,
		New: func() games.Game {
			g, _ := New(cfg)
			return g
		},
		Restore: func(data []byte) (games.Game, error) {
			return Restore(cfg, data)
		},
		Decode:    Decode,
		Summarize: Summarize,
	}, nil
}

// Sides that can take a round
const (
	TeamImpostor = "impostor"
	TeamCrew     = "crew"
)

// Summarize turns vote and round results into outcomes
func Summarize(result games.Result) *games.Outcome {
	switch r := result.(type) {
	case VoteResult:
		return &games.Outcome{Progress: r.VotesCast, Total: r.PlayersTotal}
	case FinishRoundResult:
		out := &games.Outcome{Winner: TeamCrew}
		if r.ImpostorWins {
			out.Winner = TeamImpostor
		}
		if r.AccusedID != "" {
			out.TargetID = r.AccusedID
			out.TargetVotes = r.Tally[r.AccusedID]
		}
		return out
	default:
		return nil
	}
}

// Decode builds impostor params from a text command.
//
//	next [category]   -> NextRoundParams
//	vote <player>     -> VoteParams for the acting user
//	finishround       -> FinishRoundParams
func Decode(ctx context.Context, input *games.DecodeInput) (games.Params, error) {
	if input == nil {
		return nil, apperr.Validation("missing command input")
	}

	switch input.Phase {
	case games.PhaseNextRound:
		params := NextRoundParams{
			UserID:   input.ActorID,
			Language: input.Language,
		}
		if len(input.Args) > 0 {
			params.Category = strings.ToLower(strings.TrimSpace(input.Args[0]))
		}
		return params, nil

	case games.PhaseMidRound:
		if len(input.Args) == 0 || strings.TrimSpace(input.Args[0]) == "" {
			return nil, apperr.Validation("tell me who you are voting for, e.g. vote alice")
		}
		target := strings.TrimPrefix(strings.TrimSpace(input.Args[0]), "@")
		if input.Resolver != nil {
			id, err := input.Resolver.ResolveUserID(ctx, target)
			if err != nil {
				return nil, err
			}
			target = id
		}
		return VoteParams{Votes: map[string]string{input.ActorID: target}}, nil

	case games.PhaseFinishRound:
		return FinishRoundParams{}, nil

	default:
		return nil, apperr.Validation("the impostor game has no %s action", input.Phase)
	}
}
