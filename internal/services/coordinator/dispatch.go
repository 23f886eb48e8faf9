package coordinator

import (
	"context"
	"strings"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/models"
)

// commands maps text command names and aliases to actions
var commands = map[string]models.Action{
	"create":      models.ActionCreateParty,
	"new":         models.ActionCreateParty,
	"join":        models.ActionJoinParty,
	"leave":       models.ActionLeaveParty,
	"promote":     models.ActionPromote,
	"parties":     models.ActionListParties,
	"list":        models.ActionListParties,
	"myparty":     models.ActionMyParty,
	"me":          models.ActionMyParty,
	"start":       models.ActionStartMatch,
	"next":        models.ActionNextRound,
	"nextround":   models.ActionNextRound,
	"vote":        models.ActionVote,
	"finishround": models.ActionFinishRound,
	"endround":    models.ActionFinishRound,
	"finishmatch": models.ActionFinishMatch,
	"endmatch":    models.ActionFinishMatch,
	"status":      models.ActionGameState,
	"state":       models.ActionGameState,
	"help":        models.ActionHelp,
}

// CommandAction returns the action a command name maps to
func CommandAction(name string) (models.Action, bool) {
	action, ok := commands[strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "/"))]
	return action, ok
}

// Dispatch runs a command by name
func (s *service) Dispatch(ctx context.Context, input *DispatchInput) (*DispatchOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	action, ok := CommandAction(input.Action)
	if !ok {
		err := s.run(ctx, input.UserID, models.Action("unknown"), func(context.Context) error {
			return apperr.Validation("I don't know the command %q, send help for the list", input.Action)
		})
		return nil, err
	}

	userID := input.UserID
	args := input.Args
	var err error

	switch action {
	case models.ActionCreateParty:
		name, kind, lang := s.parseCreateArgs(args)
		_, err = s.CreateParty(ctx, &CreatePartyInput{UserID: userID, Name: name, GameKind: kind, Language: lang})
	case models.ActionJoinParty:
		_, err = s.JoinParty(ctx, &JoinPartyInput{UserID: userID, PartyID: strings.ToLower(first(args))})
	case models.ActionLeaveParty:
		_, err = s.LeaveParty(ctx, &LeavePartyInput{UserID: userID})
	case models.ActionPromote:
		_, err = s.PromoteToManager(ctx, &PromoteToManagerInput{UserID: userID, Target: strings.TrimPrefix(first(args), "@")})
	case models.ActionListParties:
		var kind models.GameKind
		if k := first(args); k != "" {
			kind = models.ParseGameKind(k)
		}
		_, err = s.GetAvailableParties(ctx, &GetAvailablePartiesInput{UserID: userID, GameKind: kind})
	case models.ActionMyParty:
		_, err = s.GetMyParty(ctx, &GetMyPartyInput{UserID: userID})
	case models.ActionStartMatch:
		_, err = s.StartMatch(ctx, &StartMatchInput{UserID: userID})
	case models.ActionNextRound:
		var params games.Params
		params, err = s.decodeFor(ctx, userID, action, games.PhaseNextRound, args)
		if err == nil {
			_, err = s.NextRound(ctx, &NextRoundInput{UserID: userID, Params: params})
		}
	case models.ActionVote:
		var params games.Params
		params, err = s.decodeFor(ctx, userID, action, games.PhaseMidRound, args)
		if err == nil {
			_, err = s.MiddleRoundAction(ctx, &MiddleRoundActionInput{UserID: userID, Params: params})
		}
	case models.ActionFinishRound:
		_, err = s.FinishRound(ctx, &FinishRoundInput{UserID: userID})
	case models.ActionFinishMatch:
		_, err = s.FinishMatch(ctx, &FinishMatchInput{UserID: userID})
	case models.ActionGameState:
		_, err = s.GetGameState(ctx, &GetGameStateInput{UserID: userID})
	case models.ActionHelp:
		err = s.Help(ctx, &HelpInput{UserID: userID})
	}
	if err != nil {
		return nil, err
	}

	return &DispatchOutput{Action: action}, nil
}

// decodeFor decodes arguments against the caller's party. A decode failure
// is reported like any other command failure.
func (s *service) decodeFor(ctx context.Context, userID string, action models.Action, phase games.Phase, args []string) (games.Params, error) {
	dctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	party, _, err := s.requireMember(dctx, userID)
	if err == nil {
		var params games.Params
		if params, err = s.decode(dctx, party, userID, phase, args); err == nil {
			return params, nil
		}
	}
	return nil, s.run(ctx, userID, action, func(context.Context) error { return err })
}

// parseCreateArgs reads "name [kind] [language]". Trailing words that name a
// registered kind or a language are taken as such; the rest is the name.
func (s *service) parseCreateArgs(args []string) (string, models.GameKind, string) {
	rest := append([]string(nil), args...)
	var kind models.GameKind
	var lang string

	if n := len(rest); n > 1 && isLanguage(rest[n-1]) {
		lang = strings.ToLower(rest[n-1])
		rest = rest[:n-1]
	}
	if n := len(rest); n > 1 {
		if _, ok := s.registry.Lookup(models.ParseGameKind(rest[n-1])); ok {
			kind = models.ParseGameKind(rest[n-1])
			rest = rest[:n-1]
		}
	}
	return strings.Join(rest, " "), kind, lang
}

func isLanguage(word string) bool {
	switch strings.ToLower(word) {
	case "en", "es", "pt", "pt-br", "es-mx", "en-us":
		return true
	}
	return false
}

func first(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}
