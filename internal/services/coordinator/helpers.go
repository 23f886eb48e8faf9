package coordinator

import (
	"context"
	"errors"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/models"
	userRepo "github.com/KirkDiggler/partyline/internal/repositories/user"
	"github.com/KirkDiggler/partyline/internal/services/messaging"
	partySvc "github.com/KirkDiggler/partyline/internal/services/party"
)

var managerVerbs = map[models.Action]string{
	models.ActionStartMatch:  "start the match",
	models.ActionNextRound:   "start a round",
	models.ActionFinishRound: "finish the round",
	models.ActionFinishMatch: "finish the match",
	models.ActionPromote:     "promote someone",
}

func (s *service) requireMember(ctx context.Context, userID string) (*models.Party, []*models.PartyPlayer, error) {
	party, err := s.parties.GetMyParty(ctx, &partySvc.GetMyPartyInput{UserID: userID})
	if err != nil {
		return nil, nil, err
	}
	if party == nil {
		return nil, nil, apperr.NotFound("no active party, join one first")
	}

	players, err := s.members(ctx, party.ID)
	if err != nil {
		return nil, nil, err
	}
	return party, players, nil
}

func (s *service) requireManager(ctx context.Context, userID string, action models.Action) (*models.Party, []*models.PartyPlayer, error) {
	party, players, err := s.requireMember(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	for _, p := range players {
		if p.UserID == userID && p.IsManager() {
			return party, players, nil
		}
	}
	return nil, nil, apperr.Unauthorized("only the party manager can %s", managerVerbs[action])
}

func (s *service) members(ctx context.Context, partyID string) ([]*models.PartyPlayer, error) {
	out, err := s.parties.GetPlayers(ctx, &partySvc.GetPlayersInput{PartyID: partyID})
	if err != nil {
		return nil, err
	}
	return out.Players, nil
}

// decode builds kind params for a phase from raw command arguments
func (s *service) decode(ctx context.Context, party *models.Party, userID string, phase games.Phase, args []string) (games.Params, error) {
	def, ok := s.registry.Lookup(party.GameKind)
	if !ok {
		return nil, apperr.Validation("this party plays an unknown game")
	}
	return def.Decode(ctx, &games.DecodeInput{
		Phase:    phase,
		ActorID:  userID,
		Args:     args,
		Language: party.Language,
		Resolver: s,
	})
}

// name returns a display name, falling back to the id
func (s *service) name(ctx context.Context, userID string) string {
	user, err := s.users.GetUserByID(ctx, &userRepo.GetUserByIDInput{UserID: userID})
	if err != nil {
		if !errors.Is(err, userRepo.ErrUserNotFound) {
			s.log.Warn("failed to look up user name", "user_id", userID, "error", err)
		}
		return userID
	}
	if n := user.Name(); n != "" {
		return n
	}
	return userID
}

func (s *service) names(ctx context.Context, players []*models.PartyPlayer) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, s.name(ctx, p.UserID))
	}
	return out
}

// userLanguage is the user's own preference
func (s *service) userLanguage(ctx context.Context, userID string) string {
	user, err := s.users.GetUserByID(ctx, &userRepo.GetUserByIDInput{UserID: userID})
	if err == nil && user.Language != "" {
		return user.Language
	}
	return s.defaultLanguage
}

// languageFor prefers the language of the user's party
func (s *service) languageFor(ctx context.Context, userID string) string {
	party, err := s.parties.GetMyParty(ctx, &partySvc.GetMyPartyInput{UserID: userID})
	if err == nil && party != nil && party.Language != "" {
		return party.Language
	}
	return s.userLanguage(ctx, userID)
}

// summarize asks the party's game kind to reduce a result to an outcome
func (s *service) summarize(party *models.Party, result games.Result) *games.Outcome {
	def, ok := s.registry.Lookup(party.GameKind)
	if !ok || result == nil {
		return nil
	}
	return def.Summarize(result)
}

func (s *service) midRoundEvent(ctx context.Context, party *models.Party, actorID string, result games.Result) any {
	outcome := s.summarize(party, result)
	if outcome == nil {
		return nil
	}
	return &messaging.VoteEvent{
		VoterName:    s.name(ctx, actorID),
		VotesCast:    outcome.Progress,
		PlayersTotal: outcome.Total,
	}
}

func (s *service) roundResultEvent(ctx context.Context, party *models.Party, result games.Result, round int) any {
	outcome := s.summarize(party, result)
	if outcome == nil {
		return nil
	}
	event := &messaging.RoundResultEvent{
		Round:  round,
		Winner: outcome.Winner,
	}
	if outcome.TargetID != "" {
		event.AccusedName = s.name(ctx, outcome.TargetID)
		event.AccusedVotes = outcome.TargetVotes
	}
	return event
}
