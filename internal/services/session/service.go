package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/common/keylock"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/logger"
	"github.com/KirkDiggler/partyline/internal/metrics"
	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/repositories/gamestate"
	partySvc "github.com/KirkDiggler/partyline/internal/services/party"
)

// Define errors
var (
	ErrNilConfig   = errors.New("config cannot be nil")
	ErrNilParties  = errors.New("party service cannot be nil")
	ErrNilStorage  = errors.New("game state storage cannot be nil")
	ErrNilRegistry = errors.New("game registry cannot be nil")
)

type service struct {
	parties  partySvc.Service
	storage  gamestate.Storage
	registry *games.Registry
	locks    *keylock.Locker
	log      *slog.Logger
	metrics  *metrics.Metrics
}

// New creates a new session manager
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Parties == nil {
		return nil, ErrNilParties
	}
	if cfg.Storage == nil {
		return nil, ErrNilStorage
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	locks := cfg.Locks
	if locks == nil {
		locks = keylock.New()
	}

	return &service{
		parties:  cfg.Parties,
		storage:  cfg.Storage,
		registry: cfg.Registry,
		locks:    locks,
		log:      logger.OrDiscard(cfg.Logger),
		metrics:  cfg.Metrics,
	}, nil
}

// StartMatch snapshots the party members, flips the party to ACTIVE and
// stores a fresh game. Any failure after the status flip puts the party
// back to WAITING.
func (s *service) StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error) {
	if input == nil || input.PartyID == "" {
		return nil, apperr.Validation("missing party")
	}
	action := string(models.ActionStartMatch)

	unlock, err := s.lock(ctx, input.PartyID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	party, err := s.parties.GetParty(ctx, &partySvc.GetPartyInput{PartyID: input.PartyID})
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, apperr.NotFound("party %s does not exist", input.PartyID)
	}
	if !party.Status.IsWaiting() {
		return nil, apperr.InvalidState(action, true, "the match has already started")
	}

	def, ok := s.registry.Lookup(party.GameKind)
	if !ok {
		return nil, apperr.Validation("unknown game %q", party.GameKind)
	}

	current, err := s.parties.GetPlayers(ctx, &partySvc.GetPlayersInput{PartyID: party.ID})
	if err != nil {
		return nil, err
	}
	if len(current.Players) < def.MinPlayers {
		return nil, notEnoughPlayers(def.MinPlayers, len(current.Players))
	}

	updated, err := s.parties.UpdateStatus(ctx, &partySvc.UpdateStatusInput{
		PartyID:        party.ID,
		Status:         models.PartyStatusActive,
		ExpectedStatus: models.PartyStatusWaiting,
	})
	if err != nil {
		return nil, err
	}

	// membership is frozen from here on; re-check what was read under the party lock
	if len(updated.Players) < def.MinPlayers {
		s.revertToWaiting(ctx, party.ID)
		return nil, notEnoughPlayers(def.MinPlayers, len(updated.Players))
	}

	snapshot := make([]games.Player, 0, len(updated.Players))
	for _, p := range updated.Players {
		snapshot = append(snapshot, games.Player{UserID: p.UserID, IsManager: p.IsManager()})
	}

	game := def.New()
	if err := game.Start(snapshot); err != nil {
		s.revertToWaiting(ctx, party.ID)
		return nil, err
	}
	if err := s.save(ctx, party.ID, game); err != nil {
		s.revertToWaiting(ctx, party.ID)
		return nil, err
	}

	s.log.Info("match started", "party_id", party.ID, "kind", party.GameKind, "players", len(snapshot))

	return &StartMatchOutput{
		Party:   updated.Party,
		Players: game.Players(),
		View:    viewOf(party.ID, game),
	}, nil
}

// NextRound begins a round. The caller learns the secret only if the game
// decides they may.
func (s *service) NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error) {
	if input == nil || input.PartyID == "" {
		return nil, apperr.Validation("missing party")
	}
	action := string(models.ActionNextRound)

	var out *NextRoundOutput
	err := s.mutate(ctx, input.PartyID, action, true, input.Params, func(game games.Game) error {
		result, err := game.AdvanceRound(input.Params)
		if err != nil {
			return err
		}
		out = &NextRoundOutput{
			Round:  game.CurrentRound(),
			Result: result,
			View:   viewOf(input.PartyID, game),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("round started", "party_id", input.PartyID, "round", out.Round)
	return out, nil
}

// MiddleRoundAction applies an in-round action
func (s *service) MiddleRoundAction(ctx context.Context, input *MiddleRoundActionInput) (*MiddleRoundActionOutput, error) {
	if input == nil || input.PartyID == "" {
		return nil, apperr.Validation("missing party")
	}

	var out *MiddleRoundActionOutput
	err := s.mutate(ctx, input.PartyID, string(models.ActionVote), false, input.Params, func(game games.Game) error {
		result, err := game.ApplyMidRoundAction(input.Params)
		if err != nil {
			return err
		}
		out = &MiddleRoundActionOutput{
			Result: result,
			View:   viewOf(input.PartyID, game),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FinishRound resolves and scores the active round
func (s *service) FinishRound(ctx context.Context, input *FinishRoundInput) (*FinishRoundOutput, error) {
	if input == nil || input.PartyID == "" {
		return nil, apperr.Validation("missing party")
	}

	var out *FinishRoundOutput
	err := s.mutate(ctx, input.PartyID, string(models.ActionFinishRound), false, input.Params, func(game games.Game) error {
		result, err := game.ResolveRound(input.Params)
		if err != nil {
			return err
		}
		out = &FinishRoundOutput{
			Result: result,
			View:   viewOf(input.PartyID, game),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("round finished", "party_id", input.PartyID)
	return out, nil
}

// FinishMatch ends the match. The party becomes FINISHED and the game is
// removed from storage; the final state is still returned for broadcasting.
func (s *service) FinishMatch(ctx context.Context, input *FinishMatchInput) (*FinishMatchOutput, error) {
	if input == nil || input.PartyID == "" {
		return nil, apperr.Validation("missing party")
	}
	action := string(models.ActionFinishMatch)

	unlock, err := s.lock(ctx, input.PartyID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	game, err := s.load(ctx, input.PartyID, action)
	if err != nil {
		return nil, err
	}
	if err := gate(game, action, true); err != nil {
		return nil, err
	}
	if err := game.FinishMatch(); err != nil {
		return nil, err
	}

	updated, err := s.parties.UpdateStatus(ctx, &partySvc.UpdateStatusInput{
		PartyID:        input.PartyID,
		Status:         models.PartyStatusFinished,
		ExpectedStatus: models.PartyStatusActive,
	})
	if err != nil {
		return nil, err
	}

	if err := s.storage.Delete(ctx, &gamestate.DeleteInput{PartyID: input.PartyID}); err != nil {
		// the party is closed; a leftover game is unreachable and only wastes space
		s.log.Error("failed to delete finished game", "party_id", input.PartyID, "error", err)
	}

	s.log.Info("match finished", "party_id", input.PartyID, "rounds", game.CurrentRound())

	return &FinishMatchOutput{
		Party: updated.Party,
		View:  viewOf(input.PartyID, game),
	}, nil
}

// GetGameState projects the live game for userID
func (s *service) GetGameState(ctx context.Context, input *GetGameStateInput) (*games.State, error) {
	if input == nil || input.PartyID == "" {
		return nil, apperr.Validation("missing party")
	}

	game, err := s.storage.Get(ctx, &gamestate.GetInput{PartyID: input.PartyID})
	if err != nil {
		if errors.Is(err, gamestate.ErrGameNotFound) {
			return nil, nil
		}
		return nil, apperr.External("game storage is unavailable", err)
	}

	return viewOf(input.PartyID, game)(input.UserID), nil
}

// Abandon removes the live game of a party
func (s *service) Abandon(ctx context.Context, input *AbandonInput) error {
	if input == nil || input.PartyID == "" {
		return apperr.Validation("missing party")
	}

	unlock, err := s.lock(ctx, input.PartyID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.storage.Delete(ctx, &gamestate.DeleteInput{PartyID: input.PartyID}); err != nil {
		return apperr.External("game storage is unavailable", err)
	}

	s.log.Info("game abandoned", "party_id", input.PartyID)
	return nil
}

// mutate loads the game under the party lock, checks the round gate,
// applies fn and persists the result. Nothing is stored when fn fails.
func (s *service) mutate(ctx context.Context, partyID, action string, wantRoundEnded bool, params games.Params, fn func(games.Game) error) error {
	unlock, err := s.lock(ctx, partyID)
	if err != nil {
		return err
	}
	defer unlock()

	game, err := s.load(ctx, partyID, action)
	if err != nil {
		return err
	}
	if err := gate(game, action, wantRoundEnded); err != nil {
		return err
	}
	if params == nil {
		return apperr.Validation("missing parameters for %s", action)
	}
	if params.GameKind() != game.Kind() {
		return apperr.Validation("%s parameters cannot be used in a %s match", params.GameKind(), game.Kind())
	}

	if err := fn(game); err != nil {
		return err
	}
	return s.save(ctx, partyID, game)
}

// gate applies the round-active/round-ended rule every kind shares
func gate(game games.Game, action string, wantRoundEnded bool) error {
	ended := game.RoundEnded()
	switch {
	case game.IsFinished():
		return apperr.InvalidState(action, ended, "the match is already finished")
	case wantRoundEnded && !ended && action == string(models.ActionFinishMatch):
		return apperr.InvalidState(action, ended, "finish the current round before ending the match")
	case wantRoundEnded && !ended:
		return apperr.InvalidState(action, ended, "a round is already in progress")
	case !wantRoundEnded && ended:
		return apperr.InvalidState(action, ended, "there is no round in progress")
	}
	return nil
}

func (s *service) load(ctx context.Context, partyID, action string) (games.Game, error) {
	game, err := s.storage.Get(ctx, &gamestate.GetInput{PartyID: partyID})
	if err != nil {
		if errors.Is(err, gamestate.ErrGameNotFound) {
			return nil, apperr.InvalidState(action, true, "no match is in progress, the manager has to start one")
		}
		return nil, apperr.External("game storage is unavailable", err)
	}
	return game, nil
}

func (s *service) save(ctx context.Context, partyID string, game games.Game) error {
	if err := s.storage.Set(ctx, &gamestate.SetInput{PartyID: partyID, Game: game}); err != nil {
		return apperr.External("game storage is unavailable", err)
	}
	return nil
}

func (s *service) lock(ctx context.Context, partyID string) (func(), error) {
	unlock, err := s.locks.Lock(ctx, keylock.Key("game", partyID))
	if err != nil {
		s.metrics.LockTimeout("game")
		return nil, apperr.External("the party is busy, try again", err)
	}
	return unlock, nil
}

func (s *service) revertToWaiting(ctx context.Context, partyID string) {
	_, err := s.parties.UpdateStatus(ctx, &partySvc.UpdateStatusInput{
		PartyID:        partyID,
		Status:         models.PartyStatusWaiting,
		ExpectedStatus: models.PartyStatusActive,
	})
	if err != nil {
		s.log.Error("failed to put party back to waiting", "party_id", partyID, "error", err)
	}
}

func viewOf(partyID string, game games.Game) ViewFunc {
	return func(userID string) *games.State {
		state := game.StateFor(userID)
		state.PartyID = partyID
		return state
	}
}

func notEnoughPlayers(need, have int) error {
	return apperr.WithMetadata(apperr.KindValidation,
		fmt.Sprintf("you need at least %d players to start, the party has %d", need, have),
		map[string]string{"minPlayers": fmt.Sprint(need)})
}
