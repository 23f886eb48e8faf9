package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/delivery"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/logger"
	"github.com/KirkDiggler/partyline/internal/metrics"
	"github.com/KirkDiggler/partyline/internal/models"
	userRepo "github.com/KirkDiggler/partyline/internal/repositories/user"
	"github.com/KirkDiggler/partyline/internal/services/messaging"
	"github.com/KirkDiggler/partyline/internal/services/notification"
	partySvc "github.com/KirkDiggler/partyline/internal/services/party"
	"github.com/KirkDiggler/partyline/internal/services/session"
)

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilParties       = errors.New("party service cannot be nil")
	ErrNilSessions      = errors.New("session manager cannot be nil")
	ErrNilNotifications = errors.New("notification service cannot be nil")
	ErrNilUsers         = errors.New("user repository cannot be nil")
	ErrNilRegistry      = errors.New("game registry cannot be nil")
)

const tracerName = "github.com/KirkDiggler/partyline/internal/services/coordinator"

// service implements the Service interface
type service struct {
	parties         partySvc.Service
	sessions        session.Service
	notifications   notification.Service
	users           userRepo.Repository
	registry        *games.Registry
	timeout         time.Duration
	defaultKind     models.GameKind
	defaultLanguage string
	categories      func(language string) []string
	tracer          trace.Tracer
	log             *slog.Logger
	metrics         *metrics.Metrics
}

// New creates a new coordinator
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Parties == nil {
		return nil, ErrNilParties
	}
	if cfg.Sessions == nil {
		return nil, ErrNilSessions
	}
	if cfg.Notifications == nil {
		return nil, ErrNilNotifications
	}
	if cfg.Users == nil {
		return nil, ErrNilUsers
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	s := &service{
		parties:         cfg.Parties,
		sessions:        cfg.Sessions,
		notifications:   cfg.Notifications,
		users:           cfg.Users,
		registry:        cfg.Registry,
		timeout:         cfg.Timeout,
		defaultKind:     cfg.DefaultGameKind,
		defaultLanguage: cfg.DefaultLanguage,
		categories:      cfg.Categories,
		tracer:          cfg.Tracer,
		log:             logger.OrDiscard(cfg.Logger).With("component", "coordinator"),
		metrics:         cfg.Metrics,
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.defaultKind == "" {
		s.defaultKind = models.GameKindImpostor
	}
	if s.defaultLanguage == "" {
		s.defaultLanguage = "en"
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s, nil
}

// RegisterUser upserts the caller. A username owned by someone else is dropped
// rather than failing the command.
func (s *service) RegisterUser(ctx context.Context, input *RegisterUserInput) error {
	if input == nil || input.User == nil || input.User.ID == "" {
		return apperr.Validation("missing user")
	}
	user := *input.User

	existing, err := s.users.GetUserByID(ctx, &userRepo.GetUserByIDInput{UserID: user.ID})
	switch {
	case err == nil:
		if user.Language == "" {
			user.Language = existing.Language
		}
		if user.DisplayName == "" {
			user.DisplayName = existing.DisplayName
		}
	case !errors.Is(err, userRepo.ErrUserNotFound):
		return apperr.External("user storage is unavailable", err)
	}

	err = s.users.SaveUser(ctx, &userRepo.SaveUserInput{User: &user})
	if errors.Is(err, userRepo.ErrUsernameTaken) {
		s.log.Warn("username already taken, saving without it", "user_id", user.ID, "username", user.Username)
		user.Username = ""
		err = s.users.SaveUser(ctx, &userRepo.SaveUserInput{User: &user})
	}
	if err != nil {
		return apperr.External("user storage is unavailable", err)
	}
	return nil
}

// CreateParty creates a party managed by the caller
func (s *service) CreateParty(ctx context.Context, input *CreatePartyInput) (*CreatePartyOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	var out *CreatePartyOutput
	err := s.run(ctx, input.UserID, models.ActionCreateParty, func(ctx context.Context) error {
		kind := input.GameKind
		if kind == "" {
			kind = s.defaultKind
		}
		lang := input.Language
		if lang == "" {
			lang = s.userLanguage(ctx, input.UserID)
		}

		created, err := s.parties.CreateParty(ctx, &partySvc.CreatePartyInput{
			UserID:   input.UserID,
			Name:     input.Name,
			GameKind: kind,
			Language: lang,
		})
		if err != nil {
			return err
		}
		out = &CreatePartyOutput{Party: created.Party}

		s.broadcast(ctx, &notification.BroadcastInput{
			PartyID:  created.Party.ID,
			Action:   models.ActionCreateParty,
			Language: created.Party.Language,
			Event: &messaging.PartyEvent{
				Party:     created.Party,
				ActorName: s.name(ctx, input.UserID),
			},
		})
		return nil
	})
	return out, err
}

// JoinParty adds the caller to a waiting party
func (s *service) JoinParty(ctx context.Context, input *JoinPartyInput) (*JoinPartyOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	var out *JoinPartyOutput
	err := s.run(ctx, input.UserID, models.ActionJoinParty, func(ctx context.Context) error {
		joined, err := s.parties.JoinParty(ctx, &partySvc.JoinPartyInput{
			UserID:  input.UserID,
			PartyID: input.PartyID,
		})
		if err != nil {
			return err
		}
		out = &JoinPartyOutput{Party: joined.Party, Player: joined.Player}

		players, err := s.members(ctx, joined.Party.ID)
		if err != nil {
			return err
		}
		s.broadcast(ctx, &notification.BroadcastInput{
			PartyID:  joined.Party.ID,
			Action:   models.ActionJoinParty,
			Language: joined.Party.Language,
			Event: &messaging.PartyEvent{
				Party:       joined.Party,
				ActorName:   s.name(ctx, input.UserID),
				PlayerNames: s.names(ctx, players),
			},
		})
		return nil
	})
	return out, err
}

// LeaveParty removes the caller from their party. The last one out closes it
// and drops any live game.
func (s *service) LeaveParty(ctx context.Context, input *LeavePartyInput) (*LeavePartyOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	var out *LeavePartyOutput
	err := s.run(ctx, input.UserID, models.ActionLeaveParty, func(ctx context.Context) error {
		left, err := s.parties.LeaveParty(ctx, &partySvc.LeavePartyInput{UserID: input.UserID})
		if err != nil {
			return err
		}
		out = &LeavePartyOutput{
			Party:          left.Party,
			PromotedUserID: left.PromotedUserID,
			Dissolved:      left.Dissolved,
		}

		event := &messaging.PartyEvent{
			Party:     left.Party,
			ActorName: s.name(ctx, input.UserID),
		}
		if left.PromotedUserID != "" {
			event.TargetName = s.name(ctx, left.PromotedUserID)
		}

		if left.Dissolved {
			if err := s.sessions.Abandon(ctx, &session.AbandonInput{PartyID: left.Party.ID}); err != nil {
				s.log.Error("failed to abandon game of dissolved party", "party_id", left.Party.ID, "error", err)
			}
			s.notify(ctx, &notification.NotifyUserInput{
				UserID:   input.UserID,
				Action:   models.ActionPartyDissolved,
				Event:    event,
				Language: left.Party.Language,
			})
			return nil
		}

		s.broadcast(ctx, &notification.BroadcastInput{
			PartyID:  left.Party.ID,
			Action:   models.ActionLeaveParty,
			Language: left.Party.Language,
			Event:    event,
		})
		// no longer a member, so not part of the broadcast
		s.notify(ctx, &notification.NotifyUserInput{
			UserID:   input.UserID,
			Action:   models.ActionLeaveParty,
			Event:    event,
			Language: left.Party.Language,
		})
		return nil
	})
	return out, err
}

// PromoteToManager hands the manager role to another member
func (s *service) PromoteToManager(ctx context.Context, input *PromoteToManagerInput) (*PromoteToManagerOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	var out *PromoteToManagerOutput
	err := s.run(ctx, input.UserID, models.ActionPromote, func(ctx context.Context) error {
		if _, _, err := s.requireManager(ctx, input.UserID, models.ActionPromote); err != nil {
			return err
		}
		if input.Target == "" {
			return apperr.Validation("who should be the new manager?")
		}
		targetID, err := s.ResolveUserID(ctx, input.Target)
		if err != nil {
			return err
		}

		promoted, err := s.parties.PromoteToManager(ctx, &partySvc.PromoteToManagerInput{
			ActingUserID: input.UserID,
			TargetUserID: targetID,
		})
		if err != nil {
			return err
		}
		out = &PromoteToManagerOutput{Party: promoted.Party, NewManagerID: promoted.NewManagerID}

		s.broadcast(ctx, &notification.BroadcastInput{
			PartyID:  promoted.Party.ID,
			Action:   models.ActionPromote,
			Language: promoted.Party.Language,
			Event: &messaging.PartyEvent{
				Party:      promoted.Party,
				ActorName:  s.name(ctx, input.UserID),
				TargetName: s.name(ctx, promoted.NewManagerID),
			},
		})
		return nil
	})
	return out, err
}

// GetMyParty tells the caller which party they are in
func (s *service) GetMyParty(ctx context.Context, input *GetMyPartyInput) (*GetMyPartyOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	out := &GetMyPartyOutput{}
	err := s.run(ctx, input.UserID, models.ActionMyParty, func(ctx context.Context) error {
		party, err := s.parties.GetMyParty(ctx, &partySvc.GetMyPartyInput{UserID: input.UserID})
		if err != nil {
			return err
		}
		if party == nil {
			s.notify(ctx, &notification.NotifyUserInput{
				UserID:   input.UserID,
				Action:   models.ActionMyParty,
				Language: s.userLanguage(ctx, input.UserID),
			})
			return nil
		}

		players, err := s.members(ctx, party.ID)
		if err != nil {
			return err
		}
		out.Party = party
		out.Players = players

		s.notify(ctx, &notification.NotifyUserInput{
			UserID:   input.UserID,
			Action:   models.ActionMyParty,
			Language: party.Language,
			Event:    &messaging.PartyEvent{Party: party, PlayerNames: s.names(ctx, players)},
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetAvailableParties sends the caller the joinable parties
func (s *service) GetAvailableParties(ctx context.Context, input *GetAvailablePartiesInput) (*GetAvailablePartiesOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	var out *GetAvailablePartiesOutput
	err := s.run(ctx, input.UserID, models.ActionListParties, func(ctx context.Context) error {
		listed, err := s.parties.GetAvailableParties(ctx, &partySvc.GetAvailablePartiesInput{GameKind: input.GameKind})
		if err != nil {
			return err
		}
		out = &GetAvailablePartiesOutput{Parties: listed.Parties}

		if input.UserID != "" {
			s.notify(ctx, &notification.NotifyUserInput{
				UserID:   input.UserID,
				Action:   models.ActionListParties,
				Language: s.userLanguage(ctx, input.UserID),
				Event:    &messaging.PartyListEvent{Parties: listed.Parties},
			})
		}
		return nil
	})
	return out, err
}

// GetParty looks a party up by code. Nothing is sent.
func (s *service) GetParty(ctx context.Context, input *GetPartyInput) (*GetPartyOutput, error) {
	if input == nil || input.PartyID == "" {
		return nil, apperr.Validation("missing party")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	party, err := s.parties.GetParty(ctx, &partySvc.GetPartyInput{PartyID: input.PartyID})
	if err != nil {
		return nil, s.normalize(ctx, models.Action("get_party"), err)
	}
	if party == nil {
		return nil, apperr.NotFound("party %s does not exist", input.PartyID)
	}
	players, err := s.members(ctx, party.ID)
	if err != nil {
		return nil, s.normalize(ctx, models.Action("get_party"), err)
	}
	return &GetPartyOutput{Party: party, Players: players}, nil
}

// StartMatch starts the caller's party. Manager only.
func (s *service) StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	var out *StartMatchOutput
	err := s.run(ctx, input.UserID, models.ActionStartMatch, func(ctx context.Context) error {
		party, _, err := s.requireManager(ctx, input.UserID, models.ActionStartMatch)
		if err != nil {
			return err
		}

		started, err := s.sessions.StartMatch(ctx, &session.StartMatchInput{PartyID: party.ID})
		if err != nil {
			return err
		}
		out = &StartMatchOutput{Party: started.Party, Players: started.Players}

		s.broadcast(ctx, &notification.BroadcastInput{
			PartyID:  party.ID,
			Action:   models.ActionStartMatch,
			Language: started.Party.Language,
			Event:    &messaging.MatchEvent{Party: started.Party, PlayerCount: len(started.Players)},
			ViewFor:  started.View,
		})
		return nil
	})
	return out, err
}

// NextRound begins a round and tells every player their role. Manager only.
func (s *service) NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	var out *NextRoundOutput
	err := s.run(ctx, input.UserID, models.ActionNextRound, func(ctx context.Context) error {
		party, _, err := s.requireManager(ctx, input.UserID, models.ActionNextRound)
		if err != nil {
			return err
		}

		params := input.Params
		if params == nil {
			if params, err = s.decode(ctx, party, input.UserID, games.PhaseNextRound, nil); err != nil {
				return err
			}
		}

		advanced, err := s.sessions.NextRound(ctx, &session.NextRoundInput{
			PartyID: party.ID,
			UserID:  input.UserID,
			Params:  params,
		})
		if err != nil {
			return err
		}
		out = &NextRoundOutput{Round: advanced.Round, Result: advanced.Result}

		s.broadcast(ctx, &notification.BroadcastInput{
			PartyID:  party.ID,
			Action:   models.ActionNextRound,
			Language: party.Language,
			ViewFor:  advanced.View,
		})
		return nil
	})
	return out, err
}

// MiddleRoundAction records an in-round action such as a vote. Any member may act.
func (s *service) MiddleRoundAction(ctx context.Context, input *MiddleRoundActionInput) (*MiddleRoundActionOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	var out *MiddleRoundActionOutput
	err := s.run(ctx, input.UserID, models.ActionVote, func(ctx context.Context) error {
		party, _, err := s.requireMember(ctx, input.UserID)
		if err != nil {
			return err
		}
		if input.Params == nil {
			return apperr.Validation("nothing to record")
		}

		applied, err := s.sessions.MiddleRoundAction(ctx, &session.MiddleRoundActionInput{
			PartyID: party.ID,
			Params:  input.Params,
		})
		if err != nil {
			return err
		}
		out = &MiddleRoundActionOutput{Result: applied.Result}

		s.broadcast(ctx, &notification.BroadcastInput{
			PartyID:  party.ID,
			Action:   models.ActionVote,
			Language: party.Language,
			Event:    s.midRoundEvent(ctx, party, input.UserID, applied.Result),
		})
		return nil
	})
	return out, err
}

// FinishRound scores the active round. Manager only.
func (s *service) FinishRound(ctx context.Context, input *FinishRoundInput) (*FinishRoundOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	var out *FinishRoundOutput
	err := s.run(ctx, input.UserID, models.ActionFinishRound, func(ctx context.Context) error {
		party, _, err := s.requireManager(ctx, input.UserID, models.ActionFinishRound)
		if err != nil {
			return err
		}

		params := input.Params
		if params == nil {
			if params, err = s.decode(ctx, party, input.UserID, games.PhaseFinishRound, nil); err != nil {
				return err
			}
		}

		finished, err := s.sessions.FinishRound(ctx, &session.FinishRoundInput{
			PartyID: party.ID,
			Params:  params,
		})
		if err != nil {
			return err
		}
		out = &FinishRoundOutput{Result: finished.Result}

		round := 0
		if view := finished.View(input.UserID); view != nil {
			round = view.CurrentRound
		}
		s.broadcast(ctx, &notification.BroadcastInput{
			PartyID:  party.ID,
			Action:   models.ActionFinishRound,
			Language: party.Language,
			Event:    s.roundResultEvent(ctx, party, finished.Result, round),
			ViewFor:  finished.View,
		})
		return nil
	})
	return out, err
}

// FinishMatch closes the match and the party. Manager only.
func (s *service) FinishMatch(ctx context.Context, input *FinishMatchInput) (*FinishMatchOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	var out *FinishMatchOutput
	err := s.run(ctx, input.UserID, models.ActionFinishMatch, func(ctx context.Context) error {
		party, _, err := s.requireManager(ctx, input.UserID, models.ActionFinishMatch)
		if err != nil {
			return err
		}

		finished, err := s.sessions.FinishMatch(ctx, &session.FinishMatchInput{PartyID: party.ID})
		if err != nil {
			return err
		}
		state := finished.View(input.UserID)
		out = &FinishMatchOutput{Party: finished.Party, State: state}

		playerCount := 0
		if state != nil {
			playerCount = len(state.Players)
		}
		s.broadcast(ctx, &notification.BroadcastInput{
			PartyID:  party.ID,
			Action:   models.ActionFinishMatch,
			Language: finished.Party.Language,
			Event:    &messaging.MatchEvent{Party: finished.Party, PlayerCount: playerCount},
			ViewFor:  finished.View,
		})
		return nil
	})
	return out, err
}

// GetGameState sends the caller their view of the running match
func (s *service) GetGameState(ctx context.Context, input *GetGameStateInput) (*GetGameStateOutput, error) {
	if input == nil {
		return nil, apperr.Validation("missing input")
	}

	var out *GetGameStateOutput
	err := s.run(ctx, input.UserID, models.ActionGameState, func(ctx context.Context) error {
		party, _, err := s.requireMember(ctx, input.UserID)
		if err != nil {
			return err
		}

		state, err := s.sessions.GetGameState(ctx, &session.GetGameStateInput{
			PartyID: party.ID,
			UserID:  input.UserID,
		})
		if err != nil {
			return err
		}
		out = &GetGameStateOutput{Party: party, State: state}

		s.notify(ctx, &notification.NotifyUserInput{
			UserID:   input.UserID,
			Action:   models.ActionGameState,
			Language: party.Language,
			View:     state,
		})
		return nil
	})
	return out, err
}

// Help sends the command list in the caller's language
func (s *service) Help(ctx context.Context, input *HelpInput) error {
	if input == nil {
		return apperr.Validation("missing input")
	}

	return s.run(ctx, input.UserID, models.ActionHelp, func(ctx context.Context) error {
		lang := s.languageFor(ctx, input.UserID)
		event := &messaging.HelpEvent{}
		if s.categories != nil {
			event.Categories = s.categories(lang)
		}
		s.notify(ctx, &notification.NotifyUserInput{
			UserID:   input.UserID,
			Action:   models.ActionHelp,
			Language: lang,
			Event:    event,
		})
		return nil
	})
}

// ResolveUserID turns a username or user id typed in chat into a user id
func (s *service) ResolveUserID(ctx context.Context, ref string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, &userRepo.GetUserByUsernameInput{Username: ref})
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return "", apperr.External("user storage is unavailable", err)
	}

	user, err = s.users.GetUserByID(ctx, &userRepo.GetUserByIDInput{UserID: ref})
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return "", apperr.External("user storage is unavailable", err)
	}
	return "", apperr.NotFound("I don't know anyone called %s", ref)
}

// run applies the timeout, tracing and metrics every command shares, and
// reports a failure to the caller.
func (s *service) run(ctx context.Context, userID string, action models.Action, fn func(ctx context.Context) error) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "coordinator."+string(action), trace.WithAttributes(
		attribute.String("partyline.action", string(action)),
		attribute.String("partyline.user_id", userID),
	))
	defer span.End()

	var err error
	if userID == "" {
		err = apperr.Validation("missing user")
	} else {
		err = fn(ctx)
	}

	outcome := "ok"
	if err != nil {
		err = s.normalize(ctx, action, err)
		outcome = string(apperr.KindOf(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)

		if userID != "" {
			s.reportError(ctx, userID, err)
		}
	}

	s.metrics.ObserveCommand(string(action), outcome, time.Since(start))
	return err
}

// normalize maps any error onto the domain taxonomy. Unexpected failures are
// logged with their cause and surfaced as retryable.
func (s *service) normalize(ctx context.Context, action models.Action, err error) error {
	if appErr, ok := apperr.As(err); ok {
		if appErr.Kind == apperr.KindExternalService {
			s.log.Error("collaborator failed", "action", action, "error", err)
		}
		return appErr
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		s.log.Warn("command timed out", "action", action, "error", err)
		return apperr.External("that took too long, please try again", err)
	}

	s.log.Error("unexpected failure", "action", action, "error", err, "error_type", fmt.Sprintf("%T", err))
	return apperr.External("unexpected failure", err)
}

// reportError notifies the caller even when the command's context has expired
func (s *service) reportError(ctx context.Context, userID string, err error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	notifyErr := s.notifications.NotifyError(ctx, &notification.NotifyErrorInput{
		UserID:   userID,
		Err:      err,
		Language: s.languageFor(ctx, userID),
	})
	if notifyErr != nil && !errors.Is(notifyErr, delivery.ErrNoChannel) {
		s.log.Warn("failed to report error to user", "user_id", userID, "error", notifyErr)
	}
}

func (s *service) broadcast(ctx context.Context, input *notification.BroadcastInput) {
	out, err := s.notifications.Broadcast(ctx, input)
	if err != nil {
		s.log.Warn("broadcast failed", "party_id", input.PartyID, "action", input.Action, "error", err)
		return
	}
	s.log.Debug("broadcast sent",
		"party_id", input.PartyID,
		"action", input.Action,
		"delivered", len(out.Delivered),
		"skipped", len(out.Skipped),
		"failed", len(out.Failed))
}

func (s *service) notify(ctx context.Context, input *notification.NotifyUserInput) {
	err := s.notifications.NotifyUser(ctx, input)
	switch {
	case err == nil:
	case errors.Is(err, delivery.ErrNoChannel):
		s.log.Debug("user has no delivery channel", "user_id", input.UserID, "action", input.Action)
	default:
		s.log.Warn("notification failed", "user_id", input.UserID, "action", input.Action, "error", err)
	}
}
