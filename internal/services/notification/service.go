package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/delivery"
	"github.com/KirkDiggler/partyline/internal/logger"
	"github.com/KirkDiggler/partyline/internal/metrics"
	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/services/messaging"
	partySvc "github.com/KirkDiggler/partyline/internal/services/party"
)

// Define errors
var (
	ErrNilConfig    = errors.New("config cannot be nil")
	ErrNilParties   = errors.New("party service cannot be nil")
	ErrNilMessaging = errors.New("messaging service cannot be nil")
	ErrNilSender    = errors.New("sender cannot be nil")
	ErrNilInput     = errors.New("input cannot be nil")
)

// service implements the Service interface
type service struct {
	parties     partySvc.Service
	messaging   messaging.Service
	sender      delivery.Sender
	concurrency int
	timeout     time.Duration
	log         *slog.Logger
	metrics     *metrics.Metrics
}

// New creates a new notification service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Parties == nil {
		return nil, ErrNilParties
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Sender == nil {
		return nil, ErrNilSender
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	timeout := cfg.DeliveryTimeout
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}

	return &service{
		parties:     cfg.Parties,
		messaging:   cfg.Messaging,
		sender:      cfg.Sender,
		concurrency: concurrency,
		timeout:     timeout,
		log:         logger.OrDiscard(cfg.Logger).With("component", "notification"),
		metrics:     cfg.Metrics,
	}, nil
}

// Broadcast formats and sends one notification per current party member
func (s *service) Broadcast(ctx context.Context, input *BroadcastInput) (*BroadcastOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	lang := input.Language
	if lang == "" {
		party, err := s.parties.GetParty(ctx, &partySvc.GetPartyInput{PartyID: input.PartyID})
		if err != nil {
			return nil, err
		}
		if party == nil {
			return nil, apperr.NotFound("party %s does not exist", input.PartyID)
		}
		lang = party.Language
	}

	players, err := s.parties.GetPlayers(ctx, &partySvc.GetPlayersInput{PartyID: input.PartyID})
	if err != nil {
		return nil, err
	}

	out := &BroadcastOutput{Failed: make(map[string]error)}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, p := range players.Players {
		userID := p.UserID
		if slices.Contains(input.Exclude, userID) {
			continue
		}

		g.Go(func() error {
			note := &NotifyUserInput{
				UserID:   userID,
				Action:   input.Action,
				Event:    input.Event,
				Language: lang,
			}
			if input.ViewFor != nil {
				note.View = input.ViewFor(userID)
			}

			err := s.NotifyUser(ctx, note)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				out.Delivered = append(out.Delivered, userID)
			case errors.Is(err, delivery.ErrNoChannel):
				out.Skipped = append(out.Skipped, userID)
			default:
				out.Failed[userID] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(out.Delivered)
	sort.Strings(out.Skipped)

	s.metrics.ObserveNotifications(string(input.Action), len(out.Delivered), len(out.Skipped), len(out.Failed))
	if len(out.Failed) > 0 {
		for userID, ferr := range out.Failed {
			s.log.Warn("notification failed",
				"party_id", input.PartyID,
				"action", input.Action,
				"user_id", userID,
				"error", ferr)
		}
	}

	return out, nil
}

// NotifyUser formats and sends to a single user under the delivery timeout
func (s *service) NotifyUser(ctx context.Context, input *NotifyUserInput) error {
	if input == nil {
		return ErrNilInput
	}

	composed, err := s.messaging.Compose(ctx, &messaging.ComposeInput{
		Action:   input.Action,
		Language: input.Language,
		Event:    input.Event,
		View:     input.View,
	})
	if err != nil {
		return fmt.Errorf("failed to compose %s: %w", input.Action, err)
	}

	return s.send(ctx, input.UserID, composed.Notification)
}

// FormatError builds the notification for a failed command
func (s *service) FormatError(ctx context.Context, input *FormatErrorInput) (*FormatErrorOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	composed, err := s.messaging.ComposeError(ctx, &messaging.ComposeErrorInput{
		Err:      input.Err,
		Language: input.Language,
	})
	if err != nil {
		return nil, err
	}

	return &FormatErrorOutput{Notification: composed.Notification}, nil
}

// NotifyError sends a failed command's notification to the acting user only
func (s *service) NotifyError(ctx context.Context, input *NotifyErrorInput) error {
	if input == nil {
		return ErrNilInput
	}

	formatted, err := s.FormatError(ctx, &FormatErrorInput{Err: input.Err, Language: input.Language})
	if err != nil {
		return err
	}

	err = s.send(ctx, input.UserID, formatted.Notification)
	switch {
	case err == nil:
		s.metrics.ObserveNotifications(string(models.ActionError), 1, 0, 0)
	case errors.Is(err, delivery.ErrNoChannel):
		s.metrics.ObserveNotifications(string(models.ActionError), 0, 1, 0)
	default:
		s.metrics.ObserveNotifications(string(models.ActionError), 0, 0, 1)
	}
	return err
}

func (s *service) send(ctx context.Context, userID string, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.sender.Send(ctx, &delivery.SendInput{UserID: userID, Notification: n})
}
