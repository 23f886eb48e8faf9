package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/partyline/internal/logger"
	"github.com/KirkDiggler/partyline/internal/models"
	userRepo "github.com/KirkDiggler/partyline/internal/repositories/user"
)

var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilUsers  = errors.New("user repository cannot be nil")
)

// RouterConfig holds the dependencies of the router
type RouterConfig struct {
	Users     userRepo.Repository
	Providers []Provider
	Logger    *slog.Logger
}

// Router is a Sender that picks the provider from the user's channel
type Router struct {
	users     userRepo.Repository
	providers map[models.DeliveryChannel]Provider
	log       *slog.Logger
}

// NewRouter creates a router over the enabled providers
func NewRouter(cfg *RouterConfig) (*Router, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Users == nil {
		return nil, ErrNilUsers
	}

	providers := make(map[models.DeliveryChannel]Provider, len(cfg.Providers))
	for _, p := range cfg.Providers {
		if p == nil {
			continue
		}
		if _, dup := providers[p.Channel()]; dup {
			return nil, fmt.Errorf("duplicate provider for channel %s", p.Channel())
		}
		providers[p.Channel()] = p
	}

	return &Router{
		users:     cfg.Users,
		providers: providers,
		log:       logger.OrDiscard(cfg.Logger),
	}, nil
}

// Send looks the user up and hands the notification to their provider
func (r *Router) Send(ctx context.Context, input *SendInput) error {
	if input == nil || input.Notification == nil {
		return ErrNilNotification
	}

	user, err := r.users.GetUserByID(ctx, &userRepo.GetUserByIDInput{UserID: input.UserID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrNoChannel
		}
		return fmt.Errorf("failed to look up recipient: %w", err)
	}

	provider, ok := r.providers[user.Channel]
	if !ok || user.ContactHandle == "" {
		r.log.Debug("no provider for recipient", "user_id", user.ID, "channel", user.Channel)
		return ErrNoChannel
	}

	return provider.Deliver(ctx, &DeliverInput{User: user, Notification: input.Notification})
}

// Channels lists the enabled channels
func (r *Router) Channels() []models.DeliveryChannel {
	out := make([]models.DeliveryChannel, 0, len(r.providers))
	for c := range r.providers {
		out = append(out, c)
	}
	return out
}

// Text renders a notification as plain chat text
func Text(n *models.Notification) string {
	if n.Title == "" {
		return n.Body
	}
	if n.Body == "" {
		return n.Title
	}
	return n.Title + "\n" + n.Body
}
