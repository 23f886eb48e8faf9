package notification

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/partyline/internal/delivery"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/metrics"
	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/services/messaging"
	partySvc "github.com/KirkDiggler/partyline/internal/services/party"
)

const (
	// DefaultConcurrency bounds in-flight sends per broadcast
	DefaultConcurrency = 8

	// DefaultDeliveryTimeout bounds a single recipient's send
	DefaultDeliveryTimeout = 3 * time.Second
)

// Config holds the dependencies of the notification service
type Config struct {
	Parties   partySvc.Service
	Messaging messaging.Service
	Sender    delivery.Sender

	Concurrency     int
	DeliveryTimeout time.Duration

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

type BroadcastInput struct {
	PartyID string
	Action  models.Action

	// Event is passed to the formatter unchanged
	Event any

	// ViewFor projects the game for each recipient; nil when there is no game
	ViewFor func(userID string) *games.State

	// Language overrides the party's language when set
	Language string

	// Exclude lists members that must not receive this broadcast
	Exclude []string
}

type BroadcastOutput struct {
	Delivered []string
	Skipped   []string
	Failed    map[string]error
}

type NotifyUserInput struct {
	UserID   string
	Action   models.Action
	Event    any
	View     *games.State
	Language string
}

type FormatErrorInput struct {
	Err      error
	Language string
}

type FormatErrorOutput struct {
	Notification *models.Notification
}

type NotifyErrorInput struct {
	UserID   string
	Err      error
	Language string
}
