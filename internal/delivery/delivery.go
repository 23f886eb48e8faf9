// Package delivery routes notifications to the provider each user is
// reachable on.
package delivery

//go:generate mockgen -package=mocks -destination=mocks/mock_delivery.go github.com/KirkDiggler/partyline/internal/delivery Sender,Provider

import (
	"context"
	"errors"

	"github.com/KirkDiggler/partyline/internal/models"
)

var (
	// ErrNoChannel is returned when a recipient cannot be reached
	ErrNoChannel = errors.New("recipient has no delivery channel")

	ErrNilNotification = errors.New("notification cannot be nil")
)

// Sender delivers one notification to one user
type Sender interface {
	Send(ctx context.Context, input *SendInput) error
}

// Provider delivers notifications over a single channel
type Provider interface {
	// Channel is the user channel this provider serves
	Channel() models.DeliveryChannel

	// Deliver sends to the user's contact handle. Unreachable users yield ErrNoChannel.
	Deliver(ctx context.Context, input *DeliverInput) error
}

type SendInput struct {
	UserID       string
	Notification *models.Notification
}

type DeliverInput struct {
	User         *models.User
	Notification *models.Notification
}
