package notification

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/partyline/internal/services/notification Service

import (
	"context"
)

// Service fans state transitions out to party members
type Service interface {
	// Broadcast formats and sends one notification per current party member.
	// A failing recipient never stops the others.
	Broadcast(ctx context.Context, input *BroadcastInput) (*BroadcastOutput, error)

	// NotifyUser sends to a single user
	NotifyUser(ctx context.Context, input *NotifyUserInput) error

	// FormatError builds the notification for a failed command
	FormatError(ctx context.Context, input *FormatErrorInput) (*FormatErrorOutput, error)

	// NotifyError sends a failed command's notification to the acting user only
	NotifyError(ctx context.Context, input *NotifyErrorInput) error
}
