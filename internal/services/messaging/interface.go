package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/partyline/internal/services/messaging Service

import "context"

// Service turns domain events into localized notifications
type Service interface {
	// Compose builds the notification one recipient gets for an action
	Compose(ctx context.Context, input *ComposeInput) (*ComposeOutput, error)

	// ComposeError builds the notification for a failed command
	ComposeError(ctx context.Context, input *ComposeErrorInput) (*ComposeOutput, error)

	// Language returns the supported language closest to tag
	Language(tag string) string
}
