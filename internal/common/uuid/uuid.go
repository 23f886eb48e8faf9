package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/partyline/internal/common/uuid UUID

// UUID generates identifiers for parties
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using google/uuid
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a short party code derived from a random UUID.
// Party codes are typed by hand in chat, so only the first block is used.
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()[:8]
}
