package models

import (
	"time"
)

// PartyStatus represents the lifecycle state of a party
type PartyStatus string

const (
	// PartyStatusWaiting indicates a party is open for players to join
	PartyStatusWaiting PartyStatus = "WAITING"

	// PartyStatusActive indicates a match is in progress
	PartyStatusActive PartyStatus = "ACTIVE"

	// PartyStatusFinished indicates the match has ended and the party is closed
	PartyStatusFinished PartyStatus = "FINISHED"
)

// IsWaiting reports whether players may still join
func (s PartyStatus) IsWaiting() bool {
	return s == PartyStatusWaiting
}

// IsActive reports whether a match is running
func (s PartyStatus) IsActive() bool {
	return s == PartyStatusActive
}

// IsFinished reports whether the party is closed
func (s PartyStatus) IsFinished() bool {
	return s == PartyStatusFinished
}

// Party is a group of users intending to play one match together
type Party struct {
	// ID is the short code players use to join
	ID string `json:"id"`

	// Name is the display name chosen by the creator
	Name string `json:"name"`

	// GameKind is the kind of game this party plays
	GameKind GameKind `json:"gameKind"`

	// Status is the lifecycle state of the party
	Status PartyStatus `json:"status"`

	// Language is the BCP 47 tag notifications are written in
	Language string `json:"language"`

	// CreatedAt is when the party was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the party was last changed
	UpdatedAt time.Time `json:"updatedAt"`
}

// PartyRole is a member's authority within a party
type PartyRole string

const (
	// PartyRoleManager may start matches, drive rounds and promote others
	PartyRoleManager PartyRole = "MANAGER"

	// PartyRolePlayer is a regular member
	PartyRolePlayer PartyRole = "PLAYER"
)

// PartyPlayer is one user's membership in a party
type PartyPlayer struct {
	PartyID  string    `json:"partyId"`
	UserID   string    `json:"userId"`
	Role     PartyRole `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// IsManager reports whether the member holds the manager role
func (p *PartyPlayer) IsManager() bool {
	return p.Role == PartyRoleManager
}
