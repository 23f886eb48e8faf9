package messaging

import (
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/models"
)

// ComposeInput contains parameters for composing a notification
type ComposeInput struct {
	Action models.Action

	// Language of the party, or of the user when there is no party
	Language string

	// Event is one of the *Event types below
	Event any

	// View is the recipient's projection of the game, if any
	View *games.State
}

// ComposeOutput contains the composed notification
type ComposeOutput struct {
	Notification *models.Notification
}

// ComposeErrorInput contains parameters for composing an error notification
type ComposeErrorInput struct {
	Err      error
	Language string
}

// PartyEvent describes a membership change
type PartyEvent struct {
	Party       *models.Party
	ActorName   string
	TargetName  string
	PlayerNames []string
}

// PartyListEvent lists joinable parties
type PartyListEvent struct {
	Parties []*models.Party
}

// VoteEvent reports that someone voted
type VoteEvent struct {
	VoterName    string
	VotesCast    int
	PlayersTotal int
}

// RoundResultEvent reports a resolved round
type RoundResultEvent struct {
	Round        int
	AccusedName  string
	AccusedVotes int
	Winner       string
}

// MatchEvent reports a started or finished match
type MatchEvent struct {
	Party       *models.Party
	PlayerCount int
}

// HelpEvent asks for the command list
type HelpEvent struct {
	Categories []string
}
