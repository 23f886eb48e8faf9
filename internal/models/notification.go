package models

// Action names a state transition that produces a notification
type Action string

const (
	ActionCreateParty    Action = "create_party"
	ActionJoinParty      Action = "join_party"
	ActionLeaveParty     Action = "leave_party"
	ActionPromote        Action = "promote"
	ActionStartMatch     Action = "start_match"
	ActionNextRound      Action = "next_round"
	ActionVote           Action = "vote"
	ActionFinishRound    Action = "finish_round"
	ActionFinishMatch    Action = "finish_match"
	ActionGameState      Action = "game_state"
	ActionListParties    Action = "list_parties"
	ActionMyParty        Action = "my_party"
	ActionHelp           Action = "help"
	ActionError          Action = "error"
	ActionPartyDissolved Action = "party_dissolved"
)

// Notification is delivered to a single recipient. It is built once per
// recipient and never mutated afterwards.
type Notification struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Action    Action `json:"action"`
	GameState any    `json:"gameState,omitempty"`
}
