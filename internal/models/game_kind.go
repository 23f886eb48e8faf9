package models

import "strings"

// GameKind identifies one of the supported game variants
type GameKind string

const (
	// GameKindImpostor is the word-guessing social deduction game
	GameKindImpostor GameKind = "IMPOSTOR"
)

// ParseGameKind normalizes user input such as "impostor" into a GameKind
func ParseGameKind(s string) GameKind {
	return GameKind(strings.ToUpper(strings.TrimSpace(s)))
}
