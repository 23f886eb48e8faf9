package games

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/KirkDiggler/partyline/internal/models"
)

// Phase names the lifecycle step a params decoder is asked to build params for
type Phase string

const (
	PhaseNextRound   Phase = "next_round"
	PhaseMidRound    Phase = "mid_round"
	PhaseFinishRound Phase = "finish_round"
)

// UserResolver turns a user reference typed in chat (username or id) into a user id
type UserResolver interface {
	ResolveUserID(ctx context.Context, ref string) (string, error)
}

// DecodeInput carries a raw text command to a kind's params decoder
type DecodeInput struct {
	Phase    Phase
	ActorID  string
	Args     []string
	Language string
	Resolver UserResolver
}

// Definition wires one game kind into the registry
type Definition struct {
	// Kind is the registry key
	Kind models.GameKind

	// MinPlayers is the smallest party that may start a match
	MinPlayers int

	// New builds a fresh, unstarted game
	New func() Game

	// Restore rebuilds a game from MarshalState output
	Restore func(data []byte) (Game, error)

	// Decode builds kind params from a raw text command
	Decode func(ctx context.Context, input *DecodeInput) (Params, error)

	// Summarize reduces a mid-round or finish-round result to an Outcome.
	// It returns nil for results that carry nothing to announce.
	Summarize func(result Result) *Outcome
}

// Registry maps game kinds to their definitions
type Registry struct {
	mu    sync.RWMutex
	kinds map[models.GameKind]*Definition
}

// NewRegistry creates a registry holding the given definitions
func NewRegistry(defs ...*Definition) (*Registry, error) {
	r := &Registry{kinds: make(map[models.GameKind]*Definition)}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a game kind
func (r *Registry) Register(def *Definition) error {
	if def == nil || def.Kind == "" {
		return fmt.Errorf("definition and kind cannot be empty")
	}
	if def.New == nil || def.Restore == nil || def.Decode == nil || def.Summarize == nil {
		return fmt.Errorf("definition for %s is incomplete", def.Kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.kinds[def.Kind]; ok {
		return fmt.Errorf("game kind %s already registered", def.Kind)
	}
	r.kinds[def.Kind] = def
	return nil
}

// Lookup returns the definition of kind
func (r *Registry) Lookup(kind models.GameKind) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.kinds[kind]
	return def, ok
}

// Kinds lists registered kinds in name order
func (r *Registry) Kinds() []models.GameKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]models.GameKind, 0, len(r.kinds))
	for k := range r.kinds {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
