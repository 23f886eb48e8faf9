package party

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/common/clock"
	"github.com/KirkDiggler/partyline/internal/common/keylock"
	"github.com/KirkDiggler/partyline/internal/common/uuid"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/logger"
	"github.com/KirkDiggler/partyline/internal/metrics"
	"github.com/KirkDiggler/partyline/internal/models"
	partyRepo "github.com/KirkDiggler/partyline/internal/repositories/party"
)

// Define errors
var (
	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilRepository = errors.New("party repository cannot be nil")
	ErrNilRegistry   = errors.New("game registry cannot be nil")
	ErrNilClock      = errors.New("clock cannot be nil")
	ErrNilUUID       = errors.New("UUID generator cannot be nil")
)

// service implements the Service interface
type service struct {
	repo            partyRepo.Repository
	registry        *games.Registry
	clock           clock.Clock
	uuid            uuid.UUID
	locks           *keylock.Locker
	maxPlayers      int
	defaultLanguage string
	log             *slog.Logger
	metrics         *metrics.Metrics
}

// New creates a new party service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUID
	}

	locks := cfg.Locks
	if locks == nil {
		locks = keylock.New()
	}
	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}
	language := cfg.DefaultLanguage
	if language == "" {
		language = "en"
	}

	return &service{
		repo:            cfg.Repository,
		registry:        cfg.Registry,
		clock:           cfg.Clock,
		uuid:            cfg.UUIDGenerator,
		locks:           locks,
		maxPlayers:      maxPlayers,
		defaultLanguage: language,
		log:             logger.OrDiscard(cfg.Logger),
		metrics:         cfg.Metrics,
	}, nil
}

// CreateParty creates a WAITING party with the caller as MANAGER
func (s *service) CreateParty(ctx context.Context, input *CreatePartyInput) (*CreatePartyOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, apperr.Validation("missing user")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.Validation("a party needs a name")
	}
	if len([]rune(name)) > MaxNameLength {
		return nil, apperr.Validation("party names can be at most %d characters", MaxNameLength)
	}
	kind := models.ParseGameKind(string(input.GameKind))
	if _, ok := s.registry.Lookup(kind); !ok {
		return nil, apperr.Validation("unknown game %q", strings.ToLower(string(input.GameKind)))
	}

	unlockUser, err := s.lock(ctx, "user", input.UserID)
	if err != nil {
		return nil, err
	}
	defer unlockUser()

	if err := s.ensureNoActiveParty(ctx, input.UserID); err != nil {
		return nil, err
	}

	language := input.Language
	if language == "" {
		language = s.defaultLanguage
	}

	now := s.clock.Now()
	party := &models.Party{
		ID:        s.uuid.NewUUID(),
		Name:      name,
		GameKind:  kind,
		Status:    models.PartyStatusWaiting,
		Language:  language,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.SaveParty(ctx, &partyRepo.SavePartyInput{Party: party}); err != nil {
		return nil, storageError(err)
	}

	manager := &models.PartyPlayer{
		PartyID:  party.ID,
		UserID:   input.UserID,
		Role:     models.PartyRoleManager,
		JoinedAt: now,
	}
	if err := s.repo.AddPlayer(ctx, &partyRepo.AddPlayerInput{Player: manager}); err != nil {
		if delErr := s.repo.DeleteParty(ctx, &partyRepo.DeletePartyInput{PartyID: party.ID}); delErr != nil {
			s.log.Error("failed to clean up party after manager insert failed", "party_id", party.ID, "error", delErr)
		}
		return nil, storageError(err)
	}

	s.log.Info("party created", "party_id", party.ID, "user_id", input.UserID, "kind", kind)

	return &CreatePartyOutput{
		Party:   party,
		Manager: manager,
	}, nil
}

// JoinParty adds the caller to a WAITING party
func (s *service) JoinParty(ctx context.Context, input *JoinPartyInput) (*JoinPartyOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, apperr.Validation("missing user")
	}
	partyID := strings.TrimSpace(input.PartyID)
	if partyID == "" {
		return nil, apperr.Validation("which party? give me its code")
	}

	unlockUser, err := s.lock(ctx, "user", input.UserID)
	if err != nil {
		return nil, err
	}
	defer unlockUser()

	if err := s.ensureNoActiveParty(ctx, input.UserID); err != nil {
		return nil, err
	}

	unlockParty, err := s.lock(ctx, "party", partyID)
	if err != nil {
		return nil, err
	}
	defer unlockParty()

	party, err := s.getParty(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if !party.Status.IsWaiting() {
		return nil, apperr.InvalidState(string(models.ActionJoinParty), true, fmt.Sprintf("party %s is not accepting players", party.ID))
	}

	players, err := s.players(ctx, party.ID)
	if err != nil {
		return nil, err
	}
	if len(players) >= s.maxPlayers {
		return nil, apperr.Validation("party %s is full (%d players)", party.ID, s.maxPlayers)
	}

	player := &models.PartyPlayer{
		PartyID:  party.ID,
		UserID:   input.UserID,
		Role:     models.PartyRolePlayer,
		JoinedAt: s.clock.Now(),
	}
	if err := s.repo.AddPlayer(ctx, &partyRepo.AddPlayerInput{Player: player}); err != nil {
		if errors.Is(err, partyRepo.ErrPlayerExists) {
			return nil, apperr.Conflict("you are already in party %s", party.ID)
		}
		return nil, storageError(err)
	}

	s.log.Info("player joined party", "party_id", party.ID, "user_id", input.UserID)

	return &JoinPartyOutput{
		Party:  party,
		Player: player,
	}, nil
}

// LeaveParty removes the caller. A leaving manager hands the role to the
// earliest-joined remaining member; the last member leaving dissolves the party.
func (s *service) LeaveParty(ctx context.Context, input *LeavePartyInput) (*LeavePartyOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, apperr.Validation("missing user")
	}

	unlockUser, err := s.lock(ctx, "user", input.UserID)
	if err != nil {
		return nil, err
	}
	defer unlockUser()

	party, err := s.activeParty(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, apperr.NotFound("you are not in a party")
	}

	unlockParty, err := s.lock(ctx, "party", party.ID)
	if err != nil {
		return nil, err
	}
	defer unlockParty()

	players, err := s.players(ctx, party.ID)
	if err != nil {
		return nil, err
	}

	var leaver *models.PartyPlayer
	remaining := make([]*models.PartyPlayer, 0, len(players))
	for _, p := range players {
		if p.UserID == input.UserID {
			leaver = p
			continue
		}
		remaining = append(remaining, p)
	}
	if leaver == nil {
		return nil, apperr.NotFound("you are not in a party")
	}

	output := &LeavePartyOutput{Party: party}

	if len(remaining) == 0 {
		if err := s.repo.DeleteParty(ctx, &partyRepo.DeletePartyInput{PartyID: party.ID}); err != nil {
			return nil, storageError(err)
		}
		output.Dissolved = true
		s.log.Info("party dissolved", "party_id", party.ID, "user_id", input.UserID)
		return output, nil
	}

	remove := &partyRepo.RemovePlayerInput{PartyID: party.ID, UserID: input.UserID}
	if leaver.IsManager() {
		// the earliest remaining member takes over in the same write
		remove.Successor = remaining[0].UserID
	}
	if err := s.repo.RemovePlayer(ctx, remove); err != nil {
		return nil, storageError(err)
	}
	output.PromotedUserID = remove.Successor

	s.log.Info("player left party", "party_id", party.ID, "user_id", input.UserID, "promoted", output.PromotedUserID)

	return output, nil
}

// PromoteToManager swaps roles between the acting manager and a member
func (s *service) PromoteToManager(ctx context.Context, input *PromoteToManagerInput) (*PromoteToManagerOutput, error) {
	if input == nil || input.ActingUserID == "" {
		return nil, apperr.Validation("missing user")
	}
	if input.TargetUserID == "" {
		return nil, apperr.Validation("who should be the new manager?")
	}

	unlockUser, err := s.lock(ctx, "user", input.ActingUserID)
	if err != nil {
		return nil, err
	}
	defer unlockUser()

	party, err := s.activeParty(ctx, input.ActingUserID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, apperr.NotFound("you are not in a party")
	}

	unlockParty, err := s.lock(ctx, "party", party.ID)
	if err != nil {
		return nil, err
	}
	defer unlockParty()

	players, err := s.players(ctx, party.ID)
	if err != nil {
		return nil, err
	}

	var acting, target *models.PartyPlayer
	for _, p := range players {
		switch p.UserID {
		case input.ActingUserID:
			acting = p
		case input.TargetUserID:
			target = p
		}
	}
	if acting == nil || !acting.IsManager() {
		return nil, apperr.Unauthorized("only the party manager can promote someone")
	}
	if input.TargetUserID == input.ActingUserID {
		return nil, apperr.Validation("you are already the manager")
	}
	if target == nil {
		return nil, apperr.NotFound("that player is not in your party")
	}

	err = s.repo.TransferManager(ctx, &partyRepo.TransferManagerInput{
		PartyID:    party.ID,
		FromUserID: acting.UserID,
		ToUserID:   target.UserID,
	})
	if err != nil {
		return nil, storageError(err)
	}

	s.log.Info("manager promoted", "party_id", party.ID, "from", input.ActingUserID, "to", input.TargetUserID)

	return &PromoteToManagerOutput{
		Party:             party,
		PreviousManagerID: input.ActingUserID,
		NewManagerID:      input.TargetUserID,
	}, nil
}

// GetMyParty returns the caller's non-finished party, or nil
func (s *service) GetMyParty(ctx context.Context, input *GetMyPartyInput) (*models.Party, error) {
	if input == nil || input.UserID == "" {
		return nil, apperr.Validation("missing user")
	}
	return s.activeParty(ctx, input.UserID)
}

// GetAvailableParties lists WAITING parties, oldest first
func (s *service) GetAvailableParties(ctx context.Context, input *GetAvailablePartiesInput) (*GetAvailablePartiesOutput, error) {
	if input == nil {
		input = &GetAvailablePartiesInput{}
	}

	out, err := s.repo.GetAvailableParties(ctx, &partyRepo.GetAvailablePartiesInput{GameKind: input.GameKind})
	if err != nil {
		return nil, storageError(err)
	}

	return &GetAvailablePartiesOutput{Parties: out.Parties}, nil
}

// GetParty returns a party by ID, or nil when it does not exist
func (s *service) GetParty(ctx context.Context, input *GetPartyInput) (*models.Party, error) {
	if input == nil || input.PartyID == "" {
		return nil, apperr.Validation("missing party")
	}

	party, err := s.getParty(ctx, input.PartyID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return party, nil
}

// GetPlayers lists members in join order
func (s *service) GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error) {
	if input == nil || input.PartyID == "" {
		return nil, apperr.Validation("missing party")
	}

	players, err := s.players(ctx, input.PartyID)
	if err != nil {
		return nil, err
	}
	return &GetPlayersOutput{Players: players}, nil
}

// UpdateStatus changes the party status under the party lock
func (s *service) UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error) {
	if input == nil || input.PartyID == "" || input.Status == "" {
		return nil, apperr.Validation("missing party or status")
	}

	unlockParty, err := s.lock(ctx, "party", input.PartyID)
	if err != nil {
		return nil, err
	}
	defer unlockParty()

	party, err := s.getParty(ctx, input.PartyID)
	if err != nil {
		return nil, err
	}
	if input.ExpectedStatus != "" && party.Status != input.ExpectedStatus {
		return nil, apperr.InvalidState("update_status", true,
			fmt.Sprintf("party %s is %s, expected %s", party.ID, strings.ToLower(string(party.Status)), strings.ToLower(string(input.ExpectedStatus))))
	}

	party.Status = input.Status
	party.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveParty(ctx, &partyRepo.SavePartyInput{Party: party}); err != nil {
		return nil, storageError(err)
	}

	players, err := s.players(ctx, party.ID)
	if err != nil {
		return nil, err
	}

	s.log.Debug("party status updated", "party_id", party.ID, "status", party.Status)

	return &UpdateStatusOutput{
		Party:   party,
		Players: players,
	}, nil
}

func (s *service) lock(ctx context.Context, scope, id string) (func(), error) {
	unlock, err := s.locks.Lock(ctx, keylock.Key(scope, id))
	if err != nil {
		s.metrics.LockTimeout(scope)
		return nil, apperr.External("the party is busy, try again", err)
	}
	return unlock, nil
}

func (s *service) ensureNoActiveParty(ctx context.Context, userID string) error {
	existing, err := s.activeParty(ctx, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.WithMetadata(apperr.KindConflict,
			fmt.Sprintf("you are already in party %s (%s), leave it first", existing.ID, existing.Name),
			map[string]string{"partyId": existing.ID})
	}
	return nil
}

func (s *service) activeParty(ctx context.Context, userID string) (*models.Party, error) {
	party, err := s.repo.GetActivePartyForUser(ctx, &partyRepo.GetActivePartyForUserInput{UserID: userID})
	if err != nil {
		if errors.Is(err, partyRepo.ErrPartyNotFound) {
			return nil, nil
		}
		return nil, storageError(err)
	}
	return party, nil
}

func (s *service) getParty(ctx context.Context, partyID string) (*models.Party, error) {
	party, err := s.repo.GetParty(ctx, &partyRepo.GetPartyInput{PartyID: partyID})
	if err != nil {
		if errors.Is(err, partyRepo.ErrPartyNotFound) {
			return nil, apperr.NotFound("party %s does not exist", partyID)
		}
		return nil, storageError(err)
	}
	return party, nil
}

func (s *service) players(ctx context.Context, partyID string) ([]*models.PartyPlayer, error) {
	out, err := s.repo.GetPlayersByParty(ctx, &partyRepo.GetPlayersByPartyInput{PartyID: partyID})
	if err != nil {
		return nil, storageError(err)
	}
	return out.Players, nil
}

func storageError(err error) error {
	if _, ok := apperr.As(err); ok {
		return err
	}
	return apperr.External("party storage is unavailable", err)
}
