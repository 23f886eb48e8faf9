package party

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	partyKeyPrefix        = "party:"
	partyPlayersKeyPrefix = "party_players:"
	userPartiesKeyPrefix  = "user_parties:"
	waitingPartiesKey     = "parties:waiting"

	maxTxAttempts = 5
)

// Config holds configuration for the Redis party repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis.
//
//	party:<id>             party JSON
//	party_players:<id>     hash userID -> PartyPlayer JSON
//	user_parties:<userID>  set of non-finished party IDs the user belongs to
//	parties:waiting        zset of WAITING party IDs scored by creation time
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed party repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveParty persists a party and keeps the waiting index in step with its status
func (r *redisRepository) SaveParty(ctx context.Context, input *SavePartyInput) error {
	if input == nil || input.Party == nil {
		return errors.New("input and party cannot be nil")
	}
	if input.Party.ID == "" {
		return errors.New("party ID cannot be empty")
	}

	partyJSON, err := json.Marshal(input.Party)
	if err != nil {
		return fmt.Errorf("failed to marshal party: %w", err)
	}

	var members []string
	if input.Party.Status.IsFinished() {
		members, err = r.client.HKeys(ctx, partyPlayersKeyPrefix+input.Party.ID).Result()
		if err != nil {
			return fmt.Errorf("failed to list party players: %w", err)
		}
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, partyKeyPrefix+input.Party.ID, partyJSON, 0)
	// finished parties leave the user index so lookups stay bounded by live parties
	for _, userID := range members {
		pipe.SRem(ctx, userPartiesKeyPrefix+userID, input.Party.ID)
	}

	if input.Party.Status.IsWaiting() {
		pipe.ZAdd(ctx, waitingPartiesKey, redis.Z{
			Score:  float64(input.Party.CreatedAt.UnixNano()),
			Member: input.Party.ID,
		})
	} else {
		pipe.ZRem(ctx, waitingPartiesKey, input.Party.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save party: %w", err)
	}

	return nil
}

// GetParty retrieves a party by ID from Redis
func (r *redisRepository) GetParty(ctx context.Context, input *GetPartyInput) (*models.Party, error) {
	if input == nil || input.PartyID == "" {
		return nil, errors.New("input and party ID cannot be empty")
	}

	partyJSON, err := r.client.Get(ctx, partyKeyPrefix+input.PartyID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPartyNotFound
		}
		return nil, fmt.Errorf("failed to get party: %w", err)
	}

	var party models.Party
	if err := json.Unmarshal([]byte(partyJSON), &party); err != nil {
		return nil, fmt.Errorf("failed to unmarshal party: %w", err)
	}

	return &party, nil
}

// DeleteParty removes the party, its memberships and every index entry
func (r *redisRepository) DeleteParty(ctx context.Context, input *DeletePartyInput) error {
	if input == nil || input.PartyID == "" {
		return errors.New("input and party ID cannot be empty")
	}

	userIDs, err := r.client.HKeys(ctx, partyPlayersKeyPrefix+input.PartyID).Result()
	if err != nil {
		return fmt.Errorf("failed to list party players: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, partyKeyPrefix+input.PartyID, partyPlayersKeyPrefix+input.PartyID)
	pipe.ZRem(ctx, waitingPartiesKey, input.PartyID)
	for _, userID := range userIDs {
		pipe.SRem(ctx, userPartiesKeyPrefix+userID, input.PartyID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}

	return nil
}

// GetAvailableParties lists WAITING parties, oldest first
func (r *redisRepository) GetAvailableParties(ctx context.Context, input *GetAvailablePartiesInput) (*GetAvailablePartiesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	partyIDs, err := r.client.ZRange(ctx, waitingPartiesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get waiting parties: %w", err)
	}

	parties := make([]*models.Party, 0, len(partyIDs))
	for _, partyID := range partyIDs {
		party, err := r.GetParty(ctx, &GetPartyInput{PartyID: partyID})
		if err != nil {
			if errors.Is(err, ErrPartyNotFound) {
				// index entry outlived the party
				continue
			}
			return nil, err
		}
		if !party.Status.IsWaiting() {
			continue
		}
		if input.GameKind != "" && party.GameKind != input.GameKind {
			continue
		}
		parties = append(parties, party)
	}

	return &GetAvailablePartiesOutput{Parties: parties}, nil
}

// AddPlayer creates a membership and its user index entry together;
// ErrPlayerExists if the user is already in the party
func (r *redisRepository) AddPlayer(ctx context.Context, input *AddPlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}
	player := input.Player
	if player.PartyID == "" || player.UserID == "" {
		return errors.New("party ID and user ID cannot be empty")
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal party player: %w", err)
	}

	// SADD is idempotent, so an existing member keeps the same index entry
	pipe := r.client.TxPipeline()
	added := pipe.HSetNX(ctx, partyPlayersKeyPrefix+player.PartyID, player.UserID, playerJSON)
	pipe.SAdd(ctx, userPartiesKeyPrefix+player.UserID, player.PartyID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add party player: %w", err)
	}
	if !added.Val() {
		return ErrPlayerExists
	}

	return nil
}

// TransferManager swaps the roles of two members inside one MULTI
func (r *redisRepository) TransferManager(ctx context.Context, input *TransferManagerInput) error {
	if input == nil || input.PartyID == "" || input.FromUserID == "" || input.ToUserID == "" {
		return errors.New("input, party ID and both user IDs cannot be empty")
	}
	key := partyPlayersKeyPrefix + input.PartyID

	err := r.watch(ctx, func(tx *redis.Tx) error {
		members, err := loadMembers(ctx, tx, key, input.FromUserID, input.ToUserID)
		if err != nil {
			return err
		}
		from, to := members[0], members[1]
		from.Role = models.PartyRolePlayer
		to.Role = models.PartyRoleManager

		fromJSON, err := json.Marshal(from)
		if err != nil {
			return fmt.Errorf("failed to marshal party player: %w", err)
		}
		toJSON, err := json.Marshal(to)
		if err != nil {
			return fmt.Errorf("failed to marshal party player: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, from.UserID, fromJSON, to.UserID, toJSON)
			return nil
		})
		return err
	}, key)
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			return err
		}
		return fmt.Errorf("failed to transfer manager: %w", err)
	}

	return nil
}

// RemovePlayer deletes a membership, promoting input.Successor in the same MULTI when set
func (r *redisRepository) RemovePlayer(ctx context.Context, input *RemovePlayerInput) error {
	if input == nil || input.PartyID == "" || input.UserID == "" {
		return errors.New("input, party ID and user ID cannot be empty")
	}
	key := partyPlayersKeyPrefix + input.PartyID

	if input.Successor == "" {
		pipe := r.client.TxPipeline()
		removed := pipe.HDel(ctx, key, input.UserID)
		pipe.SRem(ctx, userPartiesKeyPrefix+input.UserID, input.PartyID)

		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to remove party player: %w", err)
		}
		if removed.Val() == 0 {
			return ErrPlayerNotFound
		}
		return nil
	}

	err := r.watch(ctx, func(tx *redis.Tx) error {
		members, err := loadMembers(ctx, tx, key, input.UserID, input.Successor)
		if err != nil {
			return err
		}
		successor := members[1]
		successor.Role = models.PartyRoleManager

		successorJSON, err := json.Marshal(successor)
		if err != nil {
			return fmt.Errorf("failed to marshal party player: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, key, input.UserID)
			pipe.SRem(ctx, userPartiesKeyPrefix+input.UserID, input.PartyID)
			pipe.HSet(ctx, key, successor.UserID, successorJSON)
			return nil
		})
		return err
	}, key)
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			return err
		}
		return fmt.Errorf("failed to remove party player: %w", err)
	}

	return nil
}

// GetPlayersByParty lists memberships ordered by join time, then user ID
func (r *redisRepository) GetPlayersByParty(ctx context.Context, input *GetPlayersByPartyInput) (*GetPlayersByPartyOutput, error) {
	if input == nil || input.PartyID == "" {
		return nil, errors.New("input and party ID cannot be empty")
	}

	values, err := r.client.HVals(ctx, partyPlayersKeyPrefix+input.PartyID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get party players: %w", err)
	}

	players := make([]*models.PartyPlayer, 0, len(values))
	for _, value := range values {
		var player models.PartyPlayer
		if err := json.Unmarshal([]byte(value), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal party player: %w", err)
		}
		players = append(players, &player)
	}
	sortByJoinOrder(players)

	return &GetPlayersByPartyOutput{Players: players}, nil
}

// GetActivePartyForUser returns the first non-finished party the user belongs to
func (r *redisRepository) GetActivePartyForUser(ctx context.Context, input *GetActivePartyForUserInput) (*models.Party, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	partyIDs, err := r.client.SMembers(ctx, userPartiesKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user parties: %w", err)
	}
	sort.Strings(partyIDs)

	var stale []any
	defer func() {
		if len(stale) > 0 {
			// best effort; a leftover entry is skipped again next time
			_ = r.client.SRem(ctx, userPartiesKeyPrefix+input.UserID, stale...).Err()
		}
	}()

	for _, partyID := range partyIDs {
		party, err := r.GetParty(ctx, &GetPartyInput{PartyID: partyID})
		if err != nil {
			if errors.Is(err, ErrPartyNotFound) {
				stale = append(stale, partyID)
				continue
			}
			return nil, err
		}
		if !party.Status.IsFinished() {
			return party, nil
		}
		stale = append(stale, partyID)
	}

	return nil, ErrPartyNotFound
}

// watch runs fn under WATCH on keys, retrying when another client wins the race
func (r *redisRepository) watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error {
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := r.client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return redis.TxFailedErr
}

// loadMembers reads memberships of userIDs from the party hash, in order
func loadMembers(ctx context.Context, tx *redis.Tx, key string, userIDs ...string) ([]*models.PartyPlayer, error) {
	values, err := tx.HMGet(ctx, key, userIDs...).Result()
	if err != nil {
		return nil, err
	}

	members := make([]*models.PartyPlayer, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			return nil, ErrPlayerNotFound
		}
		var player models.PartyPlayer
		if err := json.Unmarshal([]byte(raw), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal party player: %w", err)
		}
		members = append(members, &player)
	}
	return members, nil
}

func sortByJoinOrder(players []*models.PartyPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		if !players[i].JoinedAt.Equal(players[j].JoinedAt) {
			return players[i].JoinedAt.Before(players[j].JoinedAt)
		}
		return players[i].UserID < players[j].UserID
	})
}
