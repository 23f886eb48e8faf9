package gamestate

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/games/impostor"
	"github.com/KirkDiggler/partyline/internal/random"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type StorageTestSuite struct {
	suite.Suite
	ctx      context.Context
	mr       *miniredis.Miniredis
	client   *redis.Client
	registry *games.Registry
	storages map[string]Storage
	players  []games.Player
}

func (s *StorageTestSuite) SetupTest() {
	s.ctx = context.Background()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	def, err := impostor.Definition(&impostor.Config{Picker: random.New(&random.Config{Seed: 7})})
	s.Require().NoError(err)
	s.registry, err = games.NewRegistry(def)
	s.Require().NoError(err)

	mem, err := NewMemory(&MemoryConfig{Registry: s.registry})
	s.Require().NoError(err)
	rds, err := NewRedis(&RedisConfig{RedisClient: s.client, Registry: s.registry, TTL: time.Hour})
	s.Require().NoError(err)
	s.storages = map[string]Storage{"memory": mem, "redis": rds}

	s.players = []games.Player{{UserID: "u1", IsManager: true}, {UserID: "u2"}, {UserID: "u3"}}
}

func (s *StorageTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestStorageTestSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (s *StorageTestSuite) newGame() games.Game {
	def, ok := s.registry.Lookup("IMPOSTOR")
	s.Require().True(ok)
	game := def.New()
	s.Require().NoError(game.Start(s.players))
	_, err := game.AdvanceRound(impostor.NextRoundParams{UserID: "u1", Language: "en"})
	s.Require().NoError(err)
	_, err = game.ApplyMidRoundAction(impostor.VoteParams{Votes: map[string]string{"u1": "u2"}})
	s.Require().NoError(err)
	return game
}

func (s *StorageTestSuite) TestSetAndGet() {
	for name, storage := range s.storages {
		s.Run(name, func() {
			game := s.newGame()
			s.Require().NoError(storage.Set(s.ctx, &SetInput{PartyID: "p1", Game: game}))

			got, err := storage.Get(s.ctx, &GetInput{PartyID: "p1"})
			s.Require().NoError(err)

			want, err := game.MarshalState()
			s.Require().NoError(err)
			have, err := got.MarshalState()
			s.Require().NoError(err)
			s.JSONEq(string(want), string(have))
			s.Equal(1, got.CurrentRound())
			s.False(got.RoundEnded())
		})
	}
}

func (s *StorageTestSuite) TestGetReturnsIndependentCopies() {
	for name, storage := range s.storages {
		s.Run(name, func() {
			s.Require().NoError(storage.Set(s.ctx, &SetInput{PartyID: "p1", Game: s.newGame()}))

			first, err := storage.Get(s.ctx, &GetInput{PartyID: "p1"})
			s.Require().NoError(err)
			_, err = first.ResolveRound(impostor.FinishRoundParams{})
			s.Require().NoError(err)

			second, err := storage.Get(s.ctx, &GetInput{PartyID: "p1"})
			s.Require().NoError(err)
			s.False(second.RoundEnded())
		})
	}
}

func (s *StorageTestSuite) TestGetMissing() {
	for name, storage := range s.storages {
		s.Run(name, func() {
			_, err := storage.Get(s.ctx, &GetInput{PartyID: "nope"})
			s.ErrorIs(err, ErrGameNotFound)
		})
	}
}

func (s *StorageTestSuite) TestDelete() {
	for name, storage := range s.storages {
		s.Run(name, func() {
			s.Require().NoError(storage.Set(s.ctx, &SetInput{PartyID: "p1", Game: s.newGame()}))
			s.Require().NoError(storage.Delete(s.ctx, &DeleteInput{PartyID: "p1"}))

			_, err := storage.Get(s.ctx, &GetInput{PartyID: "p1"})
			s.ErrorIs(err, ErrGameNotFound)

			// deleting twice is fine
			s.NoError(storage.Delete(s.ctx, &DeleteInput{PartyID: "p1"}))
		})
	}
}

func (s *StorageTestSuite) TestRedisEnvelopeAndIndex() {
	storage := s.storages["redis"]
	s.Require().NoError(storage.Set(s.ctx, &SetInput{PartyID: "p1", Game: s.newGame()}))

	raw, err := s.mr.Get("gamestate:p1")
	s.Require().NoError(err)
	s.Contains(raw, `"kind":"IMPOSTOR"`)
	s.Contains(raw, `"customState"`)
	s.True(s.mr.TTL("gamestate:p1") > 0)

	members, err := s.mr.Members(liveGamesKey)
	s.Require().NoError(err)
	s.Equal([]string{"p1"}, members)

	s.Require().NoError(storage.Delete(s.ctx, &DeleteInput{PartyID: "p1"}))
	s.False(s.mr.Exists(liveGamesKey))
}

func (s *StorageTestSuite) TestUnknownKind() {
	s.mr.Set("gamestate:p1", `{"kind":"CHESS","state":{}}`)

	_, err := s.storages["redis"].Get(s.ctx, &GetInput{PartyID: "p1"})

	s.Error(err)
	s.NotErrorIs(err, ErrGameNotFound)
}

func (s *StorageTestSuite) TestInvalidInput() {
	for name, storage := range s.storages {
		s.Run(name, func() {
			s.Error(storage.Set(s.ctx, nil))
			s.Error(storage.Set(s.ctx, &SetInput{PartyID: "p1"}))
			_, err := storage.Get(s.ctx, &GetInput{})
			s.Error(err)
			s.Error(storage.Delete(s.ctx, &DeleteInput{}))
		})
	}
}
