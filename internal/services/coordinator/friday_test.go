package coordinator

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/common/clock"
	"github.com/KirkDiggler/partyline/internal/common/keylock"
	"github.com/KirkDiggler/partyline/internal/common/uuid"
	"github.com/KirkDiggler/partyline/internal/delivery"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/games/impostor"
	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/repositories/gamestate"
	partyRepo "github.com/KirkDiggler/partyline/internal/repositories/party"
	userRepo "github.com/KirkDiggler/partyline/internal/repositories/user"
	"github.com/KirkDiggler/partyline/internal/services/messaging"
	"github.com/KirkDiggler/partyline/internal/services/notification"
	partySvc "github.com/KirkDiggler/partyline/internal/services/party"
	"github.com/KirkDiggler/partyline/internal/services/session"
)

// lastPicker picks the last word and the last player
type lastPicker struct{}

func (lastPicker) Intn(n int) int { return n - 1 }

// inbox records every notification per recipient
type inbox struct {
	mu  sync.Mutex
	got map[string][]*models.Notification
}

func (i *inbox) Send(_ context.Context, input *delivery.SendInput) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.got == nil {
		i.got = make(map[string][]*models.Notification)
	}
	i.got[input.UserID] = append(i.got[input.UserID], input.Notification)
	return nil
}

func (i *inbox) last(userID string) *models.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	notes := i.got[userID]
	if len(notes) == 0 {
		return nil
	}
	return notes[len(notes)-1]
}

func (i *inbox) count(userID string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.got[userID])
}

// FridayTestSuite drives a whole match through text commands against real
// services backed by miniredis.
type FridayTestSuite struct {
	suite.Suite
	client  *redis.Client
	inbox   *inbox
	service *service
	ctx     context.Context
}

func (s *FridayTestSuite) SetupTest() {
	mr := miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.ctx = context.Background()

	def, err := impostor.Definition(&impostor.Config{
		Words:  impostor.NewWordPool(map[string]map[string][]string{"en": {"places": {"Beach", "Library"}}}),
		Picker: lastPicker{},
	})
	s.Require().NoError(err)
	registry, err := games.NewRegistry(def)
	s.Require().NoError(err)

	parties, err := partyRepo.NewRedis(&partyRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	users, err := userRepo.NewRedis(&userRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	storage, err := gamestate.NewRedis(&gamestate.RedisConfig{RedisClient: s.client, Registry: registry})
	s.Require().NoError(err)

	locks := keylock.New()
	partyService, err := partySvc.New(&partySvc.Config{
		Repository:    parties,
		Registry:      registry,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Locks:         locks,
	})
	s.Require().NoError(err)

	sessions, err := session.New(&session.Config{
		Parties:  partyService,
		Storage:  storage,
		Registry: registry,
		Locks:    locks,
	})
	s.Require().NoError(err)

	msg, err := messaging.New(&messaging.Config{})
	s.Require().NoError(err)

	s.inbox = &inbox{}
	notifications, err := notification.New(&notification.Config{
		Parties:   partyService,
		Messaging: msg,
		Sender:    s.inbox,
	})
	s.Require().NoError(err)

	svc, err := New(&Config{
		Parties:       partyService,
		Sessions:      sessions,
		Notifications: notifications,
		Users:         users,
		Registry:      registry,
	})
	s.Require().NoError(err)
	s.service = svc

	for _, u := range []*models.User{
		{ID: "u1", Username: "alice", DisplayName: "Alice", Channel: models.DeliveryChannelSocket, ContactHandle: "u1"},
		{ID: "u2", Username: "bob", DisplayName: "Bob", Channel: models.DeliveryChannelSocket, ContactHandle: "u2"},
		{ID: "u3", Username: "carol", DisplayName: "Carol", Channel: models.DeliveryChannelSocket, ContactHandle: "u3"},
	} {
		s.Require().NoError(s.service.RegisterUser(s.ctx, &RegisterUserInput{User: u}))
	}
}

func (s *FridayTestSuite) TearDownTest() {
	s.client.Close()
}

func TestFridayTestSuite(t *testing.T) {
	suite.Run(t, new(FridayTestSuite))
}

func (s *FridayTestSuite) dispatch(userID, action string, args ...string) error {
	_, err := s.service.Dispatch(s.ctx, &DispatchInput{UserID: userID, Action: action, Args: args})
	return err
}

func (s *FridayTestSuite) TestFriday() {
	// U1 creates the party and becomes its manager
	s.Require().NoError(s.dispatch("u1", "/create", "Friday", "impostor"))
	mine, err := s.service.GetMyParty(s.ctx, &GetMyPartyInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Require().NotNil(mine.Party)
	party := mine.Party
	s.Equal("Friday", party.Name)
	s.Equal(models.PartyStatusWaiting, party.Status)
	s.Require().Len(mine.Players, 1)
	s.True(mine.Players[0].IsManager())

	// U2 and U3 join
	s.Require().NoError(s.dispatch("u2", "join", party.ID))
	s.Require().NoError(s.dispatch("u3", "join", party.ID))
	s.Equal(models.ActionJoinParty, s.inbox.last("u1").Action)

	// only the manager may start
	err = s.dispatch("u2", "start")
	s.True(apperr.IsKind(err, apperr.KindAuthorization))
	s.Equal(models.ActionError, s.inbox.last("u2").Action)
	s.Equal(models.ActionJoinParty, s.inbox.last("u3").Action, "errors go to the actor only")

	s.Require().NoError(s.dispatch("u1", "start"))
	got, err := s.service.GetParty(s.ctx, &GetPartyInput{PartyID: party.ID})
	s.Require().NoError(err)
	s.Equal(models.PartyStatusActive, got.Party.Status)

	// round one: lastPicker makes U3 the impostor with the word Library
	s.Require().NoError(s.dispatch("u1", "next"))
	s.Contains(s.inbox.last("u3").Body, "Library")
	s.NotContains(s.inbox.last("u1").Body, "Library")
	s.NotContains(s.inbox.last("u2").Body, "Library")

	// a second next while the round is active is refused
	err = s.dispatch("u1", "next")
	s.True(apperr.IsKind(err, apperr.KindInvalidState))

	// the two crew members accuse the impostor, who accuses Alice
	s.Require().NoError(s.dispatch("u1", "vote", "@carol"))
	s.Require().NoError(s.dispatch("u2", "vote", "Carol"))
	s.Require().NoError(s.dispatch("u3", "vote", "alice"))
	s.Contains(s.inbox.last("u1").Body, "3 of 3")

	state, err := s.service.GetGameState(s.ctx, &GetGameStateInput{UserID: "u2"})
	s.Require().NoError(err)
	s.Equal(impostor.HiddenWord, state.State.Custom.(*impostor.View).Word)

	s.Require().NoError(s.dispatch("u1", "finishround"))
	s.Contains(s.inbox.last("u2").Body, "Carol was accused with 2 votes.")
	s.Contains(s.inbox.last("u2").Body, "The crew found the impostor!")

	finished, err := s.service.FinishRound(s.ctx, &FinishRoundInput{UserID: "u1"})
	s.Nil(finished)
	s.True(apperr.IsKind(err, apperr.KindInvalidState))

	out, err := s.service.FinishMatch(s.ctx, &FinishMatchInput{UserID: "u1"})
	s.Require().NoError(err)
	s.True(out.State.IsFinished)
	s.Equal(models.PartyStatusFinished, out.Party.Status)
	s.Equal(impostor.Score{CrewWins: 1}, out.State.Custom.(*impostor.View).Score)
	s.Equal(models.ActionFinishMatch, s.inbox.last("u3").Action)

	// the finished party no longer holds its members
	mine, err = s.service.GetMyParty(s.ctx, &GetMyPartyInput{UserID: "u2"})
	s.Require().NoError(err)
	s.Nil(mine.Party)
}

func (s *FridayTestSuite) TestLastOneOutDissolves() {
	s.Require().NoError(s.dispatch("u1", "create", "Solo"))
	mine, err := s.service.GetMyParty(s.ctx, &GetMyPartyInput{UserID: "u1"})
	s.Require().NoError(err)
	partyID := mine.Party.ID

	out, err := s.service.LeaveParty(s.ctx, &LeavePartyInput{UserID: "u1"})
	s.Require().NoError(err)
	s.True(out.Dissolved)
	s.Equal(models.ActionPartyDissolved, s.inbox.last("u1").Action)

	_, err = s.service.GetParty(s.ctx, &GetPartyInput{PartyID: partyID})
	s.True(apperr.IsKind(err, apperr.KindNotFound))
}

func (s *FridayTestSuite) TestManagerLeavingHandsOver() {
	s.Require().NoError(s.dispatch("u1", "create", "Friday"))
	mine, err := s.service.GetMyParty(s.ctx, &GetMyPartyInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Require().NoError(s.dispatch("u2", "join", mine.Party.ID))

	s.Require().NoError(s.dispatch("u1", "leave"))
	s.Contains(s.inbox.last("u2").Body, "Bob is the new manager.")
	s.Equal(models.ActionLeaveParty, s.inbox.last("u1").Action)

	mine, err = s.service.GetMyParty(s.ctx, &GetMyPartyInput{UserID: "u2"})
	s.Require().NoError(err)
	s.Require().Len(mine.Players, 1)
	s.True(mine.Players[0].IsManager())
}

func (s *FridayTestSuite) TestPromoteByUsername() {
	s.Require().NoError(s.dispatch("u1", "create", "Friday"))
	mine, err := s.service.GetMyParty(s.ctx, &GetMyPartyInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Require().NoError(s.dispatch("u2", "join", mine.Party.ID))

	s.Require().NoError(s.dispatch("u1", "promote", "@Bob"))
	s.Contains(s.inbox.last("u1").Body, "Bob is now the manager")

	err = s.dispatch("u1", "start")
	s.True(apperr.IsKind(err, apperr.KindAuthorization))
}

func (s *FridayTestSuite) TestUnknownCommand() {
	before := s.inbox.count("u1")

	err := s.dispatch("u1", "dance")
	s.True(apperr.IsKind(err, apperr.KindValidation))
	s.Equal(before+1, s.inbox.count("u1"))
	s.Equal(models.ActionError, s.inbox.last("u1").Action)
}

func (s *FridayTestSuite) TestNoActiveParty() {
	err := s.dispatch("u1", "status")
	s.True(apperr.IsKind(err, apperr.KindNotFound))
	s.Contains(s.inbox.last("u1").Body, "no active party")
}
