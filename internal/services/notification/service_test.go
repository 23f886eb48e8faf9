package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/delivery"
	deliveryMocks "github.com/KirkDiggler/partyline/internal/delivery/mocks"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/games/impostor"
	"github.com/KirkDiggler/partyline/internal/metrics"
	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/services/messaging"
	partySvc "github.com/KirkDiggler/partyline/internal/services/party"
	partyMocks "github.com/KirkDiggler/partyline/internal/services/party/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockParties *partyMocks.MockService
	mockSender  *deliveryMocks.MockSender
	metrics     *metrics.Metrics
	service     Service
	ctx         context.Context

	testPartyID string
	testParty   *models.Party
	members     []*models.PartyPlayer
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockParties = partyMocks.NewMockService(s.mockCtrl)
	s.mockSender = deliveryMocks.NewMockSender(s.mockCtrl)
	s.metrics = metrics.New()
	s.ctx = context.Background()

	msg, err := messaging.New(&messaging.Config{})
	s.Require().NoError(err)

	svc, err := New(&Config{
		Parties:         s.mockParties,
		Messaging:       msg,
		Sender:          s.mockSender,
		Concurrency:     2,
		DeliveryTimeout: 50 * time.Millisecond,
		Metrics:         s.metrics,
	})
	s.Require().NoError(err)
	s.service = svc

	s.testPartyID = "ab12cd34"
	s.testParty = &models.Party{ID: s.testPartyID, Name: "friday", Language: "es", GameKind: models.GameKindImpostor}
	s.members = []*models.PartyPlayer{
		{PartyID: s.testPartyID, UserID: "alice", Role: models.PartyRoleManager},
		{PartyID: s.testPartyID, UserID: "bob", Role: models.PartyRolePlayer},
		{PartyID: s.testPartyID, UserID: "carol", Role: models.PartyRolePlayer},
	}
}

func (s *NotificationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (s *NotificationServiceTestSuite) expectMembers() {
	s.mockParties.EXPECT().
		GetPlayers(s.ctx, &partySvc.GetPlayersInput{PartyID: s.testPartyID}).
		Return(&partySvc.GetPlayersOutput{Players: s.members}, nil)
}

func (s *NotificationServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilParties)

	_, err = New(&Config{Parties: s.mockParties})
	s.ErrorIs(err, ErrNilMessaging)
}

func (s *NotificationServiceTestSuite) TestBroadcast_IsolatesRecipients() {
	s.mockParties.EXPECT().
		GetParty(s.ctx, &partySvc.GetPartyInput{PartyID: s.testPartyID}).
		Return(s.testParty, nil)
	s.expectMembers()

	var mu sync.Mutex
	titles := make(map[string]string)
	s.mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, input *delivery.SendInput) error {
			mu.Lock()
			titles[input.UserID] = input.Notification.Title
			mu.Unlock()
			switch input.UserID {
			case "bob":
				return delivery.ErrNoChannel
			case "carol":
				return errors.New("telegram: chat not found")
			}
			return nil
		})

	out, err := s.service.Broadcast(s.ctx, &BroadcastInput{
		PartyID: s.testPartyID,
		Action:  models.ActionVote,
		Event:   &messaging.VoteEvent{VoterName: "Alice", VotesCast: 1, PlayersTotal: 3},
	})
	s.Require().NoError(err)

	s.Equal([]string{"alice"}, out.Delivered)
	s.Equal([]string{"bob"}, out.Skipped)
	s.Len(out.Failed, 1)
	s.Contains(out.Failed, "carol")

	// party language
	s.Equal("Voto registrado", titles["alice"])
}

func (s *NotificationServiceTestSuite) TestBroadcast_PerRecipientViews() {
	s.expectMembers()

	views := map[string]*games.State{
		"alice": {CurrentRound: 1, Custom: &impostor.View{Word: "Beach", IsImpostor: true}},
		"bob":   {CurrentRound: 1, Custom: &impostor.View{Word: "???"}},
		"carol": {CurrentRound: 1, Custom: &impostor.View{Word: "???"}},
	}

	var mu sync.Mutex
	bodies := make(map[string]string)
	s.mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, input *delivery.SendInput) error {
			mu.Lock()
			defer mu.Unlock()
			bodies[input.UserID] = input.Notification.Body
			s.Same(views[input.UserID], input.Notification.GameState)
			return nil
		})

	out, err := s.service.Broadcast(s.ctx, &BroadcastInput{
		PartyID:  s.testPartyID,
		Action:   models.ActionNextRound,
		Language: "en",
		ViewFor:  func(userID string) *games.State { return views[userID] },
	})
	s.Require().NoError(err)

	s.Len(out.Delivered, 3)
	s.Contains(bodies["alice"], "Beach")
	s.NotContains(bodies["bob"], "Beach")
	s.NotContains(bodies["carol"], "Beach")
}

func (s *NotificationServiceTestSuite) TestBroadcast_SlowRecipientTimesOut() {
	s.expectMembers()

	s.mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(ctx context.Context, input *delivery.SendInput) error {
			if input.UserID == "bob" {
				<-ctx.Done()
				return ctx.Err()
			}
			return nil
		})

	out, err := s.service.Broadcast(s.ctx, &BroadcastInput{
		PartyID:  s.testPartyID,
		Action:   models.ActionStartMatch,
		Language: "en",
		Event:    &messaging.MatchEvent{Party: s.testParty, PlayerCount: 3},
	})
	s.Require().NoError(err)

	s.Equal([]string{"alice", "carol"}, out.Delivered)
	s.ErrorIs(out.Failed["bob"], context.DeadlineExceeded)
}

func (s *NotificationServiceTestSuite) TestBroadcast_Exclude() {
	s.expectMembers()
	s.mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).Return(nil)

	out, err := s.service.Broadcast(s.ctx, &BroadcastInput{
		PartyID:  s.testPartyID,
		Action:   models.ActionJoinParty,
		Language: "en",
		Event:    &messaging.PartyEvent{Party: s.testParty, ActorName: "Carol"},
		Exclude:  []string{"carol"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"alice", "bob"}, out.Delivered)
}

func (s *NotificationServiceTestSuite) TestBroadcast_MembersLookupFails() {
	s.mockParties.EXPECT().GetPlayers(s.ctx, gomock.Any()).
		Return(nil, apperr.External("party storage is unavailable", errors.New("boom")))

	_, err := s.service.Broadcast(s.ctx, &BroadcastInput{PartyID: s.testPartyID, Action: models.ActionVote, Language: "en"})
	s.True(apperr.IsKind(err, apperr.KindExternalService))
}

func (s *NotificationServiceTestSuite) TestBroadcast_PartyGone() {
	s.mockParties.EXPECT().
		GetParty(s.ctx, &partySvc.GetPartyInput{PartyID: "gone"}).
		Return(nil, nil)

	out, err := s.service.Broadcast(s.ctx, &BroadcastInput{PartyID: "gone", Action: models.ActionVote})

	s.Nil(out)
	s.True(apperr.IsKind(err, apperr.KindNotFound))
}

func (s *NotificationServiceTestSuite) TestNotifyError_ActorOnly() {
	s.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *delivery.SendInput) error {
			s.Equal("bob", input.UserID)
			s.Equal(models.ActionError, input.Notification.Action)
			s.Equal("Não permitido", input.Notification.Title)
			s.Equal("only the manager can start the match", input.Notification.Body)
			return nil
		})

	err := s.service.NotifyError(s.ctx, &NotifyErrorInput{
		UserID:   "bob",
		Err:      apperr.Unauthorized("only the manager can start the match"),
		Language: "pt",
	})
	s.NoError(err)
}

func (s *NotificationServiceTestSuite) TestFormatError_HidesCause() {
	out, err := s.service.FormatError(s.ctx, &FormatErrorInput{
		Err: apperr.External("game storage is unavailable", errors.New("READONLY You can't write against a read only replica")),
	})
	s.Require().NoError(err)
	s.NotContains(out.Notification.Body, "READONLY")
}

func (s *NotificationServiceTestSuite) TestNotifyUser_ComposeFails() {
	err := s.service.NotifyUser(s.ctx, &NotifyUserInput{UserID: "alice", Action: models.ActionJoinParty})
	s.ErrorIs(err, messaging.ErrEmptyEvent)
}
