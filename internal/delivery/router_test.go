package delivery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/partyline/internal/delivery"
	"github.com/KirkDiggler/partyline/internal/delivery/mocks"
	"github.com/KirkDiggler/partyline/internal/models"
	userRepo "github.com/KirkDiggler/partyline/internal/repositories/user"
	userMocks "github.com/KirkDiggler/partyline/internal/repositories/user/mocks"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	users    *userMocks.MockRepository
	telegram *mocks.MockProvider
	router   *delivery.Router
	ctx      context.Context
	note     *models.Notification
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = userMocks.NewMockRepository(s.ctrl)
	s.telegram = mocks.NewMockProvider(s.ctrl)
	s.telegram.EXPECT().Channel().Return(models.DeliveryChannelTelegram).AnyTimes()

	router, err := delivery.NewRouter(&delivery.RouterConfig{
		Users:     s.users,
		Providers: []delivery.Provider{s.telegram},
	})
	s.Require().NoError(err)
	s.router = router
	s.ctx = context.Background()
	s.note = &models.Notification{Title: "hello"}
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestSend_RoutesByChannel() {
	user := &models.User{ID: "tg:42", Channel: models.DeliveryChannelTelegram, ContactHandle: "42"}
	s.users.EXPECT().GetUserByID(s.ctx, &userRepo.GetUserByIDInput{UserID: "tg:42"}).Return(user, nil)
	s.telegram.EXPECT().Deliver(s.ctx, &delivery.DeliverInput{User: user, Notification: s.note}).Return(nil)

	s.NoError(s.router.Send(s.ctx, &delivery.SendInput{UserID: "tg:42", Notification: s.note}))
}

func (s *RouterTestSuite) TestSend_UnknownUser() {
	s.users.EXPECT().GetUserByID(s.ctx, gomock.Any()).Return(nil, userRepo.ErrUserNotFound)

	err := s.router.Send(s.ctx, &delivery.SendInput{UserID: "ghost", Notification: s.note})
	s.ErrorIs(err, delivery.ErrNoChannel)
}

func (s *RouterTestSuite) TestSend_ChannelNotEnabled() {
	user := &models.User{ID: "discord:1", Channel: models.DeliveryChannelDiscord, ContactHandle: "1"}
	s.users.EXPECT().GetUserByID(s.ctx, gomock.Any()).Return(user, nil)

	err := s.router.Send(s.ctx, &delivery.SendInput{UserID: "discord:1", Notification: s.note})
	s.ErrorIs(err, delivery.ErrNoChannel)
}

func (s *RouterTestSuite) TestSend_LookupFails() {
	s.users.EXPECT().GetUserByID(s.ctx, gomock.Any()).Return(nil, errors.New("redis down"))

	err := s.router.Send(s.ctx, &delivery.SendInput{UserID: "tg:42", Notification: s.note})
	s.Error(err)
	s.NotErrorIs(err, delivery.ErrNoChannel)
}

func (s *RouterTestSuite) TestNewRouter_DuplicateChannel() {
	other := mocks.NewMockProvider(s.ctrl)
	other.EXPECT().Channel().Return(models.DeliveryChannelTelegram).AnyTimes()

	_, err := delivery.NewRouter(&delivery.RouterConfig{
		Users:     s.users,
		Providers: []delivery.Provider{s.telegram, other},
	})
	s.Error(err)
}

func (s *RouterTestSuite) TestText() {
	s.Equal("a\nb", delivery.Text(&models.Notification{Title: "a", Body: "b"}))
	s.Equal("b", delivery.Text(&models.Notification{Body: "b"}))
	s.Equal("a", delivery.Text(&models.Notification{Title: "a"}))
}
