package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/games/impostor"
	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/repositories/gamestate"
	storageMocks "github.com/KirkDiggler/partyline/internal/repositories/gamestate/mocks"
	partySvc "github.com/KirkDiggler/partyline/internal/services/party"
	partyMocks "github.com/KirkDiggler/partyline/internal/services/party/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// firstPicker always picks index 0: the first word and the first player
type firstPicker struct{}

func (firstPicker) Intn(int) int { return 0 }

type SessionServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockParties *partyMocks.MockService
	registry    *games.Registry
	storage     gamestate.Storage
	service     Service
	ctx         context.Context

	testTime    time.Time
	testPartyID string
	testParty   *models.Party
	members     []*models.PartyPlayer
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockParties = partyMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	def, err := impostor.Definition(&impostor.Config{
		Words:  impostor.NewWordPool(map[string]map[string][]string{"en": {"places": {"Beach", "Library"}}}),
		Picker: firstPicker{},
	})
	s.Require().NoError(err)
	s.registry, err = games.NewRegistry(def)
	s.Require().NoError(err)

	s.storage, err = gamestate.NewMemory(&gamestate.MemoryConfig{Registry: s.registry})
	s.Require().NoError(err)

	svc, err := New(&Config{
		Parties:  s.mockParties,
		Storage:  s.storage,
		Registry: s.registry,
	})
	s.Require().NoError(err)
	s.service = svc

	s.testTime = time.Date(2025, 4, 19, 20, 0, 0, 0, time.UTC)
	s.testPartyID = "ab12cd34"
	s.testParty = &models.Party{
		ID:       s.testPartyID,
		Name:     "friday",
		GameKind: models.GameKindImpostor,
		Status:   models.PartyStatusWaiting,
		Language: "en",
	}
	s.members = []*models.PartyPlayer{
		{PartyID: s.testPartyID, UserID: "alice", Role: models.PartyRoleManager, JoinedAt: s.testTime},
		{PartyID: s.testPartyID, UserID: "bob", Role: models.PartyRolePlayer, JoinedAt: s.testTime.Add(time.Second)},
		{PartyID: s.testPartyID, UserID: "carol", Role: models.PartyRolePlayer, JoinedAt: s.testTime.Add(2 * time.Second)},
	}
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) activeParty() *models.Party {
	p := *s.testParty
	p.Status = models.PartyStatusActive
	return &p
}

func (s *SessionServiceTestSuite) expectStart() {
	s.mockParties.EXPECT().GetParty(gomock.Any(), &partySvc.GetPartyInput{PartyID: s.testPartyID}).Return(s.testParty, nil)
	s.mockParties.EXPECT().GetPlayers(gomock.Any(), &partySvc.GetPlayersInput{PartyID: s.testPartyID}).
		Return(&partySvc.GetPlayersOutput{Players: s.members}, nil)
	s.mockParties.EXPECT().UpdateStatus(gomock.Any(), &partySvc.UpdateStatusInput{
		PartyID:        s.testPartyID,
		Status:         models.PartyStatusActive,
		ExpectedStatus: models.PartyStatusWaiting,
	}).Return(&partySvc.UpdateStatusOutput{Party: s.activeParty(), Players: s.members}, nil)
}

func (s *SessionServiceTestSuite) start() {
	s.expectStart()
	_, err := s.service.StartMatch(s.ctx, &StartMatchInput{PartyID: s.testPartyID})
	s.Require().NoError(err)
}

func (s *SessionServiceTestSuite) nextRound(userID string) *NextRoundOutput {
	out, err := s.service.NextRound(s.ctx, &NextRoundInput{
		PartyID: s.testPartyID,
		UserID:  userID,
		Params:  impostor.NextRoundParams{UserID: userID, Language: "en"},
	})
	s.Require().NoError(err)
	return out
}

func (s *SessionServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Storage: s.storage, Registry: s.registry})
	s.ErrorIs(err, ErrNilParties)

	_, err = New(&Config{Parties: s.mockParties, Registry: s.registry})
	s.ErrorIs(err, ErrNilStorage)
}

func (s *SessionServiceTestSuite) TestStartMatch_Success() {
	s.expectStart()

	out, err := s.service.StartMatch(s.ctx, &StartMatchInput{PartyID: s.testPartyID})

	s.Require().NoError(err)
	s.Equal(models.PartyStatusActive, out.Party.Status)
	s.Equal([]games.Player{
		{UserID: "alice", IsManager: true},
		{UserID: "bob"},
		{UserID: "carol"},
	}, out.Players)

	state := out.View("bob")
	s.Equal(s.testPartyID, state.PartyID)
	s.Equal(0, state.CurrentRound)
	s.True(state.RoundEnded)
}

func (s *SessionServiceTestSuite) TestStartMatch_NotEnoughPlayers() {
	s.mockParties.EXPECT().GetParty(gomock.Any(), gomock.Any()).Return(s.testParty, nil)
	s.mockParties.EXPECT().GetPlayers(gomock.Any(), gomock.Any()).
		Return(&partySvc.GetPlayersOutput{Players: s.members[:2]}, nil)

	_, err := s.service.StartMatch(s.ctx, &StartMatchInput{PartyID: s.testPartyID})

	s.True(apperr.IsKind(err, apperr.KindValidation))
	_, getErr := s.storage.Get(s.ctx, &gamestate.GetInput{PartyID: s.testPartyID})
	s.ErrorIs(getErr, gamestate.ErrGameNotFound)
}

func (s *SessionServiceTestSuite) TestStartMatch_SomeoneLeftDuringStart() {
	s.mockParties.EXPECT().GetParty(gomock.Any(), gomock.Any()).Return(s.testParty, nil)
	s.mockParties.EXPECT().GetPlayers(gomock.Any(), gomock.Any()).
		Return(&partySvc.GetPlayersOutput{Players: s.members}, nil)
	gomock.InOrder(
		s.mockParties.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
			Return(&partySvc.UpdateStatusOutput{Party: s.activeParty(), Players: s.members[:2]}, nil),
		s.mockParties.EXPECT().UpdateStatus(gomock.Any(), &partySvc.UpdateStatusInput{
			PartyID:        s.testPartyID,
			Status:         models.PartyStatusWaiting,
			ExpectedStatus: models.PartyStatusActive,
		}).Return(&partySvc.UpdateStatusOutput{Party: s.testParty}, nil),
	)

	_, err := s.service.StartMatch(s.ctx, &StartMatchInput{PartyID: s.testPartyID})

	s.True(apperr.IsKind(err, apperr.KindValidation))
}

func (s *SessionServiceTestSuite) TestStartMatch_AlreadyActive() {
	s.mockParties.EXPECT().GetParty(gomock.Any(), gomock.Any()).Return(s.activeParty(), nil)

	_, err := s.service.StartMatch(s.ctx, &StartMatchInput{PartyID: s.testPartyID})

	s.True(apperr.IsKind(err, apperr.KindInvalidState))
}

func (s *SessionServiceTestSuite) TestStartMatch_UnknownParty() {
	s.mockParties.EXPECT().GetParty(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.service.StartMatch(s.ctx, &StartMatchInput{PartyID: "nope"})

	s.True(apperr.IsKind(err, apperr.KindNotFound))
}

func (s *SessionServiceTestSuite) TestNextRound_WithoutMatch() {
	_, err := s.service.NextRound(s.ctx, &NextRoundInput{
		PartyID: s.testPartyID,
		Params:  impostor.NextRoundParams{UserID: "alice"},
	})

	s.True(apperr.IsKind(err, apperr.KindInvalidState))
}

func (s *SessionServiceTestSuite) TestNextRound_Gating() {
	s.start()

	first := s.nextRound("alice")
	s.Equal(1, first.Round)

	_, err := s.service.NextRound(s.ctx, &NextRoundInput{
		PartyID: s.testPartyID,
		Params:  impostor.NextRoundParams{UserID: "alice"},
	})
	s.True(apperr.IsKind(err, apperr.KindInvalidState))

	_, err = s.service.FinishRound(s.ctx, &FinishRoundInput{PartyID: s.testPartyID, Params: impostor.FinishRoundParams{}})
	s.Require().NoError(err)

	second := s.nextRound("alice")
	s.Equal(2, second.Round)
}

func (s *SessionServiceTestSuite) TestNextRound_WordOnlyForImpostor() {
	s.start()

	// alice is first in the snapshot and therefore the impostor
	out := s.nextRound("alice")
	res := out.Result.(impostor.NextRoundResult)
	s.True(res.IsImpostor)
	s.Equal("Beach", res.Word)

	s.Equal("Beach", out.View("alice").Custom.(*impostor.View).Word)
	s.Equal(impostor.HiddenWord, out.View("bob").Custom.(*impostor.View).Word)
}

func (s *SessionServiceTestSuite) TestNextRound_NonImpostorCallerGetsSentinel() {
	s.start()

	out := s.nextRound("bob")

	s.Equal(impostor.NotTheWord, out.Result.(impostor.NextRoundResult).Word)
}

func (s *SessionServiceTestSuite) TestMiddleRoundAction_RejectsForeignParams() {
	s.start()
	s.nextRound("alice")

	_, err := s.service.MiddleRoundAction(s.ctx, &MiddleRoundActionInput{PartyID: s.testPartyID, Params: otherKindParams{}})

	s.True(apperr.IsKind(err, apperr.KindValidation))
}

func (s *SessionServiceTestSuite) TestVotesAndFinishRound() {
	s.start()
	s.nextRound("alice")

	for _, vote := range []map[string]string{{"alice": "bob"}, {"bob": "alice"}, {"carol": "alice"}, {"carol": "alice"}} {
		_, err := s.service.MiddleRoundAction(s.ctx, &MiddleRoundActionInput{
			PartyID: s.testPartyID,
			Params:  impostor.VoteParams{Votes: vote},
		})
		s.Require().NoError(err)
	}

	out, err := s.service.FinishRound(s.ctx, &FinishRoundInput{PartyID: s.testPartyID, Params: impostor.FinishRoundParams{}})
	s.Require().NoError(err)

	res := out.Result.(impostor.FinishRoundResult)
	s.Equal("alice", res.AccusedID)
	s.False(res.ImpostorWins)
	s.Equal(map[string]int{"alice": 2, "bob": 1}, res.Tally)

	state, err := s.service.GetGameState(s.ctx, &GetGameStateInput{PartyID: s.testPartyID, UserID: "bob"})
	s.Require().NoError(err)
	s.True(state.RoundEnded)
	s.Equal(impostor.Score{CrewWins: 1}, state.Custom.(*impostor.View).Score)
}

func (s *SessionServiceTestSuite) TestFinishMatch() {
	s.start()
	s.nextRound("alice")

	_, err := s.service.FinishMatch(s.ctx, &FinishMatchInput{PartyID: s.testPartyID})
	s.True(apperr.IsKind(err, apperr.KindInvalidState))

	_, err = s.service.FinishRound(s.ctx, &FinishRoundInput{PartyID: s.testPartyID, Params: impostor.FinishRoundParams{}})
	s.Require().NoError(err)

	finished := s.activeParty()
	finished.Status = models.PartyStatusFinished
	s.mockParties.EXPECT().UpdateStatus(gomock.Any(), &partySvc.UpdateStatusInput{
		PartyID:        s.testPartyID,
		Status:         models.PartyStatusFinished,
		ExpectedStatus: models.PartyStatusActive,
	}).Return(&partySvc.UpdateStatusOutput{Party: finished}, nil)

	out, err := s.service.FinishMatch(s.ctx, &FinishMatchInput{PartyID: s.testPartyID})
	s.Require().NoError(err)

	s.Equal(models.PartyStatusFinished, out.Party.Status)
	final := out.View("carol")
	s.True(final.IsFinished)
	s.Equal(impostor.Score{ImpostorWins: 1}, final.Custom.(*impostor.View).Score)

	state, err := s.service.GetGameState(s.ctx, &GetGameStateInput{PartyID: s.testPartyID, UserID: "carol"})
	s.NoError(err)
	s.Nil(state)
}

func (s *SessionServiceTestSuite) TestAbandon() {
	s.start()

	s.Require().NoError(s.service.Abandon(s.ctx, &AbandonInput{PartyID: s.testPartyID}))

	state, err := s.service.GetGameState(s.ctx, &GetGameStateInput{PartyID: s.testPartyID})
	s.NoError(err)
	s.Nil(state)
}

func (s *SessionServiceTestSuite) TestStorageFailureLeavesStateUntouched() {
	mockStorage := storageMocks.NewMockStorage(s.mockCtrl)
	svc, err := New(&Config{Parties: s.mockParties, Storage: mockStorage, Registry: s.registry})
	s.Require().NoError(err)

	s.start()
	game, err := s.storage.Get(s.ctx, &gamestate.GetInput{PartyID: s.testPartyID})
	s.Require().NoError(err)

	mockStorage.EXPECT().Get(gomock.Any(), &gamestate.GetInput{PartyID: s.testPartyID}).Return(game, nil)
	mockStorage.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err = svc.NextRound(s.ctx, &NextRoundInput{
		PartyID: s.testPartyID,
		Params:  impostor.NextRoundParams{UserID: "alice"},
	})

	s.True(apperr.IsKind(err, apperr.KindExternalService))
	stored, err := s.storage.Get(s.ctx, &gamestate.GetInput{PartyID: s.testPartyID})
	s.Require().NoError(err)
	s.Equal(0, stored.CurrentRound())
}

type otherKindParams struct{}

func (otherKindParams) GameKind() models.GameKind { return "OTHER" }

// slowStorage delays reads so racing writers overlap without a lock
type slowStorage struct {
	gamestate.Storage
	delay time.Duration
}

func (s *slowStorage) Get(ctx context.Context, input *gamestate.GetInput) (games.Game, error) {
	time.Sleep(s.delay)
	return s.Storage.Get(ctx, input)
}

func (s *SessionServiceTestSuite) TestConcurrentNextRoundAdvancesOnce() {
	s.start()
	svc, err := New(&Config{
		Parties:  s.mockParties,
		Storage:  &slowStorage{Storage: s.storage, delay: 20 * time.Millisecond},
		Registry: s.registry,
	})
	s.Require().NoError(err)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.NextRound(s.ctx, &NextRoundInput{
				PartyID: s.testPartyID,
				Params:  impostor.NextRoundParams{UserID: "alice"},
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.True(apperr.IsKind(err, apperr.KindInvalidState), err.Error())
	}
	s.Equal(1, succeeded)

	game, err := s.storage.Get(s.ctx, &gamestate.GetInput{PartyID: s.testPartyID})
	s.Require().NoError(err)
	s.Equal(1, game.CurrentRound())
}
