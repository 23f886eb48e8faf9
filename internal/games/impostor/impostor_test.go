package impostor

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/stretchr/testify/suite"
)

// queuePicker returns queued indexes in order, then zero
type queuePicker struct {
	next []int
}

func (p *queuePicker) Intn(n int) int {
	if len(p.next) == 0 {
		return 0
	}
	v := p.next[0]
	p.next = p.next[1:]
	return v % n
}

type fakeResolver map[string]string

func (r fakeResolver) ResolveUserID(_ context.Context, ref string) (string, error) {
	id, ok := r[ref]
	if !ok {
		return "", apperr.NotFound("no player named %s", ref)
	}
	return id, nil
}

type ImpostorGameTestSuite struct {
	suite.Suite
	picker  *queuePicker
	words   *WordPool
	game    *Game
	players []games.Player
}

func (s *ImpostorGameTestSuite) SetupTest() {
	s.picker = &queuePicker{}
	s.words = NewWordPool(map[string]map[string][]string{
		"en": {
			"places": {"Beach", "Library"},
			"food":   {"Pizza"},
		},
		"es": {
			"lugares": {"Playa"},
		},
	})

	g, err := New(&Config{Words: s.words, Picker: s.picker})
	s.Require().NoError(err)
	s.game = g

	s.players = []games.Player{
		{UserID: "alice", IsManager: true},
		{UserID: "bob"},
		{UserID: "carol"},
	}
}

func TestImpostorGameTestSuite(t *testing.T) {
	suite.Run(t, new(ImpostorGameTestSuite))
}

func (s *ImpostorGameTestSuite) startAndAdvance(impostorIndex int) {
	s.Require().NoError(s.game.Start(s.players))
	// word pick first, then impostor pick
	s.picker.next = []int{0, impostorIndex}
	_, err := s.game.AdvanceRound(NextRoundParams{UserID: "alice", Category: "places", Language: "en"})
	s.Require().NoError(err)
}

func (s *ImpostorGameTestSuite) TestNew_RequiresPicker() {
	_, err := New(&Config{})
	s.Error(err)

	_, err = New(nil)
	s.Error(err)
}

func (s *ImpostorGameTestSuite) TestStart_TooFewPlayers() {
	err := s.game.Start(s.players[:2])

	s.True(apperr.IsKind(err, apperr.KindValidation))
}

func (s *ImpostorGameTestSuite) TestStart_InitialState() {
	s.Require().NoError(s.game.Start(s.players))

	s.Equal(0, s.game.CurrentRound())
	s.True(s.game.RoundEnded())
	s.False(s.game.IsFinished())
	s.Equal(s.players, s.game.Players())
}

func (s *ImpostorGameTestSuite) TestAdvanceRound_ImpostorGetsWord() {
	s.Require().NoError(s.game.Start(s.players))
	s.picker.next = []int{1, 0}

	result, err := s.game.AdvanceRound(NextRoundParams{UserID: "alice", Category: "places", Language: "en"})

	s.Require().NoError(err)
	res := result.(NextRoundResult)
	s.Equal(1, res.Round)
	s.True(res.IsImpostor)
	s.Equal("Library", res.Word)
	s.Equal("alice", s.game.ImpostorID())
	s.False(s.game.RoundEnded())
}

func (s *ImpostorGameTestSuite) TestAdvanceRound_OthersGetSentinel() {
	s.Require().NoError(s.game.Start(s.players))
	s.picker.next = []int{0, 2}

	result, err := s.game.AdvanceRound(NextRoundParams{UserID: "alice", Category: "places", Language: "en"})

	s.Require().NoError(err)
	res := result.(NextRoundResult)
	s.False(res.IsImpostor)
	s.Equal(NotTheWord, res.Word)
	s.Equal("carol", s.game.ImpostorID())
}

func (s *ImpostorGameTestSuite) TestAdvanceRound_RejectedWhileRoundActive() {
	s.startAndAdvance(0)

	_, err := s.game.AdvanceRound(NextRoundParams{UserID: "alice", Language: "en"})

	s.Require().Error(err)
	s.True(apperr.IsKind(err, apperr.KindInvalidState))
	appErr, ok := apperr.As(err)
	s.Require().True(ok)
	s.Equal(string(models.ActionNextRound), appErr.Metadata["action"])
	s.Equal("false", appErr.Metadata["roundEnded"])
	s.Equal(1, s.game.CurrentRound())
}

func (s *ImpostorGameTestSuite) TestAdvanceRound_UnknownCategory() {
	s.Require().NoError(s.game.Start(s.players))

	_, err := s.game.AdvanceRound(NextRoundParams{UserID: "alice", Category: "planets", Language: "en"})

	s.True(apperr.IsKind(err, apperr.KindValidation))
	s.True(s.game.RoundEnded())
	s.Equal(0, s.game.CurrentRound())
}

func (s *ImpostorGameTestSuite) TestAdvanceRound_WordsDoNotRepeatUntilExhausted() {
	s.Require().NoError(s.game.Start(s.players))

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		s.picker.next = []int{0, 0}
		_, err := s.game.AdvanceRound(NextRoundParams{UserID: "bob", Category: "places", Language: "en"})
		s.Require().NoError(err)
		seen[s.game.state.CurrentWord] = true

		_, err = s.game.ResolveRound(FinishRoundParams{})
		s.Require().NoError(err)
	}
	s.Len(seen, 2)

	// pool exhausted, starts over
	s.picker.next = []int{1, 0}
	_, err := s.game.AdvanceRound(NextRoundParams{UserID: "bob", Category: "places", Language: "en"})
	s.Require().NoError(err)
	s.Equal("Library", s.game.state.CurrentWord)
	s.Equal([]string{"Library"}, s.game.state.CustomState.UsedWords)
}

func (s *ImpostorGameTestSuite) TestAdvanceRound_UsesPartyLanguage() {
	s.Require().NoError(s.game.Start(s.players))
	s.picker.next = []int{0, 0}

	result, err := s.game.AdvanceRound(NextRoundParams{UserID: "alice", Language: "es-MX"})

	s.Require().NoError(err)
	s.Equal("Playa", result.(NextRoundResult).Word)
}

func (s *ImpostorGameTestSuite) TestAdvanceRound_RejectsForeignParams() {
	s.Require().NoError(s.game.Start(s.players))

	_, err := s.game.AdvanceRound(VoteParams{})

	s.True(apperr.IsKind(err, apperr.KindValidation))
}

func (s *ImpostorGameTestSuite) TestVote_OutsideRound() {
	s.Require().NoError(s.game.Start(s.players))

	_, err := s.game.ApplyMidRoundAction(VoteParams{Votes: map[string]string{"alice": "bob"}})

	s.True(apperr.IsKind(err, apperr.KindInvalidState))
}

func (s *ImpostorGameTestSuite) TestVote_IsIdempotentPerVoter() {
	s.startAndAdvance(1)

	for i := 0; i < 2; i++ {
		_, err := s.game.ApplyMidRoundAction(VoteParams{Votes: map[string]string{"alice": "bob"}})
		s.Require().NoError(err)
	}
	result, err := s.game.ApplyMidRoundAction(VoteParams{Votes: map[string]string{"carol": "bob"}})
	s.Require().NoError(err)

	s.Equal(VoteResult{VotesCast: 2, PlayersTotal: 3}, result)
	s.Equal(map[string]string{"alice": "bob", "carol": "bob"}, s.game.state.CustomState.CurrentRoundState.Votes)
}

func (s *ImpostorGameTestSuite) TestVote_LatestVoteWins() {
	s.startAndAdvance(1)

	_, err := s.game.ApplyMidRoundAction(VoteParams{Votes: map[string]string{"alice": "bob"}})
	s.Require().NoError(err)
	_, err = s.game.ApplyMidRoundAction(VoteParams{Votes: map[string]string{"alice": "carol"}})
	s.Require().NoError(err)

	s.Equal("carol", s.game.state.CustomState.CurrentRoundState.Votes["alice"])
}

func (s *ImpostorGameTestSuite) TestVote_RejectsNonPlayers() {
	s.startAndAdvance(1)

	_, err := s.game.ApplyMidRoundAction(VoteParams{Votes: map[string]string{"mallory": "bob"}})
	s.True(apperr.IsKind(err, apperr.KindValidation))

	_, err = s.game.ApplyMidRoundAction(VoteParams{Votes: map[string]string{"alice": "mallory"}})
	s.True(apperr.IsKind(err, apperr.KindValidation))

	_, err = s.game.ApplyMidRoundAction(VoteParams{Votes: map[string]string{"alice": "alice"}})
	s.True(apperr.IsKind(err, apperr.KindValidation))

	s.Empty(s.game.state.CustomState.CurrentRoundState.Votes)
}

func (s *ImpostorGameTestSuite) TestResolveRound_PluralityAccused() {
	// bob is the impostor
	s.startAndAdvance(1)
	_, err := s.game.ApplyMidRoundAction(VoteParams{Votes: map[string]string{
		"alice": "bob",
		"bob":   "carol",
		"carol": "bob",
	}})
	s.Require().NoError(err)

	result, err := s.game.ResolveRound(FinishRoundParams{})

	s.Require().NoError(err)
	res := result.(FinishRoundResult)
	s.True(res.RoundFinished)
	s.Equal("bob", res.AccusedID)
	s.False(res.ImpostorWins)
	s.Equal(map[string]int{"bob": 2, "carol": 1}, res.Tally)
	s.True(s.game.RoundEnded())
	s.Equal([]WinRecord{{RoundNumber: 1, WasImpostor: false}}, s.game.state.CustomState.WinHistory)
}

func (s *ImpostorGameTestSuite) TestResolveRound_TieGoesToFirstInJoinOrder() {
	// carol is the impostor
	s.startAndAdvance(2)
	_, err := s.game.ApplyMidRoundAction(VoteParams{Votes: map[string]string{
		"alice": "carol",
		"carol": "bob",
	}})
	s.Require().NoError(err)

	result, err := s.game.ResolveRound(FinishRoundParams{})

	s.Require().NoError(err)
	res := result.(FinishRoundResult)
	s.Equal("bob", res.AccusedID)
	s.True(res.ImpostorWins)
}

func (s *ImpostorGameTestSuite) TestResolveRound_NoVotesImpostorWins() {
	s.startAndAdvance(0)

	result, err := s.game.ResolveRound(FinishRoundParams{})

	s.Require().NoError(err)
	res := result.(FinishRoundResult)
	s.Empty(res.AccusedID)
	s.True(res.ImpostorWins)
}

func (s *ImpostorGameTestSuite) TestResolveRound_OnlyOncePerRound() {
	s.startAndAdvance(0)
	_, err := s.game.ResolveRound(FinishRoundParams{})
	s.Require().NoError(err)

	_, err = s.game.ResolveRound(FinishRoundParams{})

	s.True(apperr.IsKind(err, apperr.KindInvalidState))
	s.Len(s.game.state.CustomState.WinHistory, 1)
}

func (s *ImpostorGameTestSuite) TestFinishMatch() {
	s.startAndAdvance(0)

	err := s.game.FinishMatch()
	s.True(apperr.IsKind(err, apperr.KindInvalidState))

	_, err = s.game.ResolveRound(FinishRoundParams{})
	s.Require().NoError(err)

	s.Require().NoError(s.game.FinishMatch())
	s.True(s.game.IsFinished())

	_, err = s.game.AdvanceRound(NextRoundParams{UserID: "alice"})
	s.True(apperr.IsKind(err, apperr.KindInvalidState))
}

func (s *ImpostorGameTestSuite) TestStateFor_RedactsWord() {
	// bob is the impostor
	s.startAndAdvance(1)

	impostorView := s.game.StateFor("bob").Custom.(*View)
	s.True(impostorView.IsImpostor)
	s.Equal("Beach", impostorView.Word)

	for _, viewer := range []string{"alice", "carol", ""} {
		view := s.game.StateFor(viewer).Custom.(*View)
		s.False(view.IsImpostor, viewer)
		s.Equal(HiddenWord, view.Word, viewer)
	}
}

func (s *ImpostorGameTestSuite) TestStateFor_IncludesScore() {
	s.startAndAdvance(0)
	_, err := s.game.ResolveRound(FinishRoundParams{})
	s.Require().NoError(err)

	state := s.game.StateFor("carol")

	s.Equal(models.GameKindImpostor, state.Kind)
	s.Equal(1, state.CurrentRound)
	s.True(state.RoundEnded)
	s.Equal(Score{ImpostorWins: 1}, state.Custom.(*View).Score)
}

func (s *ImpostorGameTestSuite) TestMarshalAndRestore() {
	s.startAndAdvance(2)
	_, err := s.game.ApplyMidRoundAction(VoteParams{Votes: map[string]string{"alice": "carol"}})
	s.Require().NoError(err)

	data, err := s.game.MarshalState()
	s.Require().NoError(err)
	s.Contains(string(data), `"currentImpostorId":"carol"`)

	restored, err := Restore(&Config{Words: s.words, Picker: s.picker}, data)
	s.Require().NoError(err)

	s.Equal(s.game.state, restored.state)
	s.Equal("carol", restored.ImpostorID())
	s.False(restored.RoundEnded())
}

func (s *ImpostorGameTestSuite) TestDefinition() {
	def, err := Definition(&Config{Words: s.words, Picker: s.picker})
	s.Require().NoError(err)

	s.Equal(models.GameKindImpostor, def.Kind)
	s.Equal(MinPlayers, def.MinPlayers)
	s.Equal(models.GameKindImpostor, def.New().Kind())

	registry, err := games.NewRegistry(def)
	s.Require().NoError(err)
	s.Equal([]models.GameKind{models.GameKindImpostor}, registry.Kinds())

	err = registry.Register(def)
	s.Error(err)
}

func (s *ImpostorGameTestSuite) TestSummarize() {
	s.Equal(&games.Outcome{Progress: 2, Total: 3}, Summarize(VoteResult{VotesCast: 2, PlayersTotal: 3}))

	s.Equal(&games.Outcome{TargetID: "carol", TargetVotes: 2, Winner: TeamCrew}, Summarize(FinishRoundResult{
		RoundFinished: true,
		AccusedID:     "carol",
		Tally:         map[string]int{"carol": 2, "bob": 1},
	}))

	s.Equal(&games.Outcome{Winner: TeamImpostor}, Summarize(FinishRoundResult{RoundFinished: true, ImpostorWins: true}))

	s.Nil(Summarize(NextRoundResult{}))
}

func (s *ImpostorGameTestSuite) TestDecode() {
	resolver := fakeResolver{"bob": "user-bob"}

	params, err := Decode(context.Background(), &games.DecodeInput{
		Phase:    games.PhaseNextRound,
		ActorID:  "user-alice",
		Args:     []string{"Food"},
		Language: "pt",
	})
	s.Require().NoError(err)
	s.Equal(NextRoundParams{UserID: "user-alice", Category: "food", Language: "pt"}, params)

	params, err = Decode(context.Background(), &games.DecodeInput{
		Phase:    games.PhaseMidRound,
		ActorID:  "user-alice",
		Args:     []string{"@bob"},
		Resolver: resolver,
	})
	s.Require().NoError(err)
	s.Equal(VoteParams{Votes: map[string]string{"user-alice": "user-bob"}}, params)

	_, err = Decode(context.Background(), &games.DecodeInput{
		Phase:    games.PhaseMidRound,
		ActorID:  "user-alice",
		Args:     []string{"zed"},
		Resolver: resolver,
	})
	s.True(apperr.IsKind(err, apperr.KindNotFound))

	_, err = Decode(context.Background(), &games.DecodeInput{Phase: games.PhaseMidRound, ActorID: "user-alice"})
	s.True(apperr.IsKind(err, apperr.KindValidation))

	params, err = Decode(context.Background(), &games.DecodeInput{Phase: games.PhaseFinishRound})
	s.Require().NoError(err)
	s.Equal(FinishRoundParams{}, params)

	_, err = Decode(context.Background(), &games.DecodeInput{Phase: "dance"})
	var appErr *apperr.Error
	s.True(errors.As(err, &appErr))
}
