package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/games/impostor"
	"github.com/KirkDiggler/partyline/internal/models"
)

var (
	ErrNilInput   = errors.New("input cannot be nil")
	ErrEmptyEvent = errors.New("event does not match action")
)

// Config holds the options of the messaging service
type Config struct {
	// DefaultLanguage is used when neither party nor user has one
	DefaultLanguage string
}

// service implements the Service interface
type service struct {
	catalog         catalog.Catalog
	matcher         language.Matcher
	defaultLanguage language.Tag
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	cat, err := newCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to build message catalog: %w", err)
	}

	s := &service{
		catalog:         cat,
		matcher:         language.NewMatcher(supported),
		defaultLanguage: english,
	}
	if cfg != nil && cfg.DefaultLanguage != "" {
		s.defaultLanguage = s.match(cfg.DefaultLanguage)
	}
	return s, nil
}

// Language returns the supported language closest to tag
func (s *service) Language(tag string) string {
	return s.match(tag).String()
}

func (s *service) match(tag string) language.Tag {
	if tag == "" {
		return s.defaultLanguage
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return s.defaultLanguage
	}
	_, idx, confidence := s.matcher.Match(parsed)
	if confidence == language.No {
		return s.defaultLanguage
	}
	return supported[idx]
}

func (s *service) printer(tag string) *message.Printer {
	return message.NewPrinter(s.match(tag), message.Catalog(s.catalog))
}

// Compose builds the notification one recipient gets for an action
func (s *service) Compose(ctx context.Context, input *ComposeInput) (*ComposeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	p := s.printer(input.Language)
	n := &models.Notification{Action: input.Action}
	if input.View != nil {
		n.GameState = input.View
	}

	var err error
	switch input.Action {
	case models.ActionCreateParty:
		err = withParty(input.Event, func(e *PartyEvent) {
			n.Title = p.Sprintf(titlePartyCreated)
			n.Body = p.Sprintf(bodyPartyCreated, e.ActorName, e.Party.Name, e.Party.ID)
		})
	case models.ActionJoinParty:
		err = withParty(input.Event, func(e *PartyEvent) {
			n.Title = p.Sprintf(titlePlayerJoined)
			n.Body = p.Sprintf(bodyPlayerJoined, e.ActorName, e.Party.Name, strings.Join(e.PlayerNames, ", "))
		})
	case models.ActionLeaveParty:
		err = withParty(input.Event, func(e *PartyEvent) {
			n.Title = p.Sprintf(titlePlayerLeft)
			n.Body = p.Sprintf(bodyPlayerLeft, e.ActorName, e.Party.Name)
			if e.TargetName != "" {
				n.Body += " " + p.Sprintf(bodyHandedOver, e.TargetName)
			}
		})
	case models.ActionPromote:
		err = withParty(input.Event, func(e *PartyEvent) {
			n.Title = p.Sprintf(titleNewManager)
			n.Body = p.Sprintf(bodyNewManager, e.TargetName, e.Party.Name)
		})
	case models.ActionPartyDissolved:
		err = withParty(input.Event, func(e *PartyEvent) {
			n.Title = p.Sprintf(titlePartyClosed)
			n.Body = p.Sprintf(bodyPartyClosed, e.Party.Name)
		})
	case models.ActionMyParty:
		n.Title = p.Sprintf(titleYourParty)
		e, ok := input.Event.(*PartyEvent)
		if !ok || e == nil || e.Party == nil {
			n.Body = p.Sprintf(bodyNoParty)
			break
		}
		n.Body = p.Sprintf(bodyYourParty, e.Party.Name, e.Party.ID,
			strings.ToLower(string(e.Party.Status)), strings.Join(e.PlayerNames, ", "))
	case models.ActionListParties:
		n.Title = p.Sprintf(titleOpenParties)
		e, _ := input.Event.(*PartyListEvent)
		n.Body = s.partyList(p, e)
	case models.ActionStartMatch:
		e, ok := input.Event.(*MatchEvent)
		if !ok || e == nil || e.Party == nil {
			err = ErrEmptyEvent
			break
		}
		n.Title = p.Sprintf(titleMatchStarted)
		n.Body = p.Sprintf(bodyMatchStarted, e.Party.Name, e.PlayerCount)
	case models.ActionNextRound:
		view := impostorView(input.View)
		if view == nil {
			err = ErrEmptyEvent
			break
		}
		n.Title = p.Sprintf(titleRound, input.View.CurrentRound)
		n.Body = roleLine(p, view)
	case models.ActionVote:
		e, ok := input.Event.(*VoteEvent)
		if !ok || e == nil {
			err = ErrEmptyEvent
			break
		}
		n.Title = p.Sprintf(titleVote)
		n.Body = p.Sprintf(bodyVote, e.VoterName, e.VotesCast, e.PlayersTotal)
	case models.ActionFinishRound:
		e, ok := input.Event.(*RoundResultEvent)
		if !ok || e == nil {
			err = ErrEmptyEvent
			break
		}
		n.Title = p.Sprintf(titleRoundResults, e.Round)
		n.Body = roundResult(p, e, impostorView(input.View))
	case models.ActionFinishMatch:
		e, ok := input.Event.(*MatchEvent)
		if !ok || e == nil || e.Party == nil {
			err = ErrEmptyEvent
			break
		}
		n.Title = p.Sprintf(titleMatchOver)
		round := 0
		if input.View != nil {
			round = input.View.CurrentRound
		}
		n.Body = p.Sprintf(bodyMatchOver, e.Party.Name, round)
		if view := impostorView(input.View); view != nil {
			n.Body += " " + p.Sprintf(bodyScore, view.Score.ImpostorWins, view.Score.CrewWins)
		}
	case models.ActionGameState:
		n.Title = p.Sprintf(titleGameStatus)
		n.Body = gameState(p, input.View)
	case models.ActionHelp:
		n.Title = p.Sprintf(titleCommands)
		n.Body = p.Sprintf(bodyHelp)
		if e, ok := input.Event.(*HelpEvent); ok && e != nil && len(e.Categories) > 0 {
			n.Body += "\n" + p.Sprintf(bodyCategories, strings.Join(e.Categories, ", "))
		}
	default:
		return nil, fmt.Errorf("unknown action %q", input.Action)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input.Action, err)
	}

	return &ComposeOutput{Notification: n}, nil
}

// ComposeError builds the notification for a failed command. Internal causes
// never reach the body.
func (s *service) ComposeError(ctx context.Context, input *ComposeErrorInput) (*ComposeOutput, error) {
	if input == nil || input.Err == nil {
		return nil, ErrNilInput
	}

	p := s.printer(input.Language)
	n := &models.Notification{Action: models.ActionError}

	appErr, ok := apperr.As(input.Err)
	if !ok || appErr.Kind == apperr.KindExternalService {
		n.Title = p.Sprintf(titleSomethingWrong)
		n.Body = p.Sprintf(bodyInternalFailed)
		return &ComposeOutput{Notification: n}, nil
	}

	switch appErr.Kind {
	case apperr.KindValidation:
		n.Title = p.Sprintf(titleInvalid)
	case apperr.KindNotFound:
		n.Title = p.Sprintf(titleNotFound)
	case apperr.KindConflict:
		n.Title = p.Sprintf(titleConflict)
	case apperr.KindAuthorization:
		n.Title = p.Sprintf(titleNotAllowed)
	case apperr.KindInvalidState:
		n.Title = p.Sprintf(titleNotNow)
	default:
		n.Title = p.Sprintf(titleSomethingWrong)
	}
	n.Body = appErr.UserMessage()

	return &ComposeOutput{Notification: n}, nil
}

func (s *service) partyList(p *message.Printer, e *PartyListEvent) string {
	if e == nil || len(e.Parties) == 0 {
		return p.Sprintf(bodyNoOpenParties)
	}
	lines := make([]string, 0, len(e.Parties))
	for _, party := range e.Parties {
		lines = append(lines, fmt.Sprintf(bodyPartyLine, party.ID, party.Name, strings.ToLower(string(party.GameKind))))
	}
	return strings.Join(lines, "\n")
}

func withParty(event any, fn func(e *PartyEvent)) error {
	e, ok := event.(*PartyEvent)
	if !ok || e == nil || e.Party == nil {
		return ErrEmptyEvent
	}
	fn(e)
	return nil
}

func impostorView(state *games.State) *impostor.View {
	if state == nil {
		return nil
	}
	view, _ := state.Custom.(*impostor.View)
	return view
}

func roleLine(p *message.Printer, view *impostor.View) string {
	if view.IsImpostor {
		return p.Sprintf(bodyImpostor, view.Word)
	}
	return p.Sprintf(bodyCrew)
}

func roundResult(p *message.Printer, e *RoundResultEvent, view *impostor.View) string {
	var b strings.Builder
	if e.AccusedName == "" {
		b.WriteString(p.Sprintf(bodyNobodyAccused))
	} else {
		b.WriteString(p.Sprintf(bodyAccused, e.AccusedName, e.AccusedVotes))
	}
	b.WriteString(" ")
	if e.Winner == impostor.TeamImpostor {
		b.WriteString(p.Sprintf(bodyImpostorWins))
	} else {
		b.WriteString(p.Sprintf(bodyCrewWins))
	}
	if view != nil {
		b.WriteString(" ")
		b.WriteString(p.Sprintf(bodyScore, view.Score.ImpostorWins, view.Score.CrewWins))
	}
	return b.String()
}

func gameState(p *message.Printer, state *games.State) string {
	view := impostorView(state)
	if view == nil {
		return p.Sprintf(bodyNotStarted)
	}
	if state.CurrentRound == 0 {
		return p.Sprintf(bodyNoRoundYet)
	}
	if !view.RoundEnded {
		return p.Sprintf(bodyRoundActive, state.CurrentRound, len(view.Votes), len(state.Players)) +
			"\n" + roleLine(p, view)
	}
	return p.Sprintf(bodyRoundWaiting, state.CurrentRound) + " " +
		p.Sprintf(bodyScore, view.Score.ImpostorWins, view.Score.CrewWins)
}
