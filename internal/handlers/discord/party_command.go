package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/handlers/command"
	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/services/coordinator"
)

const (
	partyCommandName = "party"
	commandOption    = "command"

	ackDone    = "Done. Updates arrive in your direct messages."
	ackUnknown = "I couldn't tell who you are."
	ackUsage   = "Try /party command: help"
)

// UserID namespaces Discord ids so they never collide with other sources
func UserID(discordID string) string {
	return "dc:" + discordID
}

// PartyCommand runs any text command through /party
type PartyCommand struct {
	BaseCommand
	coordinator coordinator.Service
	log         *slog.Logger
}

func NewPartyCommand(svc coordinator.Service, log *slog.Logger) *PartyCommand {
	return &PartyCommand{
		BaseCommand: BaseCommand{
			Name:        partyCommandName,
			Description: "Play a party game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        commandOption,
					Description: "create <name>, join <code>, start, next, vote <name>, help...",
					Required:    true,
				},
			},
		},
		coordinator: svc,
		log:         log,
	}
}

// Handle registers the caller, then runs their command
func (c *PartyCommand) Handle(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)
	if user == nil {
		return RespondWithEphemeralMessage(r, i, ackUnknown)
	}

	cmd, err := command.Parse(optionText(i.ApplicationCommandData().Options))
	if err != nil {
		return RespondWithEphemeralMessage(r, i, ackUsage)
	}

	if err := DeferEphemeral(r, i); err != nil {
		return err
	}

	if err := c.coordinator.RegisterUser(ctx, &coordinator.RegisterUserInput{User: user}); err != nil {
		c.log.Error("failed to register user", "user_id", user.ID, "error", err)
		return EditResponse(r, i, apperr.External("registration failed", err).UserMessage())
	}

	_, err = c.coordinator.Dispatch(ctx, &coordinator.DispatchInput{
		UserID: user.ID,
		Action: cmd.Action,
		Args:   cmd.Args,
	})
	if err != nil {
		c.log.Info("command failed", "user_id", user.ID, "command", cmd.Action, "error", err)
		return EditResponse(r, i, userMessage(err))
	}
	return EditResponse(r, i, ackDone)
}

func interactionUser(i *discordgo.InteractionCreate) *models.User {
	var u *discordgo.User
	var nick string
	switch {
	case i.Member != nil && i.Member.User != nil:
		u = i.Member.User
		nick = i.Member.Nick
	case i.User != nil:
		u = i.User
	default:
		return nil
	}

	name := nick
	if name == "" {
		name = u.GlobalName
	}
	if name == "" {
		name = u.Username
	}

	return &models.User{
		ID:            UserID(u.ID),
		Username:      u.Username,
		DisplayName:   name,
		Channel:       models.DeliveryChannelDiscord,
		ContactHandle: u.ID,
		Language:      string(i.Locale),
	}
}

func optionText(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range options {
		if opt.Name == commandOption {
			return opt.StringValue()
		}
	}
	return ""
}

func userMessage(err error) string {
	if appErr, ok := apperr.As(err); ok {
		return appErr.UserMessage()
	}
	return apperr.External("unexpected failure", err).UserMessage()
}
