package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/partyline/internal/logger"
	"github.com/KirkDiggler/partyline/internal/services/coordinator"
)

// DefaultCommandTimeout bounds one slash command from acknowledgement to answer
const DefaultCommandTimeout = 10 * time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	log        *slog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is shared with Discord delivery
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	Coordinator coordinator.Service

	// CommandTimeout defaults to DefaultCommandTimeout
	CommandTimeout time.Duration

	Logger *slog.Logger
}

// NewSession builds an authenticated session without connecting
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsDirectMessages
	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.Coordinator == nil {
		return nil, errors.New("coordinator cannot be nil")
	}
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = DefaultCommandTimeout
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		log:        logger.OrDiscard(cfg.Logger).With("component", "discord"),
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewPartyCommand(b.config.Coordinator, b.log)); err != nil {
		return fmt.Errorf("failed to register party command: %w", err)
	}

	b.log.Info("discord bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.Warn("failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Without a guild id the
// command is global.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.Info("registered command", "command", cmd.GetName(), "command_id", createdCmd.ID, "guild_id", b.config.GuildID)
	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	h, ok := b.commands[name]
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.config.CommandTimeout)
	defer cancel()

	if err := h.Handle(ctx, s, i); err != nil {
		b.log.Error("error handling command", "command", name, "error", err)
	}
}
