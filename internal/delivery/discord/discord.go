// Package discord delivers notifications as Discord direct messages.
package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/partyline/internal/delivery"
	"github.com/KirkDiggler/partyline/internal/models"
)

var ErrNilSession = errors.New("discord session cannot be nil")

// Session is the part of *discordgo.Session the provider uses
type Session interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Config struct {
	Session Session
}

// Provider opens a DM channel with the user's Discord id and posts an embed
type Provider struct {
	session Session
}

func New(cfg *Config) (*Provider, error) {
	if cfg == nil || cfg.Session == nil {
		return nil, ErrNilSession
	}
	return &Provider{session: cfg.Session}, nil
}

func (p *Provider) Channel() models.DeliveryChannel {
	return models.DeliveryChannelDiscord
}

func (p *Provider) Deliver(ctx context.Context, input *delivery.DeliverInput) error {
	if input == nil || input.User == nil || input.Notification == nil {
		return delivery.ErrNilNotification
	}
	if input.User.ContactHandle == "" {
		return delivery.ErrNoChannel
	}

	channel, err := p.session.UserChannelCreate(input.User.ContactHandle, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	_, err = p.session.ChannelMessageSendEmbed(channel.ID, Embed(input.Notification), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}
	return nil
}

// Embed renders a notification, colored by action
func Embed(n *models.Notification) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       n.Title,
		Description: n.Body,
		Color:       color(n.Action),
	}
}

func color(action models.Action) int {
	switch action {
	case models.ActionError:
		return 0xff0000 // Red
	case models.ActionNextRound, models.ActionStartMatch:
		return 0x5865f2 // Blurple
	case models.ActionFinishRound, models.ActionFinishMatch:
		return 0xffa500 // Orange
	default:
		return 0x00ff00 // Green
	}
}
