// Package telegram delivers notifications as Telegram chat messages.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/KirkDiggler/partyline/internal/delivery"
	"github.com/KirkDiggler/partyline/internal/models"
)

var ErrNilBot = errors.New("telegram bot cannot be nil")

// Bot is the part of *tgbotapi.BotAPI the provider uses
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Config struct {
	Bot Bot
}

// Provider sends to the chat id stored as the user's contact handle
type Provider struct {
	bot Bot
}

func New(cfg *Config) (*Provider, error) {
	if cfg == nil || cfg.Bot == nil {
		return nil, ErrNilBot
	}
	return &Provider{bot: cfg.Bot}, nil
}

func (p *Provider) Channel() models.DeliveryChannel {
	return models.DeliveryChannelTelegram
}

func (p *Provider) Deliver(ctx context.Context, input *delivery.DeliverInput) error {
	if input == nil || input.User == nil || input.Notification == nil {
		return delivery.ErrNilNotification
	}

	chatID, err := strconv.ParseInt(input.User.ContactHandle, 10, 64)
	if err != nil {
		return delivery.ErrNoChannel
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, delivery.Text(input.Notification))
	if _, err := p.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
