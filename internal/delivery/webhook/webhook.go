// Package webhook posts notifications to the callback URL of a generic chat bridge.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KirkDiggler/partyline/internal/delivery"
	"github.com/KirkDiggler/partyline/internal/models"
)

var ErrEmptyURL = errors.New("webhook callback URL cannot be empty")

type Config struct {
	// CallbackURL receives one POST per notification
	CallbackURL string

	// Secret is sent as X-Partyline-Secret when set
	Secret string

	Client *http.Client
}

// Provider posts notifications for users on the webhook channel
type Provider struct {
	url    string
	secret string
	client *http.Client
}

// Payload is the body posted to the callback URL
type Payload struct {
	UserID        string               `json:"userId"`
	ContactHandle string               `json:"contactHandle"`
	Text          string               `json:"text"`
	Notification  *models.Notification `json:"notification"`
}

func New(cfg *Config) (*Provider, error) {
	if cfg == nil || cfg.CallbackURL == "" {
		return nil, ErrEmptyURL
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Provider{url: cfg.CallbackURL, secret: cfg.Secret, client: client}, nil
}

func (p *Provider) Channel() models.DeliveryChannel {
	return models.DeliveryChannelWebhook
}

func (p *Provider) Deliver(ctx context.Context, input *delivery.DeliverInput) error {
	if input == nil || input.User == nil || input.Notification == nil {
		return delivery.ErrNilNotification
	}
	if input.User.ContactHandle == "" {
		return delivery.ErrNoChannel
	}

	body, err := json.Marshal(&Payload{
		UserID:        input.User.ID,
		ContactHandle: input.User.ContactHandle,
		Text:          delivery.Text(input.Notification),
		Notification:  input.Notification,
	})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.secret != "" {
		req.Header.Set("X-Partyline-Secret", p.secret)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook callback returned %s", resp.Status)
	}
	return nil
}
