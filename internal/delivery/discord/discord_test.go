package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/partyline/internal/delivery"
	"github.com/KirkDiggler/partyline/internal/models"
)

type fakeSession struct {
	dmFor    string
	embeds   map[string]*discordgo.MessageEmbed
	createFn func(string) (*discordgo.Channel, error)
}

func (f *fakeSession) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.createFn != nil {
		return f.createFn(recipientID)
	}
	f.dmFor = recipientID
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

func (f *fakeSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.embeds == nil {
		f.embeds = make(map[string]*discordgo.MessageEmbed)
	}
	f.embeds[channelID] = embed
	return &discordgo.Message{}, nil
}

func TestDeliver(t *testing.T) {
	session := &fakeSession{}
	p, err := New(&Config{Session: session})
	require.NoError(t, err)

	err = p.Deliver(context.Background(), &delivery.DeliverInput{
		User:         &models.User{ID: "discord:1", ContactHandle: "1"},
		Notification: &models.Notification{Title: "Round 2", Body: "You are not the impostor.", Action: models.ActionNextRound},
	})
	require.NoError(t, err)

	assert.Equal(t, "1", session.dmFor)
	embed := session.embeds["dm-1"]
	require.NotNil(t, embed)
	assert.Equal(t, "Round 2", embed.Title)
	assert.Equal(t, 0x5865f2, embed.Color)
}

func TestDeliver_NoHandle(t *testing.T) {
	p, err := New(&Config{Session: &fakeSession{}})
	require.NoError(t, err)

	err = p.Deliver(context.Background(), &delivery.DeliverInput{
		User:         &models.User{ID: "discord:1"},
		Notification: &models.Notification{Title: "x"},
	})
	assert.ErrorIs(t, err, delivery.ErrNoChannel)
}

func TestDeliver_ChannelCreateFails(t *testing.T) {
	p, err := New(&Config{Session: &fakeSession{createFn: func(string) (*discordgo.Channel, error) {
		return nil, errors.New("HTTP 403 Forbidden")
	}}})
	require.NoError(t, err)

	err = p.Deliver(context.Background(), &delivery.DeliverInput{
		User:         &models.User{ID: "discord:1", ContactHandle: "1"},
		Notification: &models.Notification{Title: "x"},
	})
	assert.ErrorContains(t, err, "failed to open DM channel")
}

func TestEmbed_ErrorIsRed(t *testing.T) {
	embed := Embed(&models.Notification{Title: "Not allowed", Action: models.ActionError})
	assert.Equal(t, 0xff0000, embed.Color)
}
