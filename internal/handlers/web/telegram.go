package web

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/KirkDiggler/partyline/internal/handlers/command"
	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/services/coordinator"
)

// TelegramUserID namespaces Telegram ids so they never collide with other sources
func TelegramUserID(id int64) string {
	return "tg:" + strconv.FormatInt(id, 10)
}

// handleTelegram receives Bot API updates. Telegram retries anything but a
// 2xx, so command failures still answer 200; the user hears about them
// through the error notification.
func (s *Server) handleTelegram(w http.ResponseWriter, r *http.Request) {
	if !secretMatches(r.Header.Get(TelegramSecretHeader), s.telegramSecret) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.log.Warn("invalid telegram update", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil || msg.Text == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	user := &models.User{
		ID:            TelegramUserID(msg.From.ID),
		Username:      msg.From.UserName,
		DisplayName:   telegramName(msg.From),
		Channel:       models.DeliveryChannelTelegram,
		ContactHandle: strconv.FormatInt(msg.Chat.ID, 10),
		Language:      msg.From.LanguageCode,
	}
	s.dispatchText(r.Context(), user, msg.Text)
	w.WriteHeader(http.StatusOK)
}

func telegramName(u *tgbotapi.User) string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// dispatchText registers the sender and runs their command. Failures have
// already been reported to the user, so they are only logged here.
func (s *Server) dispatchText(ctx context.Context, user *models.User, text string) {
	if err := s.coordinator.RegisterUser(ctx, &coordinator.RegisterUserInput{User: user}); err != nil {
		s.log.Error("failed to register user", "user_id", user.ID, "channel", user.Channel, "error", err)
		return
	}

	s.dispatch(ctx, user.ID, text)
}

func (s *Server) dispatch(ctx context.Context, userID, text string) {
	cmd, err := command.Parse(text)
	if err != nil {
		return
	}

	out, err := s.coordinator.Dispatch(ctx, &coordinator.DispatchInput{
		UserID: userID,
		Action: cmd.Action,
		Args:   cmd.Args,
	})
	if err != nil {
		s.log.Info("command failed", "user_id", userID, "command", cmd.Action, "error", err)
		return
	}
	s.log.Debug("command handled", "user_id", userID, "action", out.Action)
}

func secretMatches(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
