package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/KirkDiggler/partyline/internal/apperr"
	"github.com/KirkDiggler/partyline/internal/handlers/command"
	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/services/coordinator"
)

// WebhookRequest is a command posted by an external chat bridge
type WebhookRequest struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Language    string `json:"language"`

	// Handle is where replies for this user should be sent by the bridge
	Handle string `json:"handle"`

	Text string `json:"text"`
}

type webhookResponse struct {
	Action models.Action `json:"action"`
}

// handleWebhook runs one command synchronously and reports the outcome in
// the response as well as through the user's notifications.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if !secretMatches(r.Header.Get(WebhookSecretHeader), s.webhookSecret) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, apperr.Validation("userId is required"))
		return
	}

	cmd, err := command.Parse(req.Text)
	if err != nil {
		writeError(w, apperr.Validation("text is required"))
		return
	}

	handle := req.Handle
	if handle == "" {
		handle = req.UserID
	}
	err = s.coordinator.RegisterUser(r.Context(), &coordinator.RegisterUserInput{User: &models.User{
		ID:            req.UserID,
		Username:      req.Username,
		DisplayName:   req.DisplayName,
		Channel:       models.DeliveryChannelWebhook,
		ContactHandle: handle,
		Language:      req.Language,
	}})
	if err != nil {
		s.log.Error("failed to register user", "user_id", req.UserID, "error", err)
		writeError(w, err)
		return
	}

	out, err := s.coordinator.Dispatch(r.Context(), &coordinator.DispatchInput{
		UserID: req.UserID,
		Action: cmd.Action,
		Args:   cmd.Args,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, webhookResponse{Action: out.Action})
}
