package web

import (
	"context"
	"net/http"

	"github.com/KirkDiggler/partyline/internal/models"
	"github.com/KirkDiggler/partyline/internal/services/coordinator"
)

// handleSocket upgrades /ws?user=<id>&name=<display name>&lang=<tag>. Every
// text frame is a command from that user.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if s.socketToken != "" && !secretMatches(q.Get("token"), s.socketToken) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	userID := q.Get("user")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "user is required", Kind: "validation"})
		return
	}
	user := &models.User{
		ID:            userID,
		Username:      q.Get("username"),
		DisplayName:   q.Get("name"),
		Channel:       models.DeliveryChannelSocket,
		ContactHandle: userID,
		Language:      q.Get("lang"),
	}

	if err := s.coordinator.RegisterUser(r.Context(), &coordinator.RegisterUserInput{User: user}); err != nil {
		s.log.Error("failed to register user", "user_id", userID, "channel", user.Channel, "error", err)
		writeError(w, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	s.hub.Serve(r.Context(), userID, conn, func(ctx context.Context, userID, text string) {
		s.dispatch(ctx, userID, text)
	})
}
