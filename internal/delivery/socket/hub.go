// Package socket delivers notifications to live websocket connections and
// forwards inbound text frames as commands.
package socket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/partyline/internal/delivery"
	"github.com/KirkDiggler/partyline/internal/logger"
	"github.com/KirkDiggler/partyline/internal/models"
)

// MessageFunc handles one inbound text frame from a user
type MessageFunc func(ctx context.Context, userID, text string)

type Config struct {
	Logger *slog.Logger

	// SendBuffer is the per-connection outbound queue size
	SendBuffer int
}

// Hub tracks the open connections of every user
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
	buffer  int
	log     *slog.Logger
}

// NewHub creates an empty hub
func NewHub(cfg *Config) *Hub {
	h := &Hub{
		clients: make(map[string]map[*client]struct{}),
		buffer:  64,
		log:     logger.Discard(),
	}
	if cfg != nil {
		if cfg.SendBuffer > 0 {
			h.buffer = cfg.SendBuffer
		}
		h.log = logger.OrDiscard(cfg.Logger)
	}
	return h
}

// Channel implements delivery.Provider
func (h *Hub) Channel() models.DeliveryChannel {
	return models.DeliveryChannelSocket
}

// Deliver queues the notification on every connection of the user
func (h *Hub) Deliver(ctx context.Context, input *delivery.DeliverInput) error {
	if input == nil || input.User == nil || input.Notification == nil {
		return delivery.ErrNilNotification
	}

	payload, err := json.Marshal(input.Notification)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := h.clients[input.User.ID]
	if len(conns) == 0 {
		return delivery.ErrNoChannel
	}

	queued := 0
	for c := range conns {
		select {
		case c.send <- payload:
			queued++
		case <-ctx.Done():
			return ctx.Err()
		default:
			h.log.Warn("socket send buffer full, dropping notification", "user_id", input.User.ID)
		}
	}
	if queued == 0 {
		return fmt.Errorf("all connections of %s are saturated", input.User.ID)
	}
	return nil
}

// Serve runs the pumps of a freshly upgraded connection and blocks until it closes
func (h *Hub) Serve(ctx context.Context, userID string, conn *websocket.Conn, onMessage MessageFunc) {
	c := &client{
		hub:       h,
		userID:    userID,
		conn:      conn,
		send:      make(chan []byte, h.buffer),
		onMessage: onMessage,
	}
	h.register(c)
	h.log.Info("socket connected", "user_id", userID)

	go c.writePump()
	c.readPump(ctx)

	h.unregister(c)
	h.log.Info("socket disconnected", "user_id", userID)
}

// Connected reports how many connections a user has open
func (h *Hub) Connected(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[c.userID]
	if !ok {
		conns = make(map[*client]struct{})
		h.clients[c.userID] = conns
	}
	conns[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.clients[c.userID]
	if _, ok := conns[c]; !ok {
		return
	}
	delete(conns, c)
	close(c.send)
	if len(conns) == 0 {
		delete(h.clients, c.userID)
	}
}
