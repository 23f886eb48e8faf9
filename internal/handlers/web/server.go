package web

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/partyline/internal/delivery/socket"
	"github.com/KirkDiggler/partyline/internal/logger"
	"github.com/KirkDiggler/partyline/internal/metrics"
	"github.com/KirkDiggler/partyline/internal/services/coordinator"
)

const (
	// TelegramSecretHeader carries the secret token registered with setWebhook
	TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

	// WebhookSecretHeader authenticates generic webhook callers
	WebhookSecretHeader = "X-Partyline-Secret"

	requestTimeout = 30 * time.Second
)

var ErrNilCoordinator = errors.New("coordinator cannot be nil")

// Config holds the dependencies of the HTTP command sources
type Config struct {
	Coordinator coordinator.Service

	// Hub serves /ws when set
	Hub *socket.Hub

	// Metrics serves /metrics when set
	Metrics *metrics.Metrics

	// TelegramSecret enables /telegram/webhook when set
	TelegramSecret string

	// WebhookSecret enables /webhook when set
	WebhookSecret string

	// SocketToken, when set, must be passed as ?token= on /ws
	SocketToken string

	Logger *slog.Logger
}

// Server exposes the bot over HTTP
type Server struct {
	coordinator    coordinator.Service
	hub            *socket.Hub
	metrics        *metrics.Metrics
	telegramSecret string
	webhookSecret  string
	socketToken    string
	upgrader       websocket.Upgrader
	log            *slog.Logger
}

func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Coordinator == nil {
		return nil, ErrNilCoordinator
	}

	return &Server{
		coordinator:    cfg.Coordinator,
		hub:            cfg.Hub,
		metrics:        cfg.Metrics,
		telegramSecret: cfg.TelegramSecret,
		webhookSecret:  cfg.WebhookSecret,
		socketToken:    cfg.SocketToken,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: logger.OrDiscard(cfg.Logger).With("component", "http"),
	}, nil
}

// Router builds the chi router with every enabled route
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		if s.telegramSecret != "" {
			r.Post("/telegram/webhook", s.handleTelegram)
		}
		if s.webhookSecret != "" {
			r.Post("/webhook", s.handleWebhook)
		}
	})

	// long lived, so no request timeout
	if s.hub != nil {
		r.Get("/ws", s.handleSocket)
	}

	return r
}
