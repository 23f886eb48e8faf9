package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/partyline/internal/common/clock"
	"github.com/KirkDiggler/partyline/internal/common/keylock"
	"github.com/KirkDiggler/partyline/internal/common/uuid"
	"github.com/KirkDiggler/partyline/internal/config"
	"github.com/KirkDiggler/partyline/internal/delivery"
	discordDelivery "github.com/KirkDiggler/partyline/internal/delivery/discord"
	"github.com/KirkDiggler/partyline/internal/delivery/socket"
	telegramDelivery "github.com/KirkDiggler/partyline/internal/delivery/telegram"
	webhookDelivery "github.com/KirkDiggler/partyline/internal/delivery/webhook"
	"github.com/KirkDiggler/partyline/internal/games"
	"github.com/KirkDiggler/partyline/internal/games/impostor"
	"github.com/KirkDiggler/partyline/internal/handlers/discord"
	"github.com/KirkDiggler/partyline/internal/handlers/web"
	"github.com/KirkDiggler/partyline/internal/logger"
	"github.com/KirkDiggler/partyline/internal/metrics"
	"github.com/KirkDiggler/partyline/internal/random"
	"github.com/KirkDiggler/partyline/internal/repositories/gamestate"
	partyRepo "github.com/KirkDiggler/partyline/internal/repositories/party"
	userRepo "github.com/KirkDiggler/partyline/internal/repositories/user"
	"github.com/KirkDiggler/partyline/internal/services/coordinator"
	"github.com/KirkDiggler/partyline/internal/services/messaging"
	"github.com/KirkDiggler/partyline/internal/services/notification"
	partySvc "github.com/KirkDiggler/partyline/internal/services/party"
	"github.com/KirkDiggler/partyline/internal/services/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.Init(cfg.LogLevel, cfg.LogJSON)
	if err := run(cfg, l); err != nil {
		l.Error("partybot stopped with an error", "error", err)
		os.Exit(1)
	}
	l.Info("partybot has been shut down")
}

func run(cfg *config.Config, l *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return err
	}

	m := metrics.New()

	// Game kinds
	impostorDef, err := impostor.Definition(&impostor.Config{
		Words:  impostor.DefaultWordPool(),
		Picker: random.New(nil),
	})
	if err != nil {
		return err
	}
	registry, err := games.NewRegistry(impostorDef)
	if err != nil {
		return err
	}

	// Repositories
	parties, closeParties, err := newPartyRepository(cfg, redisClient)
	if err != nil {
		return err
	}
	defer closeParties()

	users, err := userRepo.NewRedis(&userRepo.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}
	storage, err := gamestate.NewRedis(&gamestate.RedisConfig{
		RedisClient: redisClient,
		Registry:    registry,
		TTL:         cfg.GameStateTTL,
	})
	if err != nil {
		return err
	}

	// Services
	locks := keylock.New()
	partyService, err := partySvc.New(&partySvc.Config{
		Repository:      parties,
		Registry:        registry,
		Clock:           clock.New(),
		UUIDGenerator:   uuid.New(),
		Locks:           locks,
		MaxPlayers:      cfg.MaxPlayers,
		DefaultLanguage: cfg.DefaultLanguage,
		Logger:          logger.Component("party"),
		Metrics:         m,
	})
	if err != nil {
		return err
	}

	sessions, err := session.New(&session.Config{
		Parties:  partyService,
		Storage:  storage,
		Registry: registry,
		Locks:    locks,
		Logger:   logger.Component("session"),
		Metrics:  m,
	})
	if err != nil {
		return err
	}

	messages, err := messaging.New(&messaging.Config{DefaultLanguage: cfg.DefaultLanguage})
	if err != nil {
		return err
	}

	// Delivery
	var hub *socket.Hub
	var discordSession *discordgo.Session
	providers := []delivery.Provider{}
	if cfg.Enabled(config.ProviderSocket) {
		hub = socket.NewHub(&socket.Config{Logger: logger.Component("socket")})
		providers = append(providers, hub)
	}
	if cfg.DiscordToken != "" {
		if discordSession, err = discord.NewSession(cfg.DiscordToken); err != nil {
			return err
		}
	}
	if cfg.Enabled(config.ProviderDiscord) {
		p, err := discordDelivery.New(&discordDelivery.Config{Session: discordSession})
		if err != nil {
			return err
		}
		providers = append(providers, p)
	}
	if cfg.Enabled(config.ProviderTelegram) {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
		if err != nil {
			return err
		}
		p, err := telegramDelivery.New(&telegramDelivery.Config{Bot: bot})
		if err != nil {
			return err
		}
		providers = append(providers, p)
	}
	if cfg.Enabled(config.ProviderWebhook) {
		p, err := webhookDelivery.New(&webhookDelivery.Config{
			CallbackURL: cfg.WebhookURL,
			Secret:      cfg.WebhookSecret,
		})
		if err != nil {
			return err
		}
		providers = append(providers, p)
	}

	router, err := delivery.NewRouter(&delivery.RouterConfig{
		Users:     users,
		Providers: providers,
		Logger:    logger.Component("delivery"),
	})
	if err != nil {
		return err
	}

	notifications, err := notification.New(&notification.Config{
		Parties:         partyService,
		Messaging:       messages,
		Sender:          router,
		Concurrency:     cfg.FanoutConcurrency,
		DeliveryTimeout: cfg.DeliveryTimeout,
		Logger:          logger.Component("notification"),
		Metrics:         m,
	})
	if err != nil {
		return err
	}

	coord, err := coordinator.New(&coordinator.Config{
		Parties:         partyService,
		Sessions:        sessions,
		Notifications:   notifications,
		Users:           users,
		Registry:        registry,
		Timeout:         cfg.OperationTimeout,
		DefaultLanguage: cfg.DefaultLanguage,
		Categories:      impostor.DefaultWordPool().Categories,
		Logger:          logger.Component("coordinator"),
		Metrics:         m,
	})
	if err != nil {
		return err
	}

	// Command sources
	server, err := web.New(&web.Config{
		Coordinator:    coord,
		Hub:            hub,
		Metrics:        m,
		TelegramSecret: cfg.TelegramSecret,
		WebhookSecret:  cfg.WebhookSecret,
		SocketToken:    cfg.SocketToken,
		Logger:         logger.Component("http"),
	})
	if err != nil {
		return err
	}
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	var bot *discord.Bot
	if discordSession != nil {
		bot, err = discord.New(&discord.Config{
			Session:       discordSession,
			ApplicationID: cfg.DiscordApplicationID,
			GuildID:       cfg.DiscordGuildID,
			Coordinator:   coord,
			Logger:        logger.Component("discord"),
		})
		if err != nil {
			return err
		}
		if err := bot.Start(); err != nil {
			return err
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		l.Info("http server listening", "addr", cfg.HTTPAddr, "providers", router.Channels())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal to gracefully shutdown
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}
	l.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		l.Warn("http shutdown failed", "error", err)
	}
	if bot != nil {
		if err := bot.Stop(); err != nil {
			l.Warn("error stopping discord bot", "error", err)
		}
	}
	return nil
}

// newPartyRepository picks the party backend. The returned func closes it.
func newPartyRepository(cfg *config.Config, client *redis.Client) (partyRepo.Repository, func(), error) {
	if cfg.Storage == config.StorageSQLite {
		repo, err := partyRepo.NewSQLite(&partyRepo.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	}

	repo, err := partyRepo.NewRedis(&partyRepo.Config{RedisClient: client})
	if err != nil {
		return nil, nil, err
	}
	return repo, func() {}, nil
}
