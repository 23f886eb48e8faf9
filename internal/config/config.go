package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"

	ProviderSocket   = "socket"
	ProviderDiscord  = "discord"
	ProviderTelegram = "telegram"
	ProviderWebhook  = "webhook"
)

// Config is everything the process reads from its environment
type Config struct {
	LogLevel string `env:"PARTYLINE_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"PARTYLINE_LOG_JSON" envDefault:"false"`

	HTTPAddr string `env:"PARTYLINE_HTTP_ADDR" envDefault:":8080"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Storage picks the party backend, redis or sqlite. Users and live games
	// always live in Redis.
	Storage      string        `env:"PARTYLINE_STORAGE" envDefault:"redis"`
	SQLitePath   string        `env:"PARTYLINE_SQLITE_PATH" envDefault:"partyline.db"`
	GameStateTTL time.Duration `env:"PARTYLINE_GAME_TTL" envDefault:"24h"`

	DiscordToken         string `env:"DISCORD_TOKEN"`
	DiscordApplicationID string `env:"APPLICATION_ID"`
	DiscordGuildID       string `env:"GUILD_ID"`

	TelegramToken  string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramSecret string `env:"TELEGRAM_WEBHOOK_SECRET"`

	WebhookURL    string `env:"PARTYLINE_WEBHOOK_URL"`
	WebhookSecret string `env:"PARTYLINE_WEBHOOK_SECRET"`

	SocketToken string `env:"PARTYLINE_SOCKET_TOKEN"`

	// Providers lists the enabled delivery channels
	Providers []string `env:"PARTYLINE_PROVIDERS" envDefault:"socket" envSeparator:","`

	DefaultLanguage   string        `env:"PARTYLINE_DEFAULT_LANGUAGE" envDefault:"en"`
	MaxPlayers        int           `env:"PARTYLINE_MAX_PLAYERS" envDefault:"12"`
	OperationTimeout  time.Duration `env:"PARTYLINE_OPERATION_TIMEOUT" envDefault:"5s"`
	FanoutConcurrency int           `env:"PARTYLINE_FANOUT_CONCURRENCY" envDefault:"8"`
	DeliveryTimeout   time.Duration `env:"PARTYLINE_DELIVERY_TIMEOUT" envDefault:"3s"`
}

// Load reads the given dotenv files (".env" when none are named) and then
// the environment. Variables already set win over file values; a missing
// file is not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Enabled reports whether a delivery provider is switched on
func (c *Config) Enabled(provider string) bool {
	return slices.Contains(c.Providers, provider)
}

// Validate rejects combinations the process cannot start with
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage {
	case StorageRedis:
	case StorageSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("PARTYLINE_SQLITE_PATH is required for sqlite storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q", c.Storage))
	}

	for _, p := range c.Providers {
		switch p {
		case ProviderSocket:
		case ProviderDiscord:
			if c.DiscordToken == "" {
				errs = append(errs, errors.New("DISCORD_TOKEN is required for discord delivery"))
			}
		case ProviderTelegram:
			if c.TelegramToken == "" {
				errs = append(errs, errors.New("TELEGRAM_BOT_TOKEN is required for telegram delivery"))
			}
		case ProviderWebhook:
			if c.WebhookURL == "" {
				errs = append(errs, errors.New("PARTYLINE_WEBHOOK_URL is required for webhook delivery"))
			}
		default:
			errs = append(errs, fmt.Errorf("unknown provider %q", p))
		}
	}

	if c.MaxPlayers < 3 {
		errs = append(errs, fmt.Errorf("PARTYLINE_MAX_PLAYERS must be at least 3, got %d", c.MaxPlayers))
	}
	if c.OperationTimeout <= 0 || c.DeliveryTimeout <= 0 {
		errs = append(errs, errors.New("timeouts must be positive"))
	}
	if c.FanoutConcurrency < 1 {
		errs = append(errs, errors.New("PARTYLINE_FANOUT_CONCURRENCY must be positive"))
	}

	return errors.Join(errs...)
}
