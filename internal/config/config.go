// Package config manages environment-sourced configuration.
//
// It loads variables (optionally from a `.env` file), maps them into
// structured Go types, and validates that required values are present
// so the process fails fast on bad or missing config. Collaborators
// receive the resulting struct explicitly; nothing reads the
// environment at request time.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process
	// environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// envPrefix scopes which environment variables belong to this service.
// COUNCIL_SERVER.PORT maps to Config.Server.Port, and so on.
const envPrefix = "COUNCIL_"

// Config is the root configuration object.
//
// Redis and Notify are optional blocks: an empty redis address disables
// the background job queue, and missing notify credentials disable the
// corresponding notification channel.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Notify        NotifyConfig         `koanf:"notify"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"required"`
	WriteTimeout int    `koanf:"write_timeout" validate:"required"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"required"`

	// RateLimit is requests per second per client IP; 0 disables it.
	RateLimit float64 `koanf:"rate_limit"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// RedisConfig contains the Redis address backing the job queue.
// Empty means "no queue": notifications are dispatched inline.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// NotifyConfig holds credentials for the two notification channels.
//
// The telegram channel requires both the bot token and the chat id; the
// email channel requires the Resend API key plus sender and recipient
// addresses. Any incomplete channel is silently disabled.
type NotifyConfig struct {
	TelegramBotToken string `koanf:"telegram_bot_token"`
	TelegramChatID   string `koanf:"telegram_chat_id"`

	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
	EmailTo      string `koanf:"email_to"`
}

// New loads configuration from the environment, validates it, and
// applies defaults for the optional observability block.
func New() (*Config, error) {
	return loadConfig()
}

func loadConfig() (*Config, error) {
	// Config loading happens before the main logger exists, so use a
	// throwaway console logger for fatal startup errors.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are not user-configurable: telemetry
	// must be tagged consistently.
	mainConfig.Observability.ServiceName = "council-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}

// JobsEnabled reports whether the redis-backed job queue is configured.
func (c *Config) JobsEnabled() bool {
	return c.Redis.Address != ""
}
