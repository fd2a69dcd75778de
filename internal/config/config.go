package config

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/lk16/reversi/internal/game"
)

const (
	defaultSessionTTL = time.Hour
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost string
	ServerPort string
	Prefork    bool

	// RedisURL is optional. Without it, sessions are kept in memory.
	RedisURL   string
	SessionTTL time.Duration

	// StaticDir is optional. Without it, no static files are served.
	StaticDir string

	TurnPolicy game.TurnPolicy
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	cfg := &ServerConfig{
		ServerHost: getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort: getEnvMust("REVERSI_SERVER_PORT"),
		Prefork:    getEnvMustBool("REVERSI_SERVER_PREFORK"),
		RedisURL:   os.Getenv("REVERSI_REDIS_URL"),
		SessionTTL: getEnvDuration("REVERSI_SESSION_TTL", defaultSessionTTL),
		StaticDir:  os.Getenv("REVERSI_STATIC_DIR"),
		TurnPolicy: getEnvTurnPolicy("REVERSI_TURN_POLICY"),
	}

	if err := cfg.validate(); err != nil {
		slog.Error("Invalid server configuration", "error", err)
		os.Exit(1)
	}

	return cfg
}

// ErrPreforkWithoutRedis is returned for configurations where prefork children cannot share sessions.
var ErrPreforkWithoutRedis = errors.New("REVERSI_SERVER_PREFORK requires REVERSI_REDIS_URL")

// validate checks combinations of settings.
// Every prefork child has its own memory, so sessions must be stored in Redis.
func (cfg *ServerConfig) validate() error {
	if cfg.Prefork && cfg.RedisURL == "" {
		return ErrPreforkWithoutRedis
	}
	return nil
}

// CLIConfig holds the configuration of the terminal client.
type CLIConfig struct {
	TurnPolicy  game.TurnPolicy
	HistoryFile string
}

// LoadCLIConfig loads configuration from environment variables.
func LoadCLIConfig() *CLIConfig {
	return &CLIConfig{
		TurnPolicy:  getEnvTurnPolicy("REVERSI_TURN_POLICY"),
		HistoryFile: os.Getenv("REVERSI_HISTORY_FILE"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

// getEnvDuration parses a duration such as "30m", falling back to fallback when unset.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		slog.Error("Cannot load environment variable, it must be a positive duration", "key", key, "value", value)
		os.Exit(1)
	}

	return duration
}

// getEnvTurnPolicy parses the turn policy, defaulting to the standard policy when unset.
func getEnvTurnPolicy(key string) game.TurnPolicy {
	value := os.Getenv(key)
	if value == "" {
		return game.PolicyStandard
	}

	policy, err := game.ParseTurnPolicy(value)
	if err != nil {
		slog.Error("Cannot load environment variable, it must be \"standard\" or \"legacy\"", "key", key, "value", value)
		os.Exit(1)
	}

	return policy
}
