package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/lk16/reversi/internal/game"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "default", input: "", want: slog.LevelInfo},
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "warn", input: "WARN", want: slog.LevelWarn},
		{name: "error", input: "Error", want: slog.LevelError},
		{name: "invalid", input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, level)
		})
	}
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("REVERSI_SERVER_HOST", "localhost")
	t.Setenv("REVERSI_SERVER_PORT", "3000")
	t.Setenv("REVERSI_SERVER_PREFORK", "false")
	t.Setenv("REVERSI_REDIS_URL", "")
	t.Setenv("REVERSI_SESSION_TTL", "")
	t.Setenv("REVERSI_STATIC_DIR", "")
	t.Setenv("REVERSI_TURN_POLICY", "")

	cfg := LoadServerConfig()

	require.Equal(t, &ServerConfig{
		ServerHost: "localhost",
		ServerPort: "3000",
		Prefork:    false,
		SessionTTL: time.Hour,
		TurnPolicy: game.PolicyStandard,
	}, cfg)
}

func TestLoadServerConfig_Optional(t *testing.T) {
	t.Setenv("REVERSI_SERVER_HOST", "0.0.0.0")
	t.Setenv("REVERSI_SERVER_PORT", "8080")
	t.Setenv("REVERSI_SERVER_PREFORK", "true")
	t.Setenv("REVERSI_REDIS_URL", "redis://localhost:6379")
	t.Setenv("REVERSI_SESSION_TTL", "15m")
	t.Setenv("REVERSI_STATIC_DIR", "/srv/static")
	t.Setenv("REVERSI_TURN_POLICY", "legacy")

	cfg := LoadServerConfig()

	require.True(t, cfg.Prefork)
	require.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	require.Equal(t, 15*time.Minute, cfg.SessionTTL)
	require.Equal(t, "/srv/static", cfg.StaticDir)
	require.Equal(t, game.PolicyLegacy, cfg.TurnPolicy)
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		prefork  bool
		redisURL string
		wantErr  error
	}{
		{name: "single process in memory", prefork: false, redisURL: ""},
		{name: "single process with redis", prefork: false, redisURL: "redis://localhost:6379"},
		{name: "prefork with redis", prefork: true, redisURL: "redis://localhost:6379"},
		{name: "prefork in memory", prefork: true, redisURL: "", wantErr: ErrPreforkWithoutRedis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ServerConfig{Prefork: tt.prefork, RedisURL: tt.redisURL}

			err := cfg.validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoadCLIConfig(t *testing.T) {
	t.Setenv("REVERSI_TURN_POLICY", "standard")
	t.Setenv("REVERSI_HISTORY_FILE", ".reversi_history")

	cfg := LoadCLIConfig()

	require.Equal(t, game.PolicyStandard, cfg.TurnPolicy)
	require.Equal(t, ".reversi_history", cfg.HistoryFile)
}
