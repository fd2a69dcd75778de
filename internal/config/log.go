package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// parseLogLevel converts a level name to a slog level. An empty name means INFO.
func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", name)
	}
}

// SetLogLevel installs a text logger on stderr with the level from LOG_LEVEL.
func SetLogLevel() {
	level, err := parseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		slog.Error("Invalid log level", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
