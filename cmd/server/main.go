package main

import (
	"log"
	"log/slog"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
)

func main() {
	config.SetLogLevel()

	// Setup app
	app, cfg, services := internal.SetupApp()
	defer func() {
		if err := services.Close(); err != nil {
			slog.Error("Failed to close services", "error", err)
		}
	}()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	if err := app.Listen(address); err != nil {
		log.Print(err)
	}
}
