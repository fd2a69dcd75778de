package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/ws"
)

func handleWs(c *websocket.Conn) {
	cfg := c.Locals("config").(*config.ServerConfig)               //nolint: errcheck
	sessions := c.Locals("sessions").(repository.SessionRepository) //nolint: errcheck

	h := ws.NewHandler(c, sessions, cfg.TurnPolicy)
	err := h.Handle()
	if err != nil {
		slog.Error("ws handle error", "error", err)
	}
}

// upgradeRequired rejects plain HTTP requests to the websocket endpoint.
func upgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Use("/ws", upgradeRequired)
	app.Get("/ws", websocket.New(handleWs))
}
