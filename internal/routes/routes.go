package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/routes/games"
	"github.com/lk16/reversi/internal/routes/static"
	"github.com/lk16/reversi/internal/routes/version"
	"github.com/lk16/reversi/internal/routes/ws"
)

func SetupRoutes(app *fiber.App, cfg *config.ServerConfig) {
	// Serve game API
	games.SetupRoutes(app)

	// Serve websocket
	ws.SetupRoutes(app)

	// Serve static files and the game page
	static.SetupRoutes(app, cfg.StaticDir)

	// Serve version info
	version.SetupRoutes(app)
}
