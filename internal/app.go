package internal

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/routes"
	"github.com/lk16/reversi/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024 // Requests only carry small JSON payloads
)

// SetupApp loads the configuration, connects to external services and builds the app.
func SetupApp() (*fiber.App, *config.ServerConfig, *services.Services) {
	// Load configuration
	cfg := config.LoadServerConfig()

	// Initialize services
	services, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	return BuildApp(cfg, services), cfg, services
}

// BuildApp creates the Fiber app with all middleware and routes.
func BuildApp(cfg *config.ServerConfig, services *services.Services) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Turn panics in handlers into 500 responses
	app.Use(recover.New())

	// Allow frontends hosted elsewhere
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	sessions := repository.NewSessionRepositoryFromServices(services, cfg.SessionTTL)

	// Setup connections to external services and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", services)
		c.Locals("config", cfg)
		c.Locals("sessions", sessions)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app, cfg)

	return app
}
