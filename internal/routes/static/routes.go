package static

import (
	"net/http"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// staticHandler serves static files.
func staticHandler(dir string) fiber.Handler {
	return filesystem.New(filesystem.Config{
		Root:   http.Dir(dir),
		Browse: false,
	})
}

// gamePage serves the page with the board.
func gamePage(dir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(dir, "game.html"))
	}
}

func rootHandler(c *fiber.Ctx) error {
	return c.Redirect("/game")
}

// SetupRoutes serves the browser frontend from dir. Nothing is served when dir is empty.
func SetupRoutes(app *fiber.App, dir string) {
	if dir == "" {
		return
	}

	app.Use("/static", staticHandler(dir))
	app.Get("/game", gamePage(dir))
	app.Get("/", rootHandler)
}
