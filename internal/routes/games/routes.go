package games

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/lk16/reversi/internal/api"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/repository"
)

const (
	// CreateGameLimit is the number of games one client may start per minute.
	CreateGameLimit = 60
)

// createGameLimiter stops clients from filling the session store.
func createGameLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        CreateGameLimit,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": fmt.Sprintf("Rate limit exceeded, %d new games per minute allowed", CreateGameLimit),
			})
		},
	})
}

func SetupRoutes(app *fiber.App) {
	gamesGroup := app.Group("/api/games")
	gamesGroup.Post("/", createGameLimiter(), CreateGame)
	gamesGroup.Get("/:id", GetGame)
	gamesGroup.Post("/:id/moves", PlayMove)
	gamesGroup.Post("/:id/reset", ResetGame)
	gamesGroup.Delete("/:id", DeleteGame)
}

// CreateGame starts a new game. The body is optional and may select a turn policy.
func CreateGame(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

	var payload api.NewGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	if err := api.Validate(payload); err != nil {
		return badRequest(c, err.Error())
	}

	policy, err := payload.TurnPolicy(cfg.TurnPolicy)
	if err != nil {
		return badRequest(c, err.Error())
	}

	repo := repository.NewSessionRepository(c)
	session, err := repo.Create(c.Context(), policy)
	if err != nil {
		return sessionError(c, err)
	}

	return sendState(c, fiber.StatusCreated, session, nil)
}

// GetGame returns the state of a game.
func GetGame(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	session, err := repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	return sendState(c, fiber.StatusOK, session, nil)
}

// PlayMove chooses a cell for the player to move.
// Rejected moves are not errors: the result message explains why nothing changed.
func PlayMove(c *fiber.Ctx) error {
	var payload api.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := api.Validate(payload); err != nil {
		return badRequest(c, err.Error())
	}

	var result game.StatusMessage

	repo := repository.NewSessionRepository(c)
	session, err := repo.Update(c.Context(), c.Params("id"), func(controller *game.Controller) error {
		result = controller.OnCellChosen(*payload.Row, *payload.Col)
		return nil
	})
	if err != nil {
		return sessionError(c, err)
	}

	return sendState(c, fiber.StatusOK, session, &result)
}

// ResetGame puts a game back in the start position, keeping its turn policy.
func ResetGame(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	session, err := repo.Update(c.Context(), c.Params("id"), func(controller *game.Controller) error {
		controller.Reset()
		return nil
	})
	if err != nil {
		return sessionError(c, err)
	}

	return sendState(c, fiber.StatusOK, session, nil)
}

// DeleteGame removes a game.
func DeleteGame(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	if err := repo.Delete(c.Context(), c.Params("id")); err != nil {
		return sessionError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func sendState(c *fiber.Ctx, status int, session repository.Session, result *game.StatusMessage) error {
	controller, err := session.Controller()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	state := api.NewGameState(session.ID, controller)
	if result != nil {
		state = state.WithResult(*result)
	}

	return c.Status(status).JSON(state)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

func sessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Game not found",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
