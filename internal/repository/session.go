package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/services"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is a game hosted by the server, identified by a random ID.
type Session struct {
	ID        string        `json:"id"`
	Snapshot  game.Snapshot `json:"snapshot"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Controller restores the game of the session.
func (s Session) Controller() (*game.Controller, error) {
	return game.NewControllerFromSnapshot(s.Snapshot)
}

// SessionRepository stores sessions between requests.
type SessionRepository interface {
	// Create starts a new game and stores it.
	Create(ctx context.Context, policy game.TurnPolicy) (Session, error)

	// Get loads a session.
	Get(ctx context.Context, id string) (Session, error)

	// Update loads the game, runs fn on it and stores the result.
	// No other Update of the same session runs at the same time.
	// If fn returns an error the session is left unchanged.
	Update(ctx context.Context, id string, fn func(*game.Controller) error) (Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, id string) error
}

// NewSessionRepositoryFromServices uses Redis when it is available and memory otherwise.
func NewSessionRepositoryFromServices(services *services.Services, ttl time.Duration) SessionRepository {
	if services.Redis != nil {
		return NewRedisSessionRepository(services.Redis, ttl)
	}
	return NewMemorySessionRepository(ttl)
}

// NewSessionRepository gets the repository that the app stored in the fiber context.
func NewSessionRepository(c *fiber.Ctx) SessionRepository {
	return c.Locals("sessions").(SessionRepository) //nolint: errcheck
}

// newSession creates a session with a fresh game.
func newSession(policy game.TurnPolicy, now time.Time) Session {
	return Session{
		ID:        uuid.New().String(),
		Snapshot:  game.NewController(policy).Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// applyUpdate runs fn on the game of session and returns the updated session.
func applyUpdate(session Session, fn func(*game.Controller) error, now time.Time) (Session, error) {
	controller, err := session.Controller()
	if err != nil {
		return Session{}, fmt.Errorf("error restoring session %s: %w", session.ID, err)
	}

	if err = fn(controller); err != nil {
		return Session{}, err
	}

	session.Snapshot = controller.Snapshot()
	session.UpdatedAt = now
	return session, nil
}
