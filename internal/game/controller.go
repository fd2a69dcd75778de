package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lk16/reversi/internal/models"
)

// ErrOutOfRange is the panic value for coordinates outside the board.
var ErrOutOfRange = errors.New("coordinates out of range")

// Controller owns a single game and is the entry point for user interfaces.
// It is not safe for concurrent use.
type Controller struct {
	state *State

	// message is the latest status message, kept for rendering
	message StatusMessage

	// moveCount is the number of discs placed since the start
	moveCount int
}

// NewController creates a controller with a new game.
func NewController(policy TurnPolicy) *Controller {
	c := &Controller{state: NewState(policy)}
	c.Reset()
	return c
}

// Reset starts a new game, keeping the turn policy.
func (c *Controller) Reset() {
	c.state = NewState(c.state.policy)
	c.message = TurnMessage(models.BLACK)
	c.moveCount = 0
}

// OnCellChosen tries to play the current player on (row, col).
// Rejected moves leave the game unchanged. After the game is over every call is rejected
// with ReasonGameOver and the final status message is kept.
// Coordinates outside the board are a programming error and cause a panic.
func (c *Controller) OnCellChosen(row, col int) StatusMessage {
	if c.state.status == Over {
		return RejectedMessage(ReasonGameOver)
	}

	square := models.Square{Row: row, Col: col}
	if !square.InBounds() {
		panic(fmt.Errorf("%w: %s", ErrOutOfRange, square))
	}

	player := c.state.current

	if c.state.board.Get(row, col) != models.EMPTY {
		c.message = RejectedMessage(ReasonOccupied)
		return c.message
	}

	flips := models.LegalFlips(&c.state.board, row, col, player)
	if len(flips) == 0 {
		c.message = RejectedMessage(ReasonNoCaptures)
		return c.message
	}

	models.Apply(&c.state.board, row, col, player, flips)
	c.moveCount++

	c.message = c.state.Advance()

	slog.Debug("move played", "player", player, "square", square, "flips", len(flips), "status", c.message.Text())

	return c.message
}

// Cell returns the color of a square.
func (c *Controller) Cell(row, col int) models.Color {
	return c.state.board.Get(row, col)
}

// Board returns a copy of the board.
func (c *Controller) Board() models.Board {
	return c.state.Board()
}

// Scores returns the number of black and white discs.
func (c *Controller) Scores() (black, white int) {
	return c.state.board.CountPieces()
}

// StatusMessage returns the latest status message.
func (c *Controller) StatusMessage() StatusMessage {
	return c.message
}

// IsGameOver checks if the game has ended.
func (c *Controller) IsGameOver() bool {
	return c.state.status == Over
}

// CurrentPlayer returns the player to move.
func (c *Controller) CurrentPlayer() models.Color {
	return c.state.current
}

// Outcome returns the result of the game, or NoOutcome while in progress.
func (c *Controller) Outcome() Outcome {
	return c.state.outcome
}

// Policy returns the turn policy of the game.
func (c *Controller) Policy() TurnPolicy {
	return c.state.policy
}

// MoveCount returns the number of moves played.
func (c *Controller) MoveCount() int {
	return c.moveCount
}

// LegalMoves returns the squares the current player can play on. It is empty when the game is over.
func (c *Controller) LegalMoves() []models.Square {
	if c.state.status == Over {
		return nil
	}
	return models.LegalMoves(&c.state.board, c.state.current)
}
