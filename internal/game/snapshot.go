package game

import (
	"errors"
	"fmt"

	"github.com/lk16/reversi/internal/models"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

// maxMoveCount is the number of empty squares at the start of a game.
const maxMoveCount = models.MaxX*models.MaxY - 4

// Snapshot is the serializable state of a Controller.
type Snapshot struct {
	Board     string        `json:"board"`
	Current   models.Color  `json:"current"`
	Status    Status        `json:"status"`
	Outcome   Outcome       `json:"outcome"`
	Message   StatusMessage `json:"message"`
	Policy    TurnPolicy    `json:"policy"`
	MoveCount int           `json:"move_count"`
}

// Snapshot captures the state of the controller.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Board:     c.state.board.String(),
		Current:   c.state.current,
		Status:    c.state.status,
		Outcome:   c.state.outcome,
		Message:   c.message,
		Policy:    c.state.policy,
		MoveCount: c.moveCount,
	}
}

// NewControllerFromSnapshot restores a controller saved with Snapshot.
func NewControllerFromSnapshot(snapshot Snapshot) (*Controller, error) {
	board, err := models.NewBoardFromString(snapshot.Board)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	if snapshot.Current != models.BLACK && snapshot.Current != models.WHITE {
		return nil, fmt.Errorf("%w: current player must be black or white", ErrInvalidSnapshot)
	}

	if (snapshot.Status == Over) != (snapshot.Outcome != NoOutcome) {
		return nil, fmt.Errorf("%w: outcome %d does not match status %d", ErrInvalidSnapshot, snapshot.Outcome, snapshot.Status)
	}

	if snapshot.MoveCount < 0 || snapshot.MoveCount > maxMoveCount {
		return nil, fmt.Errorf("%w: move count %d is not in [0,%d]", ErrInvalidSnapshot, snapshot.MoveCount, maxMoveCount)
	}

	if snapshot.Status == Over && snapshot.Message != FinishedMessage(snapshot.Outcome) {
		return nil, fmt.Errorf("%w: finished game must keep its final message", ErrInvalidSnapshot)
	}

	if snapshot.Status == InProgress && snapshot.Message.Kind == MessageFinished {
		return nil, fmt.Errorf("%w: finished message while in progress", ErrInvalidSnapshot)
	}

	state := NewStateWithBoard(board, snapshot.Current, snapshot.Policy)
	state.status = snapshot.Status
	state.outcome = snapshot.Outcome

	return &Controller{
		state:     state,
		message:   snapshot.Message,
		moveCount: snapshot.MoveCount,
	}, nil
}
