package game

import (
	"github.com/lk16/reversi/internal/models"
)

// State is the board together with the turn and termination status.
type State struct {
	board   models.Board
	current models.Color
	status  Status
	outcome Outcome
	policy  TurnPolicy
}

// NewState creates a state with the starting position and black to move.
func NewState(policy TurnPolicy) *State {
	return NewStateWithBoard(models.NewBoardStart(), models.BLACK, policy)
}

// NewStateWithBoard creates an in-progress state from an arbitrary board.
// It is used to resume games and to set up positions in tests.
func NewStateWithBoard(board models.Board, current models.Color, policy TurnPolicy) *State {
	return &State{
		board:   board,
		current: current,
		status:  InProgress,
		policy:  policy,
	}
}

// Board returns a copy of the board.
func (s *State) Board() models.Board {
	return s.board
}

// Current returns the player to move. After the game is over it is the last player to move.
func (s *State) Current() models.Color {
	return s.current
}

// Status returns whether the game is still in progress.
func (s *State) Status() Status {
	return s.status
}

// Outcome returns the result, or NoOutcome while the game is in progress.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Policy returns the turn policy.
func (s *State) Policy() TurnPolicy {
	return s.policy
}

// finish ends the game and computes the outcome from the disc count.
func (s *State) finish() StatusMessage {
	s.status = Over
	s.outcome = OutcomeFromScores(s.board.CountPieces())
	return FinishedMessage(s.outcome)
}

// Advance runs the transition after the current player committed a move.
// It ends the game, keeps the turn, or hands it over depending on the policy.
func (s *State) Advance() StatusMessage {
	if s.status == Over {
		return FinishedMessage(s.outcome)
	}

	if s.board.IsFull() {
		return s.finish()
	}

	mover := s.current
	opponent := mover.Opponent()

	// The legacy policy looks at the mover first, the standard policy at the opponent.
	first, second := opponent, mover
	if s.policy == PolicyLegacy {
		first, second = mover, opponent
	}

	if models.CanMove(&s.board, first) {
		s.current = first
		return TurnMessage(first)
	}

	if models.CanMove(&s.board, second) {
		s.current = second
		return PassedMessage(first, second)
	}

	return s.finish()
}
