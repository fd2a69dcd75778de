package game

import (
	"testing"

	"github.com/lk16/reversi/internal/models"
	"github.com/stretchr/testify/require"
)

// newControllerWithBoard creates a controller that resumes from board with player to move.
func newControllerWithBoard(t *testing.T, board models.Board, player models.Color, policy TurnPolicy) *Controller {
	t.Helper()

	c, err := NewControllerFromSnapshot(Snapshot{
		Board:   board.String(),
		Current: player,
		Status:  InProgress,
		Message: TurnMessage(player),
		Policy:  policy,
	})
	require.NoError(t, err)
	return c
}

func TestNewController(t *testing.T) {
	for _, policy := range policies {
		t.Run(policy.String(), func(t *testing.T) {
			c := NewController(policy)

			require.Equal(t, models.WHITE, c.Cell(3, 3))
			require.Equal(t, models.BLACK, c.Cell(3, 4))
			require.Equal(t, models.BLACK, c.Cell(4, 3))
			require.Equal(t, models.WHITE, c.Cell(4, 4))

			black, white := c.Scores()
			require.Equal(t, 2, black)
			require.Equal(t, 2, white)

			require.Equal(t, models.BLACK, c.CurrentPlayer())
			require.False(t, c.IsGameOver())
			require.Equal(t, NoOutcome, c.Outcome())
			require.Equal(t, "Black's turn.", c.StatusMessage().Text())
			require.Equal(t, policy, c.Policy())
			require.Zero(t, c.MoveCount())
			require.Len(t, c.LegalMoves(), 4)
		})
	}
}

func TestController_OnCellChosen_FirstMove(t *testing.T) {
	tests := []struct {
		name        string
		policy      TurnPolicy
		wantCurrent models.Color
		wantText    string
	}{
		{
			name:        "standard",
			policy:      PolicyStandard,
			wantCurrent: models.WHITE,
			wantText:    "White's turn.",
		},
		{
			name:        "legacy",
			policy:      PolicyLegacy,
			wantCurrent: models.BLACK,
			wantText:    "Black's turn.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.policy)

			message := c.OnCellChosen(2, 3)

			require.Equal(t, models.BLACK, c.Cell(2, 3))
			require.Equal(t, models.BLACK, c.Cell(3, 3))

			black, white := c.Scores()
			require.Equal(t, 4, black)
			require.Equal(t, 1, white)

			require.Equal(t, tt.wantCurrent, c.CurrentPlayer())
			require.Equal(t, tt.wantText, message.Text())
			require.Equal(t, message, c.StatusMessage())
			require.Equal(t, 1, c.MoveCount())
			require.False(t, c.IsGameOver())
		})
	}
}

func TestController_OnCellChosen_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		row        int
		col        int
		wantReason RejectReason
		wantText   string
	}{
		{
			name:       "occupied",
			row:        3,
			col:        3,
			wantReason: ReasonOccupied,
			wantText:   "Cell occupied. Try another move.",
		},
		{
			name:       "no captures",
			row:        0,
			col:        0,
			wantReason: ReasonNoCaptures,
			wantText:   "Invalid move. Try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(PolicyStandard)
			before := c.Board()

			message := c.OnCellChosen(tt.row, tt.col)

			require.Equal(t, RejectedMessage(tt.wantReason), message)
			require.Equal(t, tt.wantText, message.Text())
			require.Equal(t, message, c.StatusMessage())
			require.Equal(t, before, c.Board())
			require.Equal(t, models.BLACK, c.CurrentPlayer())
			require.Zero(t, c.MoveCount())
		})
	}
}

func TestController_OnCellChosen_OutOfRange(t *testing.T) {
	c := NewController(PolicyStandard)

	require.PanicsWithError(t, "coordinates out of range: (8,0)", func() { c.OnCellChosen(8, 0) })
	require.PanicsWithError(t, "coordinates out of range: (0,-1)", func() { c.OnCellChosen(0, -1) })
}

func TestController_OnCellChosen_Pass(t *testing.T) {
	tests := []struct {
		name     string
		policy   TurnPolicy
		wantText string
	}{
		{
			name:     "standard",
			policy:   PolicyStandard,
			wantText: "White has no moves. Black's turn.",
		},
		{
			name:     "legacy",
			policy:   PolicyLegacy,
			wantText: "Black's turn.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := models.NewBoardEmpty()
			board.Set(0, 0, models.BLACK)
			board.Set(0, 1, models.WHITE)
			board.Set(7, 0, models.BLACK)
			board.Set(7, 1, models.WHITE)

			c := newControllerWithBoard(t, board, models.BLACK, tt.policy)

			message := c.OnCellChosen(0, 2)
			require.Equal(t, tt.wantText, message.Text())
			require.Equal(t, models.BLACK, c.CurrentPlayer())

			// Capturing the last white disc ends the game.
			message = c.OnCellChosen(7, 2)
			require.Equal(t, FinishedMessage(BlackWins), message)
			require.True(t, c.IsGameOver())
			require.Equal(t, BlackWins, c.Outcome())
		})
	}
}

func TestController_OnCellChosen_GameOver(t *testing.T) {
	board := models.NewBoardEmpty()
	board.Set(0, 0, models.BLACK)
	board.Set(0, 1, models.WHITE)

	c := newControllerWithBoard(t, board, models.BLACK, PolicyStandard)

	message := c.OnCellChosen(0, 2)
	require.Equal(t, "Black wins!", message.Text())
	require.True(t, c.IsGameOver())
	require.Empty(t, c.LegalMoves())

	finalBoard := c.Board()

	message = c.OnCellChosen(0, 3)
	require.Equal(t, RejectedMessage(ReasonGameOver), message)
	require.Equal(t, "Game over.", message.Text())

	// The final result stays on display.
	require.Equal(t, "Black wins!", c.StatusMessage().Text())
	require.Equal(t, finalBoard, c.Board())
	require.Equal(t, 1, c.MoveCount())

	// Out of range input is ignored as well once the game is over.
	require.NotPanics(t, func() { c.OnCellChosen(9, 9) })
}

func TestController_FullGame(t *testing.T) {
	for _, policy := range policies {
		t.Run(policy.String(), func(t *testing.T) {
			c := NewController(policy)

			for !c.IsGameOver() {
				moves := c.LegalMoves()
				require.NotEmpty(t, moves)

				// Alternate between first and last move to get some variety.
				move := moves[0]
				if c.MoveCount()%3 == 1 {
					move = moves[len(moves)-1]
				}

				message := c.OnCellChosen(move.Row, move.Col)
				require.NotEqual(t, MessageRejected, message.Kind)

				black, white := c.Scores()
				require.Equal(t, 4+c.MoveCount(), black+white)
			}

			require.LessOrEqual(t, c.MoveCount(), 60)

			black, white := c.Scores()
			require.Equal(t, OutcomeFromScores(black, white), c.Outcome())
			require.Equal(t, FinishedMessage(c.Outcome()), c.StatusMessage())
		})
	}
}

func TestController_Reset(t *testing.T) {
	c := NewController(PolicyLegacy)
	c.OnCellChosen(2, 3)
	c.OnCellChosen(0, 0)

	c.Reset()

	require.Equal(t, models.NewBoardStart(), c.Board())
	require.Equal(t, models.BLACK, c.CurrentPlayer())
	require.Equal(t, TurnMessage(models.BLACK), c.StatusMessage())
	require.Equal(t, PolicyLegacy, c.Policy())
	require.False(t, c.IsGameOver())
	require.Zero(t, c.MoveCount())
}
