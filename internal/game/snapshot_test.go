package game

import (
	"encoding/json"
	"testing"

	"github.com/lk16/reversi/internal/models"
	"github.com/stretchr/testify/require"
)

func TestController_SnapshotRoundTrip(t *testing.T) {
	c := NewController(PolicyLegacy)
	c.OnCellChosen(2, 3)
	c.OnCellChosen(0, 0)

	data, err := json.Marshal(c.Snapshot())
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))

	restored, err := NewControllerFromSnapshot(snapshot)
	require.NoError(t, err)

	require.Equal(t, c.Board(), restored.Board())
	require.Equal(t, c.CurrentPlayer(), restored.CurrentPlayer())
	require.Equal(t, c.StatusMessage(), restored.StatusMessage())
	require.Equal(t, c.Policy(), restored.Policy())
	require.Equal(t, c.MoveCount(), restored.MoveCount())
	require.Equal(t, c.IsGameOver(), restored.IsGameOver())
}

func TestSnapshot_JSON(t *testing.T) {
	c := NewController(PolicyStandard)

	data, err := json.Marshal(c.Snapshot())
	require.NoError(t, err)

	expected := `{
		"board": "00000008100000000000001008000000",
		"current": "black",
		"status": "in_progress",
		"outcome": "none",
		"message": {"kind": "turn", "player": "black"},
		"policy": "standard",
		"move_count": 0
	}`
	require.JSONEq(t, expected, string(data))
}

func TestNewControllerFromSnapshot_Invalid(t *testing.T) {
	valid := NewController(PolicyStandard).Snapshot()

	tests := []struct {
		name   string
		modify func(*Snapshot)
	}{
		{
			name:   "bad board",
			modify: func(s *Snapshot) { s.Board = "nope" },
		},
		{
			name:   "empty current player",
			modify: func(s *Snapshot) { s.Current = models.EMPTY },
		},
		{
			name:   "over without outcome",
			modify: func(s *Snapshot) { s.Status = Over },
		},
		{
			name:   "outcome while in progress",
			modify: func(s *Snapshot) { s.Outcome = Tie },
		},
		{
			name:   "negative move count",
			modify: func(s *Snapshot) { s.MoveCount = -1 },
		},
		{
			name:   "move count beyond full board",
			modify: func(s *Snapshot) { s.MoveCount = 61 },
		},
		{
			name:   "finished message while in progress",
			modify: func(s *Snapshot) { s.Message = FinishedMessage(BlackWins) },
		},
		{
			name: "over with turn message",
			modify: func(s *Snapshot) {
				s.Status = Over
				s.Outcome = BlackWins
			},
		},
		{
			name: "over with message of another outcome",
			modify: func(s *Snapshot) {
				s.Status = Over
				s.Outcome = BlackWins
				s.Message = FinishedMessage(WhiteWins)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := valid
			tt.modify(&snapshot)

			_, err := NewControllerFromSnapshot(snapshot)
			require.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestNewControllerFromSnapshot_Over(t *testing.T) {
	board := models.NewBoardEmpty()
	board.Set(0, 0, models.WHITE)

	c, err := NewControllerFromSnapshot(Snapshot{
		Board:   board.String(),
		Current: models.WHITE,
		Status:  Over,
		Outcome: WhiteWins,
		Message: FinishedMessage(WhiteWins),
	})
	require.NoError(t, err)

	require.True(t, c.IsGameOver())
	require.Equal(t, RejectedMessage(ReasonGameOver), c.OnCellChosen(0, 1))
	require.Equal(t, "White wins!", c.StatusMessage().Text())
}
