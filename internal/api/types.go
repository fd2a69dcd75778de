package api

import (
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
)

// NewGameRequest represents the payload for starting a game.
type NewGameRequest struct {
	// Policy is "standard" or "legacy". The server default is used when empty.
	Policy string `json:"policy" validate:"omitempty,oneof=standard legacy"`
}

// MoveRequest represents the payload for choosing a cell.
type MoveRequest struct {
	Row *int `json:"row" validate:"required,min=0,max=7"`
	Col *int `json:"col" validate:"required,min=0,max=7"`
}

// Scores contains the number of discs per color.
type Scores struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Message is a status message together with its rendered text.
type Message struct {
	game.StatusMessage
	Text string `json:"text"`
}

// NewMessage renders a status message.
func NewMessage(message game.StatusMessage) Message {
	return Message{
		StatusMessage: message,
		Text:          message.Text(),
	}
}

// GameState is everything a user interface needs to display a game.
type GameState struct {
	ID         string                                 `json:"id"`
	Cells      [models.MaxY][models.MaxX]models.Color `json:"cells"`
	Board      string                                 `json:"board"`
	Scores     Scores                                 `json:"scores"`
	Current    models.Color                           `json:"current"`
	Over       bool                                   `json:"over"`
	Outcome    game.Outcome                           `json:"outcome"`
	Policy     game.TurnPolicy                        `json:"policy"`
	MoveCount  int                                    `json:"move_count"`
	Message    Message                                `json:"message"`
	LegalMoves []models.Square                        `json:"legal_moves"`

	// Result is the answer to the chosen cell. It is only set in response to a move.
	Result *Message `json:"result,omitempty"`
}

// NewGameState collects the display state of a game.
func NewGameState(id string, controller *game.Controller) GameState {
	board := controller.Board()
	black, white := controller.Scores()

	state := GameState{
		ID:         id,
		Board:      board.String(),
		Scores:     Scores{Black: black, White: white},
		Current:    controller.CurrentPlayer(),
		Over:       controller.IsGameOver(),
		Outcome:    controller.Outcome(),
		Policy:     controller.Policy(),
		MoveCount:  controller.MoveCount(),
		Message:    NewMessage(controller.StatusMessage()),
		LegalMoves: controller.LegalMoves(),
	}

	if state.LegalMoves == nil {
		state.LegalMoves = []models.Square{}
	}

	for row := range models.MaxY {
		for col := range models.MaxX {
			state.Cells[row][col] = controller.Cell(row, col)
		}
	}

	return state
}

// WithResult attaches the answer to a move.
func (s GameState) WithResult(result game.StatusMessage) GameState {
	message := NewMessage(result)
	s.Result = &message
	return s
}
