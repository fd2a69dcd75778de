package cli

import (
	"fmt"
	"strings"

	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Prompt returns the prompt showing whose turn it is.
func Prompt(controller *game.Controller) string {
	if controller.IsGameOver() {
		return Yellow + "reversi" + Reset + " (game over) > "
	}
	return fmt.Sprintf("%sreversi%s (%s) > ", Yellow, Reset, controller.CurrentPlayer())
}

// messageColor picks a color that matches the kind of message.
func messageColor(message game.StatusMessage) string {
	switch message.Kind {
	case game.MessageRejected:
		return Red
	case game.MessagePassed:
		return Yellow
	case game.MessageFinished:
		return Cyan
	default:
		return Green
	}
}

// RenderGame draws the board, the scores and the status message.
func RenderGame(controller *game.Controller, showHints bool) string {
	board := controller.Board()

	var hints []models.Square
	if showHints {
		hints = controller.LegalMoves()
	}

	var sb strings.Builder
	for _, line := range board.ASCIIArtLines(hints) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	black, white := controller.Scores()
	fmt.Fprintf(&sb, "Black: %d  White: %d\n", black, white)

	message := controller.StatusMessage()
	fmt.Fprintf(&sb, "%s%s%s\n", messageColor(message), message.Text(), Reset)

	return sb.String()
}
