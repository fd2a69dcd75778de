package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/reversi/internal/models"
)

func main() {
	boardString := flag.String("board", models.NewBoardStart().String(), "the board to show, as two hex bitboards (black, white)")
	hints := flag.String("hints", "", "show the legal moves of this color (black or white)")
	flag.Parse()

	board, err := models.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var squares []models.Square
	if *hints != "" {
		var color models.Color
		if err = color.UnmarshalText([]byte(*hints)); err != nil || color == models.EMPTY {
			fmt.Printf("invalid hints color: %q\n", *hints)
			os.Exit(1)
		}
		squares = models.LegalMoves(&board, color)
	}

	for _, line := range board.ASCIIArtLines(squares) {
		fmt.Println(line)
	}

	black, white := board.CountPieces()
	fmt.Printf("Black: %d  White: %d\n", black, white)
}
