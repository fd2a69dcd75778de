package models

// direction is a step in rows and columns.
type direction struct {
	dRow int
	dCol int
}

// directions lists N, S, E, W, NE, NW, SE, SW. The order determines the order of LegalFlips.
var directions = [8]direction{
	{-1, 0}, {1, 0}, {0, 1}, {0, -1},
	{-1, 1}, {-1, -1}, {1, 1}, {1, -1},
}

// LegalFlips returns the opponent discs that would be flipped if player played on (row, col).
// Flips are ordered by direction, nearest first. Occupancy of (row, col) is not checked.
func LegalFlips(board *Board, row, col int, player Color) []Square {
	opponent := player.Opponent()
	var flips []Square

	for _, dir := range directions {
		var candidates []Square

		r, c := row+dir.dRow, col+dir.dCol
		for r >= 0 && r < MaxY && c >= 0 && c < MaxX {
			square := board.squares[r][c]

			if square == opponent {
				candidates = append(candidates, Square{Row: r, Col: c})
				r += dir.dRow
				c += dir.dCol
				continue
			}

			// Only a disc of our own color brackets the run.
			if square == player {
				flips = append(flips, candidates...)
			}
			break
		}
	}

	return flips
}

// IsLegalMove checks if player can play on (row, col).
func IsLegalMove(board *Board, row, col int, player Color) bool {
	if board.squares[row][col] != EMPTY {
		return false
	}
	return len(LegalFlips(board, row, col, player)) > 0
}

// LegalMoves returns all squares player can play on, in row-major order.
func LegalMoves(board *Board, player Color) []Square {
	var moves []Square
	for row := range MaxY {
		for col := range MaxX {
			if IsLegalMove(board, row, col, player) {
				moves = append(moves, Square{Row: row, Col: col})
			}
		}
	}
	return moves
}

// CanMove returns whether player has at least one legal move.
func CanMove(board *Board, player Color) bool {
	for row := range MaxY {
		for col := range MaxX {
			if IsLegalMove(board, row, col, player) {
				return true
			}
		}
	}
	return false
}

// Apply places a disc for player on (row, col) and flips all discs in flips.
// The move is not validated, callers should obtain flips from LegalFlips.
func Apply(board *Board, row, col int, player Color, flips []Square) {
	board.squares[row][col] = player
	for _, flip := range flips {
		board.squares[flip.Row][flip.Col] = player
	}
}
