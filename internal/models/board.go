package models

import (
	"fmt"
	"strconv"
)

const (
	// MaxX is the number of columns on the board.
	MaxX = 8

	// MaxY is the number of rows on the board.
	MaxY = 8
)

// Color is the state of a single square.
type Color int

const (
	EMPTY Color = iota
	BLACK
	WHITE
)

// Opponent returns the other piece color. It panics for EMPTY.
func (c Color) Opponent() Color {
	if c == EMPTY {
		panic("EMPTY has no opponent")
	}
	return BLACK + WHITE - c
}

// String returns the capitalized name of the color.
func (c Color) String() string {
	switch c {
	case BLACK:
		return "Black"
	case WHITE:
		return "White"
	case EMPTY:
		return "Empty"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

var colorNames = map[Color]string{
	EMPTY: "empty",
	BLACK: "black",
	WHITE: "white",
}

// MarshalText encodes the color as "empty", "black" or "white".
func (c Color) MarshalText() ([]byte, error) {
	name, ok := colorNames[c]
	if !ok {
		return nil, fmt.Errorf("invalid color: %d", int(c))
	}
	return []byte(name), nil
}

// UnmarshalText decodes the output of MarshalText.
func (c *Color) UnmarshalText(text []byte) error {
	for color, name := range colorNames {
		if name == string(text) {
			*c = color
			return nil
		}
	}
	return fmt.Errorf("invalid color: %q", text)
}

// Board is an 8x8 grid of squares. The zero value is an empty board.
type Board struct {
	squares [MaxY][MaxX]Color
}

// NewBoardStart creates a new board with the starting position.
func NewBoardStart() Board {
	var b Board
	b.Reset()
	return b
}

// NewBoardEmpty creates a new board without any discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromString parses the output of Board.String.
func NewBoardFromString(s string) (Board, error) {
	if len(s) != 32 {
		return Board{}, fmt.Errorf("board string must be 32 characters long, got %d", len(s))
	}

	black, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid black bitboard: %w", err)
	}

	white, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid white bitboard: %w", err)
	}

	if black&white != 0 {
		return Board{}, fmt.Errorf("invalid board: black and white discs cannot overlap")
	}

	var b Board
	for index := range MaxX * MaxY {
		mask := uint64(1) << index
		switch {
		case black&mask != 0:
			b.squares[index/MaxX][index%MaxX] = BLACK
		case white&mask != 0:
			b.squares[index/MaxX][index%MaxX] = WHITE
		}
	}

	return b, nil
}

// Reset clears the board and places the four starting discs.
func (b *Board) Reset() {
	for row := range MaxY {
		for col := range MaxX {
			b.squares[row][col] = EMPTY
		}
	}

	b.squares[3][3] = WHITE
	b.squares[3][4] = BLACK
	b.squares[4][3] = BLACK
	b.squares[4][4] = WHITE
}

// Get returns the color of a square.
func (b *Board) Get(row, col int) Color {
	return b.squares[row][col]
}

// Set puts a disc of the given color on a square.
func (b *Board) Set(row, col int, color Color) {
	b.squares[row][col] = color
}

// CountPieces returns the number of black and white discs.
func (b *Board) CountPieces() (black, white int) {
	for row := range MaxY {
		for col := range MaxX {
			switch b.squares[row][col] {
			case BLACK:
				black++
			case WHITE:
				white++
			}
		}
	}
	return black, white
}

// CountEmpty returns the number of empty squares.
func (b *Board) CountEmpty() int {
	black, white := b.CountPieces()
	return MaxX*MaxY - black - white
}

// IsFull returns whether no empty squares are left.
func (b *Board) IsFull() bool {
	return b.CountEmpty() == 0
}

// bitboards returns the black and white discs as bitsets, bit index row*8+col.
func (b *Board) bitboards() (black, white uint64) {
	for row := range MaxY {
		for col := range MaxX {
			mask := uint64(1) << (row*MaxX + col)
			switch b.squares[row][col] {
			case BLACK:
				black |= mask
			case WHITE:
				white |= mask
			}
		}
	}
	return black, white
}

// String returns the hex representation of the board: black discs followed by white discs.
func (b Board) String() string {
	black, white := b.bitboards()
	return fmt.Sprintf("%016x%016x", black, white)
}

// ASCIIArtLines returns the ascii art lines for the board.
// Squares in hints are marked with a dot.
func (b *Board) ASCIIArtLines(hints []Square) []string {
	hinted := make(map[Square]bool, len(hints))
	for _, square := range hints {
		hinted[square] = true
	}

	lines := make([]string, MaxY+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := range MaxY {
		line := fmt.Sprintf("%d ", row+1)

		for col := range MaxX {
			switch {
			case b.squares[row][col] == WHITE:
				line += "○ "
			case b.squares[row][col] == BLACK:
				line += "● "
			case hinted[Square{Row: row, Col: col}]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[MaxY+1] = "+-----------------+"

	return lines
}
