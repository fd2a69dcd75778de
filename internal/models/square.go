package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidField = errors.New("invalid field")

// Square identifies a square by row and column, both in [0,7].
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds checks if the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < MaxY && s.Col >= 0 && s.Col < MaxX
}

// String returns the field notation of the square, e.g. "d3" for row 2 column 3.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string(rune('a'+s.Col)) + string(rune('1'+s.Row))
}

// ParseSquare converts a field notation (e.g. "a1", "h8") to a Square.
func ParseSquare(field string) (Square, error) {
	if len(field) != 2 {
		return Square{}, fmt.Errorf("%w: %q must be 2 characters long", ErrInvalidField, field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	return Square{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}, nil
}
