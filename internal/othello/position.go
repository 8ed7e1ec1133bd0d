package othello

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// PassMove is the encoded form of a pass in a game's move list.
	PassMove = -1

	// MaxBoardSize is the largest height or width that square names and ASCII art can label.
	MaxBoardSize = 26
)

// Position is a (row, col) coordinate. Whether it lies on a board depends on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// directions are the eight rays used for outflanking and the heuristic.
var directions = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Directions returns the eight ray directions around a square.
func Directions() [8]Position {
	return directions
}

// Add returns the position shifted by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Index encodes the position as row*width+col.
func (p Position) Index(width int) int {
	return p.Row*width + p.Col
}

// PositionFromIndex decodes an index produced by Index.
func PositionFromIndex(index, width int) Position {
	return Position{Row: index / width, Col: index % width}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ParseSquare parses a square name such as "d3": a column letter followed by a 1-based row number.
// Columns are lettered as in ASCII art, so boards are limited to 26 columns.
func ParseSquare(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return Position{}, fmt.Errorf("invalid square: %q", s)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return Position{}, fmt.Errorf("invalid square: %q", s)
	}

	return Position{Row: row - 1, Col: int(s[0] - 'a')}, nil
}

// Square returns the square name of p as accepted by ParseSquare.
func (p Position) Square() string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}
