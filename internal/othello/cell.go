package othello

import "fmt"

// Cell is the content of a single square of the board.
type Cell uint8

const (
	EMPTY Cell = iota
	BLACK
	WHITE
)

// Opponent returns the other player. EMPTY has no opponent and maps to itself.
func (c Cell) Opponent() Cell {
	switch c {
	case BLACK:
		return WHITE
	case WHITE:
		return BLACK
	default:
		return EMPTY
	}
}

// IsPlayer returns whether c is BLACK or WHITE.
func (c Cell) IsPlayer() bool {
	return c == BLACK || c == WHITE
}

// Rune returns the character used in the string form of a board.
func (c Cell) Rune() rune {
	switch c {
	case BLACK:
		return 'B'
	case WHITE:
		return 'W'
	default:
		return '.'
	}
}

func (c Cell) String() string {
	switch c {
	case BLACK:
		return "black"
	case WHITE:
		return "white"
	default:
		return "empty"
	}
}

// ParseCell converts a player name ("black", "white", "b", "w") into a Cell.
func ParseCell(s string) (Cell, error) {
	switch s {
	case "black", "b", "B":
		return BLACK, nil
	case "white", "w", "W":
		return WHITE, nil
	default:
		return EMPTY, fmt.Errorf("invalid player: %q", s)
	}
}

func cellFromRune(r rune) (Cell, error) {
	switch r {
	case 'B':
		return BLACK, nil
	case 'W':
		return WHITE, nil
	case '.':
		return EMPTY, nil
	default:
		return EMPTY, fmt.Errorf("invalid cell character: %q", r)
	}
}
