package othello

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// undoRecord holds what is needed to revert one PutDisc call.
type undoRecord struct {
	placed  Position
	flipped []Position
}

// Board is a mutable Othello board with an undo history.
// A Board has no internal locking, it must have a single owner at a time.
type Board struct {
	height  int
	width   int
	grid    []Cell
	history []undoRecord
}

func validateDimensions(height, width int) error {
	if height < 2 || width < 2 || height%2 != 0 || width%2 != 0 {
		return fmt.Errorf("%w: %dx%d, height and width must be even and at least 2", ErrInvalidDimensions, height, width)
	}
	return nil
}

// NewBoard creates a board with the four starting discs in the center.
func NewBoard(height, width int) (*Board, error) {
	if err := validateDimensions(height, width); err != nil {
		return nil, err
	}

	b := newBoardEmpty(height, width)

	top, left := height/2-1, width/2-1
	b.set(Position{top, left}, WHITE)
	b.set(Position{top + 1, left + 1}, WHITE)
	b.set(Position{top, left + 1}, BLACK)
	b.set(Position{top + 1, left}, BLACK)

	return b, nil
}

// NewBoardMust creates a new board and panics if the dimensions are invalid.
func NewBoardMust(height, width int) *Board {
	b, err := NewBoard(height, width)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoardStart creates the standard 8x8 starting board.
func NewBoardStart() *Board {
	return NewBoardMust(8, 8)
}

func newBoardEmpty(height, width int) *Board {
	return &Board{
		height: height,
		width:  width,
		grid:   make([]Cell, height*width),
	}
}

// ParseBoard creates a board from its string form: one string per row, separated by '/',
// using '.' for empty squares and 'B' and 'W' for discs. The history of the result is empty.
func ParseBoard(s string) (*Board, error) {
	rows := strings.Split(s, "/")
	height := len(rows)
	width := len(rows[0])

	if err := validateDimensions(height, width); err != nil {
		return nil, err
	}

	b := newBoardEmpty(height, width)

	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d", ErrInvalidDimensions, row, len(line), width)
		}

		for col, r := range line {
			cell, err := cellFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("failed to parse row %d: %w", row, err)
			}
			b.set(Position{row, col}, cell)
		}
	}

	return b, nil
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// IsInBounds checks whether pos lies on the board.
func (b *Board) IsInBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.height && pos.Col >= 0 && pos.Col < b.width
}

// At returns the content of a square. Out of bounds positions are EMPTY.
func (b *Board) At(pos Position) Cell {
	if !b.IsInBounds(pos) {
		return EMPTY
	}
	return b.at(pos)
}

func (b *Board) at(pos Position) Cell {
	return b.grid[pos.Row*b.width+pos.Col]
}

func (b *Board) set(pos Position, cell Cell) {
	b.grid[pos.Row*b.width+pos.Col] = cell
}

// Positions returns all positions of the board in row-major order.
func (b *Board) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for row := range b.height {
			for col := range b.width {
				if !yield(Position{row, col}) {
					return
				}
			}
		}
	}
}

// OutflankedDiscs returns the opponent discs that would flip if player put a disc on pos.
// Within one direction discs are produced nearest to farthest.
func (b *Board) OutflankedDiscs(pos Position, player Cell) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		opponent := player.Opponent()

		for _, dir := range directions {
			run := 0
			cur := pos.Add(dir)
			for b.IsInBounds(cur) && b.at(cur) == opponent {
				run++
				cur = cur.Add(dir)
			}

			// The run must be closed off by one of our own discs.
			if run == 0 || !b.IsInBounds(cur) || b.at(cur) != player {
				continue
			}

			flip := pos
			for range run {
				flip = flip.Add(dir)
				if !yield(flip) {
					return
				}
			}
		}
	}
}

// outflanksAny returns whether putting a disc on pos flips at least one disc.
func (b *Board) outflanksAny(pos Position, player Cell) bool {
	for range b.OutflankedDiscs(pos, player) {
		return true
	}
	return false
}

// PutDisc places a disc for player on pos and flips all outflanked discs.
// Legality is not checked, callers should use IsValidMove first.
func (b *Board) PutDisc(pos Position, player Cell) error {
	if !player.IsPlayer() {
		return fmt.Errorf("%w: cannot put a disc for %s", ErrInvalidState, player)
	}

	if !b.IsInBounds(pos) {
		return fmt.Errorf("%w: %s is out of bounds", ErrInvalidState, pos)
	}

	if b.at(pos) != EMPTY {
		return fmt.Errorf("%w: %s is occupied", ErrInvalidState, pos)
	}

	flipped := slices.Collect(b.OutflankedDiscs(pos, player))

	b.set(pos, player)
	for _, flip := range flipped {
		b.set(flip, player)
	}

	b.history = append(b.history, undoRecord{placed: pos, flipped: flipped})
	return nil
}

// Undo reverts the last PutDisc call.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}

	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	opponent := b.at(last.placed).Opponent()
	b.set(last.placed, EMPTY)

	for _, flip := range last.flipped {
		b.set(flip, opponent)
	}

	return nil
}

// Try puts a disc, runs fn and undoes the move afterwards, also when fn panics.
func (b *Board) Try(pos Position, player Cell, fn func()) error {
	if err := b.PutDisc(pos, player); err != nil {
		return err
	}

	defer func() {
		// History is non-empty here, Undo cannot fail.
		_ = b.Undo()
	}()

	fn()
	return nil
}

// HistoryLen returns the number of moves that can be undone.
func (b *Board) HistoryLen() int {
	return len(b.history)
}

// Clone returns a deep copy of the board, history included.
func (b *Board) Clone() *Board {
	history := make([]undoRecord, len(b.history))
	for i, record := range b.history {
		history[i] = undoRecord{
			placed:  record.placed,
			flipped: slices.Clone(record.flipped),
		}
	}

	return &Board{
		height:  b.height,
		width:   b.width,
		grid:    slices.Clone(b.grid),
		history: history,
	}
}

// Equal checks if two boards have the same dimensions and squares. History is ignored.
func (b *Board) Equal(other *Board) bool {
	return b.height == other.height && b.width == other.width && slices.Equal(b.grid, other.grid)
}

// String returns the string form accepted by ParseBoard.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width + 1))

	for row := range b.height {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range b.width {
			sb.WriteRune(b.at(Position{row, col}).Rune())
		}
	}

	return sb.String()
}

// ASCIIArtLines returns the ascii art lines for the board, marking the moves of turn.
// Pass EMPTY to leave moves unmarked.
func (b *Board) ASCIIArtLines(turn Cell) []string {
	lines := make([]string, b.height+2)

	border := strings.Repeat("--", b.width)

	header := "+-"
	for col := range b.width {
		header += string(rune('a'+col%26)) + "-"
	}
	lines[0] = "   " + header + "+"

	for row := range b.height {
		line := fmt.Sprintf("%2d | ", row+1)

		for col := range b.width {
			pos := Position{row, col}

			switch {
			case b.at(pos) == WHITE:
				line += "○ "
			case b.at(pos) == BLACK:
				line += "● "
			case turn.IsPlayer() && IsValidMove(b, pos, turn):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[b.height+1] = "   +-" + border + "+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b *Board) Print(turn Cell) {
	for _, line := range b.ASCIIArtLines(turn) {
		fmt.Println(line)
	}
}
