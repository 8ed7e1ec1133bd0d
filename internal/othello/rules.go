package othello

import (
	"iter"
)

// MoveOutcome is the result of attempting a move with Play.
type MoveOutcome struct {
	// Applied is false when the move was rejected.
	Applied bool

	// Flipped is the number of opponent discs that were flipped.
	Flipped int
}

// Rejected is the outcome of an illegal move.
var Rejected = MoveOutcome{}

// Scores holds the disc count per player.
type Scores struct {
	Black int `json:"black"`
	White int `json:"white"`
	Empty int `json:"empty"`
}

// Of returns the disc count of player.
func (s Scores) Of(player Cell) int {
	switch player {
	case BLACK:
		return s.Black
	case WHITE:
		return s.White
	default:
		return s.Empty
	}
}

// Diff returns the disc count of player minus that of its opponent.
func (s Scores) Diff(player Cell) int {
	return s.Of(player) - s.Of(player.Opponent())
}

// isAdjacentToOther checks if any neighbouring square on the board differs from player.
func isAdjacentToOther(b *Board, pos Position, player Cell) bool {
	for _, dir := range directions {
		neighbour := pos.Add(dir)
		if b.IsInBounds(neighbour) && b.at(neighbour) != player {
			return true
		}
	}
	return false
}

// IsValidMove checks if player may put a disc on pos.
func IsValidMove(b *Board, pos Position, player Cell) bool {
	return b.IsInBounds(pos) &&
		b.at(pos) == EMPTY &&
		isAdjacentToOther(b, pos, player) &&
		b.outflanksAny(pos, player)
}

// ValidMoves returns the legal moves of player in row-major order.
// The sequence reflects the board at the time of iteration.
func ValidMoves(b *Board, player Cell) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for pos := range b.Positions() {
			if IsValidMove(b, pos, player) && !yield(pos) {
				return
			}
		}
	}
}

// CanPlay checks if player has at least one legal move.
func CanPlay(b *Board, player Cell) bool {
	for range ValidMoves(b, player) {
		return true
	}
	return false
}

// IsGameOver checks if neither player can move.
// A single blocked player only passes, the game is not over.
func IsGameOver(b *Board) bool {
	return !CanPlay(b, BLACK) && !CanPlay(b, WHITE)
}

// GetScores counts the discs of both players and the empty squares.
func GetScores(b *Board) Scores {
	var scores Scores
	for _, cell := range b.grid {
		switch cell {
		case BLACK:
			scores.Black++
		case WHITE:
			scores.White++
		default:
			scores.Empty++
		}
	}
	return scores
}

// Play validates and applies a move.
func Play(b *Board, pos Position, player Cell) MoveOutcome {
	if !IsValidMove(b, pos, player) {
		return Rejected
	}

	if err := b.PutDisc(pos, player); err != nil {
		return Rejected
	}

	return MoveOutcome{
		Applied: true,
		Flipped: len(b.history[len(b.history)-1].flipped),
	}
}
