package evaluate

import (
	"github.com/lk16/othello/internal/othello"
)

// EvaluateBoard scores the board for player by counting safe directions.
//
// For every disc of player, each of the eight directions is followed for as long as
// the squares belong to player. A direction is safe when that run reaches the edge
// of the board, which approximates a disc that cannot be flipped along that line.
func EvaluateBoard(b *othello.Board, player othello.Cell) int {
	score := 0

	for pos := range b.Positions() {
		if b.At(pos) == player {
			score += safeDirections(b, pos, player)
		}
	}

	return score
}

func safeDirections(b *othello.Board, pos othello.Position, player othello.Cell) int {
	safe := 0

	for _, dir := range othello.Directions() {
		cur := pos.Add(dir)
		for b.IsInBounds(cur) && b.At(cur) == player {
			cur = cur.Add(dir)
		}

		if !b.IsInBounds(cur) {
			safe++
		}
	}

	return safe
}

// EvaluateMove scores the board after player plays move. The board is left unchanged.
func EvaluateMove(b *othello.Board, move othello.Position, player othello.Cell) (int, error) {
	var score int

	err := b.Try(move, player, func() {
		score = EvaluateBoard(b, player)
	})
	if err != nil {
		return 0, err
	}

	return score, nil
}
