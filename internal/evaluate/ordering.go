package evaluate

import (
	"cmp"
	"slices"

	"github.com/lk16/othello/internal/othello"
)

type orderedMove struct {
	pos othello.Position
	key int
}

// orderedMoves returns the legal moves of player sorted by EvaluateMove, best first.
// Moves with the same key keep their row-major order.
func orderedMoves(b *othello.Board, player othello.Cell) []othello.Position {
	candidates := make([]orderedMove, 0)

	for move := range othello.ValidMoves(b, player) {
		key, err := EvaluateMove(b, move, player)
		if err != nil {
			// ValidMoves only yields empty squares on the board.
			panic(err)
		}
		candidates = append(candidates, orderedMove{pos: move, key: key})
	}

	slices.SortStableFunc(candidates, func(a, b orderedMove) int {
		return cmp.Compare(b.key, a.key)
	})

	moves := make([]othello.Position, len(candidates))
	for i, candidate := range candidates {
		moves[i] = candidate.pos
	}
	return moves
}

// try applies a legal move for the duration of fn.
func try(b *othello.Board, move othello.Position, player othello.Cell, fn func()) {
	if err := b.Try(move, player, fn); err != nil {
		panic(err)
	}
}

// leafScore is the disc difference seen from root.
func leafScore(b *othello.Board, root othello.Cell) int {
	return othello.GetScores(b).Diff(root)
}
