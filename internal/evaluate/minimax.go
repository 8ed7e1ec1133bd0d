package evaluate

import (
	"fmt"

	"github.com/lk16/othello/internal/othello"
)

// Minimax searches like Bot.Search but without pruning. It is slower and returns the same move.
func Minimax(b *othello.Board, player othello.Cell, depth int) (Result, error) {
	depth = max(depth, 1)

	moves := orderedMoves(b, player)
	if len(moves) == 0 {
		return Result{}, fmt.Errorf("%w: %s cannot move", othello.ErrNoLegalMoves, player)
	}

	var nodes uint64
	result := Result{Move: moves[0], Score: -infinity, Depth: depth}

	for _, move := range moves {
		var score int
		try(b, move, player, func() {
			score = minimax(b, player, player.Opponent(), depth-1, &nodes)
		})

		if score > result.Score {
			result.Score = score
			result.Move = move
		}
	}

	result.Nodes = nodes
	return result, nil
}

func minimax(b *othello.Board, root, mover othello.Cell, depth int, nodes *uint64) int {
	*nodes++

	if depth == 0 || othello.IsGameOver(b) {
		return leafScore(b, root)
	}

	moves := orderedMoves(b, mover)
	if len(moves) == 0 {
		return leafScore(b, root)
	}

	value := infinity
	if mover == root {
		value = -infinity
	}

	for _, move := range moves {
		try(b, move, mover, func() {
			score := minimax(b, root, mover.Opponent(), depth-1, nodes)
			if mover == root {
				value = max(value, score)
			} else {
				value = min(value, score)
			}
		})
	}

	return value
}
