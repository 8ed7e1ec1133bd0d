package evaluate

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/lk16/othello/internal/othello"
	"golang.org/x/sync/errgroup"
)

// PickBestTurnParallel searches every root move on its own copy of the board.
// It returns the same move as Bot.Search with the same depth. The board is not modified.
func PickBestTurnParallel(ctx context.Context, b *othello.Board, player othello.Cell, depth int) (Result, error) {
	depth = max(depth, 1)

	moves := orderedMoves(b, player)
	if len(moves) == 0 {
		return Result{}, fmt.Errorf("%w: %s cannot move", othello.ErrNoLegalMoves, player)
	}

	scores := make([]int, len(moves))
	var nodes atomic.Uint64

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, move := range moves {
		board := b.Clone()

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := board.PutDisc(move, player); err != nil {
				return fmt.Errorf("failed to apply root move %s: %w", move, err)
			}

			bot := NewBot(depth)
			scores[i] = bot.alphaBeta(board, player, player.Opponent(), depth-1, -infinity, infinity)
			nodes.Add(bot.nodes)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, fmt.Errorf("parallel search failed: %w", err)
	}

	result := Result{Move: moves[0], Score: -infinity, Depth: depth}
	for i, score := range scores {
		if score > result.Score {
			result.Score = score
			result.Move = moves[i]
		}
	}

	result.Nodes = nodes.Load()
	return result, nil
}
