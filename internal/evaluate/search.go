package evaluate

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lk16/othello/internal/othello"
)

const (
	// DefaultDepth is the number of plies searched, the root move included.
	DefaultDepth = 3

	infinity = 1 << 30
)

// Result is the outcome of a search.
type Result struct {
	Move  othello.Position `json:"move"`
	Score int              `json:"score"`
	Depth int              `json:"depth"`
	Nodes uint64           `json:"nodes"`
}

// Bot picks moves with a depth limited alpha-beta search.
type Bot struct {
	depth     int
	startTime time.Time
	nodes     uint64
}

// NewBot creates a new bot. Depths below 1 are raised to 1.
func NewBot(depth int) *Bot {
	return &Bot{
		depth: max(depth, 1),
	}
}

// PickBestTurn returns the best move for player using a search of DefaultDepth.
func PickBestTurn(b *othello.Board, player othello.Cell) (othello.Position, error) {
	result, err := NewBot(DefaultDepth).Search(b, player)
	if err != nil {
		return othello.Position{}, err
	}
	return result.Move, nil
}

// Search finds the best move for player. The board is restored before it returns.
// Turn skipping is not part of the search, callers check othello.CanPlay first.
func (bot *Bot) Search(b *othello.Board, player othello.Cell) (Result, error) {
	bot.startTime = time.Now()
	bot.nodes = 0

	moves := orderedMoves(b, player)
	if len(moves) == 0 {
		return Result{}, fmt.Errorf("%w: %s cannot move", othello.ErrNoLegalMoves, player)
	}

	bestMove := moves[0]
	bestScore := -infinity
	alpha := -infinity

	for _, move := range moves {
		var score int
		try(b, move, player, func() {
			score = bot.alphaBeta(b, player, player.Opponent(), bot.depth-1, alpha, infinity)
		})

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		alpha = max(alpha, bestScore)
	}

	result := Result{
		Move:  bestMove,
		Score: bestScore,
		Depth: bot.depth,
		Nodes: bot.nodes,
	}

	bot.logStats(result)
	return result, nil
}

// alphaBeta returns the value of the board for root with mover to play.
func (bot *Bot) alphaBeta(b *othello.Board, root, mover othello.Cell, depth, alpha, beta int) int {
	bot.nodes++

	if depth == 0 || othello.IsGameOver(b) {
		return leafScore(b, root)
	}

	moves := orderedMoves(b, mover)

	// No pass handling here: a blocked mover gets the static value.
	if len(moves) == 0 {
		return leafScore(b, root)
	}

	if mover == root {
		value := -infinity
		for _, move := range moves {
			try(b, move, mover, func() {
				value = max(value, bot.alphaBeta(b, root, mover.Opponent(), depth-1, alpha, beta))
			})

			alpha = max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := infinity
	for _, move := range moves {
		try(b, move, mover, func() {
			value = min(value, bot.alphaBeta(b, root, mover.Opponent(), depth-1, alpha, beta))
		})

		beta = min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value
}

// Nodes returns the number of nodes visited by the last search.
func (bot *Bot) Nodes() uint64 {
	return bot.nodes
}

func (bot *Bot) logStats(result Result) {
	elapsedSeconds := time.Since(bot.startTime).Seconds()

	nodesPerSecond := int64(0)
	if elapsedSeconds > 0.000001 {
		nodesPerSecond = int64(float64(bot.nodes) / elapsedSeconds)
	}

	slog.Debug("search done",
		"move", result.Move.String(),
		"score", result.Score,
		"depth", result.Depth,
		"nodes", bot.nodes,
		"seconds", elapsedSeconds,
		"nodes_per_second", nodesPerSecond,
	)
}
