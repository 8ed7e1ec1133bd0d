package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/evaluate"
	"github.com/lk16/othello/internal/othello"
)

type searchFunc func(b *othello.Board, player othello.Cell) (evaluate.Result, error)

func main() {
	height := flag.Int("height", 8, "board height, must be even")
	width := flag.Int("width", 8, "board width, must be even")
	depth := flag.Int("depth", evaluate.DefaultDepth, "search depth in plies, the root move included")
	parallel := flag.Bool("parallel", false, "search root moves in parallel")
	prune := flag.Bool("prune", true, "use alpha-beta pruning, plain minimax otherwise")
	quiet := flag.Bool("quiet", false, "only print the final board")
	flag.Parse()

	if err := config.LoadDotEnv(""); err != nil {
		slog.Error("Failed to load dotenv file", "error", err)
		os.Exit(1)
	}

	config.SetLogLevel()

	game, err := othello.NewGame(*height, *width)
	if err != nil {
		slog.Error("Failed to create game", "error", err)
		os.Exit(1)
	}

	search := newSearch(*depth, *parallel, *prune)
	startTime := time.Now()

	for !game.IsOver() {
		turn := game.Turn()

		result, err := search(game.Board(), turn)
		if err != nil {
			slog.Error("Search failed", "error", err)
			os.Exit(1)
		}

		if err = game.PushMove(result.Move); err != nil {
			slog.Error("Bot picked an illegal move", "move", result.Move, "error", err)
			os.Exit(1)
		}

		if !*quiet {
			fmt.Printf("%s plays %s (score %d, %d nodes)\n", turn, result.Move, result.Score, result.Nodes)
			game.Board().Print(game.Turn())
			fmt.Println()
		}
	}

	if *quiet {
		game.Board().Print(othello.EMPTY)
	}

	scores := game.Scores()
	fmt.Printf("black: %d white: %d passes: %d time: %s\n", scores.Black, scores.White, game.Passes(), time.Since(startTime))

	if winner := game.Winner(); winner != othello.EMPTY {
		fmt.Printf("%s wins\n", winner)
	} else {
		fmt.Println("draw")
	}
}

func newSearch(depth int, parallel, prune bool) searchFunc {
	switch {
	case !prune:
		return func(b *othello.Board, player othello.Cell) (evaluate.Result, error) {
			return evaluate.Minimax(b, player, depth)
		}
	case parallel:
		return func(b *othello.Board, player othello.Cell) (evaluate.Result, error) {
			return evaluate.PickBestTurnParallel(context.Background(), b, player, depth)
		}
	default:
		bot := evaluate.NewBot(depth)
		return bot.Search
	}
}
