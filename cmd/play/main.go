package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lk16/othello/internal/client"
	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/evaluate"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/play"
	"github.com/lk16/othello/internal/repository"
)

// games is implemented by the in-process play service and by the API client.
type games interface {
	CreateGame(ctx context.Context, height, width int) (models.GameResponse, error)
	PlayMove(ctx context.Context, id string, pos othello.Position) (models.GameResponse, error)
	BotMove(ctx context.Context, id string) (models.BotMoveResponse, error)
	Undo(ctx context.Context, id string) (models.GameResponse, error)
}

type localGames struct {
	service *play.Service
}

func (l *localGames) CreateGame(ctx context.Context, height, width int) (models.GameResponse, error) {
	return l.service.CreateGame(ctx, models.CreateGameRequest{Height: height, Width: width})
}

func (l *localGames) PlayMove(ctx context.Context, id string, pos othello.Position) (models.GameResponse, error) {
	return l.service.PlayMove(ctx, id, models.MoveRequest{Row: pos.Row, Col: pos.Col})
}

func (l *localGames) BotMove(ctx context.Context, id string) (models.BotMoveResponse, error) {
	return l.service.BotMove(ctx, id)
}

func (l *localGames) Undo(ctx context.Context, id string) (models.GameResponse, error) {
	return l.service.Undo(ctx, id)
}

func main() {
	color := flag.String("color", "black", "the color you play: black or white")
	height := flag.Int("height", 8, "board height, must be even")
	width := flag.Int("width", 8, "board width, must be even")
	depth := flag.Int("depth", evaluate.DefaultDepth, "bot search depth, ignored with -server")
	remote := flag.Bool("server", false, "play against the server at OTHELLO_SERVER_URL")
	flag.Parse()

	if err := config.LoadDotEnv(""); err != nil {
		slog.Error("Failed to load dotenv file", "error", err)
		os.Exit(1)
	}

	config.SetLogLevel()

	human, err := othello.ParseCell(*color)
	if err != nil {
		slog.Error("Invalid color", "error", err)
		os.Exit(1)
	}

	var g games
	if *remote {
		g = client.NewClient(config.LoadClientConfig())
	} else {
		service := play.NewService(
			repository.NewMemoryGameRepository(),
			repository.NewBestMoveCache(nil),
			*depth, *height, *width,
		)
		g = &localGames{service: service}
	}

	if err = run(context.Background(), g, human, *height, *width); err != nil {
		slog.Error("Game failed", "error", err)
		os.Exit(1)
	}
}

func printState(state models.GameResponse) error {
	board, err := othello.ParseBoard(state.Board)
	if err != nil {
		return err
	}

	turn, err := othello.ParseCell(state.Turn)
	if err != nil {
		turn = othello.EMPTY
	}

	board.Print(turn)
	fmt.Printf("black: %d white: %d\n", state.Scores.Black, state.Scores.White)
	return nil
}

func run(ctx context.Context, g games, human othello.Cell, height, width int) error {
	state, err := g.CreateGame(ctx, height, width)
	if err != nil {
		return err
	}

	input := bufio.NewScanner(os.Stdin)

	for !state.Over {
		if err = printState(state); err != nil {
			return err
		}

		if state.Turn != human.String() {
			bot, err := g.BotMove(ctx, state.ID)
			if err != nil {
				return err
			}
			fmt.Printf("bot plays %s\n\n", bot.Result.Move.Square())
			state = bot.Game
			continue
		}

		fmt.Print("your move (e.g. d3, undo, quit): ")
		if !input.Scan() {
			return input.Err()
		}

		command := strings.TrimSpace(input.Text())
		switch command {
		case "quit":
			return nil
		case "undo":
			state, err = undoTurn(ctx, g, state, human)
		default:
			var pos othello.Position
			if pos, err = othello.ParseSquare(command); err == nil {
				var next models.GameResponse
				if next, err = g.PlayMove(ctx, state.ID, pos); err == nil {
					state = next
				}
			}
		}

		if err != nil {
			fmt.Printf("%s\n\n", err)
		}
	}

	if err = printState(state); err != nil {
		return err
	}

	fmt.Printf("game over, winner: %s\n", state.Winner)
	return nil
}

// undoTurn takes back moves until it is the human's turn again.
func undoTurn(ctx context.Context, g games, state models.GameResponse, human othello.Cell) (models.GameResponse, error) {
	for {
		next, err := g.Undo(ctx, state.ID)
		if errors.Is(err, othello.ErrEmptyHistory) {
			return state, nil
		}
		if err != nil {
			return state, err
		}

		state = next
		if state.Turn == human.String() {
			return state, nil
		}
	}
}
