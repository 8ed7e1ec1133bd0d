package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/othello/internal/othello"
)

func main() {
	boardString := flag.String("board", othello.NewBoardStart().String(), "the board to show, rows separated by '/'")
	turnString := flag.String("turn", "black", "the player whose moves are marked: black or white")
	flag.Parse()

	board, err := othello.ParseBoard(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	turn, err := othello.ParseCell(*turnString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	board.Print(turn)

	scores := othello.GetScores(board)
	fmt.Printf("black: %d white: %d empty: %d\n", scores.Black, scores.White, scores.Empty)
}
