package othello

import (
	"fmt"
)

// gameMove is one entry in the move list of a Game.
type gameMove struct {
	pos    Position
	player Cell

	// pass is set for turns skipped because the player had no moves.
	pass bool
}

// Game represents an Othello game, either complete or in progress.
// It drives the turn order on top of a Board, including passes.
type Game struct {
	board *Board
	turn  Cell

	// moves is the list of moves in the game. Pass moves are added automatically.
	moves []gameMove
}

// NewGame creates a new game on a board of the given size. BLACK moves first.
func NewGame(height, width int) (*Game, error) {
	board, err := NewBoard(height, width)
	if err != nil {
		return nil, err
	}

	return &Game{
		board: board,
		turn:  BLACK,
		moves: make([]gameMove, 0),
	}, nil
}

// NewGameFromMoves creates a new game and replays encoded moves (see Position.Index).
// PassMove entries are skipped, passes are derived while replaying.
func NewGameFromMoves(height, width int, moves []int) (*Game, error) {
	game, err := NewGame(height, width)
	if err != nil {
		return nil, err
	}

	for i, index := range moves {
		if index == PassMove {
			continue
		}

		if index < 0 || index >= height*width {
			return nil, fmt.Errorf("%w: move %d has index %d", ErrInvalidMove, i, index)
		}

		if err := game.PushMove(PositionFromIndex(index, width)); err != nil {
			return nil, fmt.Errorf("failed to push move %d: %w", i, err)
		}
	}

	return game, nil
}

// Board returns the board of the game. Callers that mutate it must restore it.
func (g *Game) Board() *Board {
	return g.board
}

// Turn returns the player to move.
func (g *Game) Turn() Cell {
	return g.turn
}

// IsOver returns whether neither player can move.
func (g *Game) IsOver() bool {
	return IsGameOver(g.board)
}

// Scores returns the disc counts.
func (g *Game) Scores() Scores {
	return GetScores(g.board)
}

// Winner returns the player with most discs once the game is over.
// EMPTY is returned for a draw or a game in progress.
func (g *Game) Winner() Cell {
	if !g.IsOver() {
		return EMPTY
	}

	scores := g.Scores()
	switch {
	case scores.Black > scores.White:
		return BLACK
	case scores.White > scores.Black:
		return WHITE
	default:
		return EMPTY
	}
}

// Moves returns the encoded disc moves played so far, passes excluded.
func (g *Game) Moves() []int {
	moves := make([]int, 0, len(g.moves))
	for _, move := range g.moves {
		if !move.pass {
			moves = append(moves, move.pos.Index(g.board.width))
		}
	}
	return moves
}

// Passes returns how many turns were skipped so far.
func (g *Game) Passes() int {
	passes := 0
	for _, move := range g.moves {
		if move.pass {
			passes++
		}
	}
	return passes
}

// PushMove plays pos for the player to move.
func (g *Game) PushMove(pos Position) error {
	if g.IsOver() {
		return ErrGameOver
	}

	if !IsValidMove(g.board, pos, g.turn) {
		return fmt.Errorf("%w: %s for %s", ErrInvalidMove, pos, g.turn)
	}

	if err := g.board.PutDisc(pos, g.turn); err != nil {
		return fmt.Errorf("failed to put disc: %w", err)
	}

	g.moves = append(g.moves, gameMove{pos: pos, player: g.turn})

	opponent := g.turn.Opponent()

	switch {
	case CanPlay(g.board, opponent):
		g.turn = opponent
	case CanPlay(g.board, g.turn):
		// Opponent is blocked but we are not, so the opponent passes.
		g.moves = append(g.moves, gameMove{player: opponent, pass: true})
	default:
		g.turn = opponent
	}

	return nil
}

// PopMove undoes the last disc move and the passes that followed it.
func (g *Game) PopMove() error {
	for len(g.moves) > 0 && g.moves[len(g.moves)-1].pass {
		g.moves = g.moves[:len(g.moves)-1]
	}

	if len(g.moves) == 0 {
		return ErrEmptyHistory
	}

	last := g.moves[len(g.moves)-1]

	if err := g.board.Undo(); err != nil {
		return fmt.Errorf("failed to undo: %w", err)
	}

	g.moves = g.moves[:len(g.moves)-1]
	g.turn = last.player
	return nil
}
