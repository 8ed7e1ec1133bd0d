package othello

import "errors"

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidState      = errors.New("invalid board state")
	ErrEmptyHistory      = errors.New("no moves to undo")
	ErrNoLegalMoves      = errors.New("no legal moves")
	ErrInvalidMove       = errors.New("invalid move")
	ErrGameOver          = errors.New("game is over")
)
