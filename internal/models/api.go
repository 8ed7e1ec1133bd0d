package models

import (
	"github.com/lk16/othello/internal/evaluate"
	"github.com/lk16/othello/internal/othello"
)

// CreateGameRequest represents the payload for creating a game. Zero values use the configured defaults.
type CreateGameRequest struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// MoveRequest represents the payload for playing a move.
type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Position returns the requested position.
func (r MoveRequest) Position() othello.Position {
	return othello.Position{Row: r.Row, Col: r.Col}
}

// GameResponse represents the state of a game.
type GameResponse struct {
	ID         string             `json:"id"`
	Height     int                `json:"height"`
	Width      int                `json:"width"`
	Board      string             `json:"board"`
	Turn       string             `json:"turn"`
	Scores     othello.Scores     `json:"scores"`
	ValidMoves []othello.Position `json:"valid_moves"`
	Moves      []int              `json:"moves"`
	Passes     int                `json:"passes"`
	Over       bool               `json:"over"`
	Winner     string             `json:"winner,omitempty"`
}

// NewGameResponse creates the response for a stored game.
func NewGameResponse(record GameRecord, game *othello.Game) GameResponse {
	board := game.Board()

	validMoves := make([]othello.Position, 0)
	for move := range othello.ValidMoves(board, game.Turn()) {
		validMoves = append(validMoves, move)
	}

	response := GameResponse{
		ID:         record.ID.String(),
		Height:     board.Height(),
		Width:      board.Width(),
		Board:      board.String(),
		Turn:       game.Turn().String(),
		Scores:     game.Scores(),
		ValidMoves: validMoves,
		Moves:      game.Moves(),
		Passes:     game.Passes(),
		Over:       game.IsOver(),
	}

	if response.Over {
		response.Turn = ""
		response.Winner = "draw"
		if winner := game.Winner(); winner != othello.EMPTY {
			response.Winner = winner.String()
		}
	}

	return response
}

// BotMoveResponse represents the response for a bot move.
type BotMoveResponse struct {
	Game   GameResponse    `json:"game"`
	Result evaluate.Result `json:"result"`
	Cached bool            `json:"cached"`
}

// ErrorResponse is the body of failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

type VersionResponse struct {
	Commit string `json:"commit"`
}
