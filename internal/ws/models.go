package ws

import (
	"encoding/json"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// GameRequest is the data of events that address an existing game.
type GameRequest struct {
	GameID string `json:"game_id"`
}

// PlayRequest is the data of a play event.
type PlayRequest struct {
	GameID string `json:"game_id"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}
