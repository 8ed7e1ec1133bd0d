package models

import (
	"testing"

	"github.com/lk16/othello/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestNewGameResponse(t *testing.T) {
	game, err := othello.NewGame(8, 8)
	require.NoError(t, err)
	require.NoError(t, game.PushMove(othello.Position{Row: 2, Col: 3}))

	record := NewGameRecord(game)
	response := NewGameResponse(record, game)

	require.Equal(t, record.ID.String(), response.ID)
	require.Equal(t, 8, response.Height)
	require.Equal(t, 8, response.Width)
	require.Equal(t, "white", response.Turn)
	require.Equal(t, othello.Scores{Black: 4, White: 1, Empty: 59}, response.Scores)
	require.Equal(t, []othello.Position{{Row: 2, Col: 2}, {Row: 2, Col: 4}, {Row: 4, Col: 2}}, response.ValidMoves)
	require.Equal(t, []int{19}, response.Moves)
	require.False(t, response.Over)
	require.Empty(t, response.Winner)
}

func TestNewGameResponse_Over(t *testing.T) {
	game, err := othello.NewGameFromMoves(2, 2, nil)
	require.NoError(t, err)

	response := NewGameResponse(NewGameRecord(game), game)

	require.True(t, response.Over)
	require.Equal(t, "draw", response.Winner)
	require.Empty(t, response.Turn)
	require.Empty(t, response.ValidMoves)
}
