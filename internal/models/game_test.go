package models

import (
	"testing"

	"github.com/lk16/othello/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestMoveList(t *testing.T) {
	moves := MoveList{19, 18, 17}

	value, err := moves.Value()
	require.NoError(t, err)
	require.Equal(t, "{19,18,17}", value)

	var scanned MoveList
	require.NoError(t, scanned.Scan([]byte("{19,18,17}")))
	require.Equal(t, moves, scanned)

	require.NoError(t, scanned.Scan([]byte("{}")))
	require.Empty(t, scanned)

	require.Error(t, scanned.Scan(42))
}

func TestGameRecord_Game(t *testing.T) {
	game, err := othello.NewGame(6, 6)
	require.NoError(t, err)

	record := NewGameRecord(game)
	require.NoError(t, game.PushMove(othello.Position{Row: 1, Col: 2}))

	updated := record.WithGame(game)
	require.Equal(t, record.ID, updated.ID)
	require.Equal(t, MoveList{8}, updated.Moves)

	replayed, err := updated.Game()
	require.NoError(t, err)
	require.True(t, replayed.Board().Equal(game.Board()))

	updated.Moves = MoveList{0}
	_, err = updated.Game()
	require.ErrorIs(t, err, othello.ErrInvalidMove)
}
