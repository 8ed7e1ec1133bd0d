package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/lk16/othello/internal/client"
	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/tests"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, token string) *client.Client {
	t.Helper()

	server := httptest.NewServer(adaptor.FiberApp(tests.NewTestApp()))
	t.Cleanup(server.Close)

	return client.NewClient(&config.ClientConfig{
		ServerURL: server.URL + "/",
		Token:     token,
	})
}

func TestClient_Game(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, tests.TestToken)

	created, err := c.CreateGame(ctx, 6, 6)
	require.NoError(t, err)
	require.Equal(t, 6, created.Height)
	require.Equal(t, "black", created.Turn)

	loaded, err := c.GetGame(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, loaded)

	played, err := c.PlayMove(ctx, created.ID, created.ValidMoves[0])
	require.NoError(t, err)
	require.Equal(t, "white", played.Turn)
	require.Len(t, played.Moves, 1)

	bot, err := c.BotMove(ctx, created.ID)
	require.NoError(t, err)
	require.Contains(t, played.ValidMoves, bot.Result.Move)
	require.Len(t, bot.Game.Moves, 2)

	undone, err := c.Undo(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, played, undone)
}

func TestClient_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unauthorized", func(t *testing.T) {
		c := newTestClient(t, "wrong")

		_, err := c.CreateGame(ctx, 0, 0)

		var statusErr *client.StatusError
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, tests.TestToken)

		_, err := c.GetGame(ctx, uuid.NewString())

		var statusErr *client.StatusError
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		require.Contains(t, statusErr.Message, "not found")
	})

	t.Run("undo without moves", func(t *testing.T) {
		c := newTestClient(t, tests.TestToken)

		created, err := c.CreateGame(ctx, 0, 0)
		require.NoError(t, err)

		_, err = c.Undo(ctx, created.ID)
		require.ErrorIs(t, err, othello.ErrEmptyHistory)

		var statusErr *client.StatusError
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, http.StatusConflict, statusErr.StatusCode)
	})

	t.Run("illegal move", func(t *testing.T) {
		c := newTestClient(t, tests.TestToken)

		created, err := c.CreateGame(ctx, 0, 0)
		require.NoError(t, err)

		_, err = c.PlayMove(ctx, created.ID, othello.Position{Row: 0, Col: 0})

		var statusErr *client.StatusError
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	})
}
