package ws

import (
	"encoding/json"
	"testing"

	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/play"
	"github.com/lk16/othello/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	service := play.NewService(repository.NewMemoryGameRepository(), repository.NewBestMoveCache(nil), 2, 8, 8)
	return NewHandler(nil, service)
}

func incoming(t *testing.T, event string, id int, data any) *Incoming {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	return &Incoming{Event: event, ID: id, Data: raw}
}

func TestHandler_HandleMessage(t *testing.T) {
	h := newTestHandler()

	out := h.handleMessage(incoming(t, "new_game", 1, models.CreateGameRequest{Height: 6, Width: 6}))
	require.Equal(t, 1, out.ID)
	require.Empty(t, out.Error)

	game, ok := out.Data.(models.GameResponse)
	require.True(t, ok)
	require.Equal(t, 6, game.Width)

	out = h.handleMessage(incoming(t, "play", 2, PlayRequest{GameID: game.ID, Row: 1, Col: 2}))
	require.Empty(t, out.Error)
	played, ok := out.Data.(models.GameResponse)
	require.True(t, ok)
	require.Equal(t, "white", played.Turn)

	out = h.handleMessage(incoming(t, "bot_move", 3, GameRequest{GameID: game.ID}))
	require.Empty(t, out.Error)
	botMove, ok := out.Data.(models.BotMoveResponse)
	require.True(t, ok)
	require.Equal(t, "black", botMove.Game.Turn)

	out = h.handleMessage(incoming(t, "undo", 4, GameRequest{GameID: game.ID}))
	require.Empty(t, out.Error)

	out = h.handleMessage(incoming(t, "state", 5, GameRequest{GameID: game.ID}))
	require.Empty(t, out.Error)
	state, ok := out.Data.(models.GameResponse)
	require.True(t, ok)
	require.Equal(t, played.Board, state.Board)
}

func TestHandler_HandleMessage_Errors(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name  string
		req   *Incoming
		error string
	}{
		{name: "no event", req: &Incoming{ID: 1}, error: "event field is either empty or missing"},
		{name: "unknown event", req: &Incoming{Event: "resign", ID: 2}, error: "unknown event: resign"},
		{name: "bad data", req: &Incoming{Event: "play", ID: 3, Data: json.RawMessage(`"x"`)}, error: "ws event data unmarshal error"},
		{name: "bad game id", req: incoming(t, "state", 4, GameRequest{GameID: "nope"}), error: "invalid game id"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := h.handleMessage(test.req)
			require.Equal(t, test.req.ID, out.ID)
			require.Nil(t, out.Data)
			require.Contains(t, out.Error, test.error)
		})
	}
}
