package play

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(repository.NewMemoryGameRepository(), repository.NewBestMoveCache(nil), 3, 8, 8)
}

func TestService_CreateGame(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	tests := []struct {
		name       string
		req        models.CreateGameRequest
		wantHeight int
		wantWidth  int
		wantErr    error
	}{
		{name: "defaults", req: models.CreateGameRequest{}, wantHeight: 8, wantWidth: 8, wantErr: nil},
		{name: "custom", req: models.CreateGameRequest{Height: 6, Width: 10}, wantHeight: 6, wantWidth: 10, wantErr: nil},
		{name: "odd", req: models.CreateGameRequest{Height: 5, Width: 6}, wantErr: othello.ErrInvalidDimensions},
		{name: "largest", req: models.CreateGameRequest{Height: 26, Width: 26}, wantHeight: 26, wantWidth: 26, wantErr: nil},
		{name: "too high", req: models.CreateGameRequest{Height: 28, Width: 8}, wantErr: othello.ErrInvalidDimensions},
		{name: "too wide", req: models.CreateGameRequest{Height: 8, Width: 2000}, wantErr: othello.ErrInvalidDimensions},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game, err := s.CreateGame(ctx, test.req)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.wantHeight, game.Height)
			require.Equal(t, test.wantWidth, game.Width)
			require.Equal(t, "black", game.Turn)
			require.Len(t, game.ValidMoves, 4)

			found, err := s.GetGame(ctx, game.ID)
			require.NoError(t, err)
			require.Equal(t, game, found)
		})
	}
}

func TestService_GetGame(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	_, err := s.GetGame(ctx, "not-a-uuid")
	require.ErrorIs(t, err, ErrInvalidGameID)

	_, err = s.GetGame(ctx, uuid.NewString())
	require.ErrorIs(t, err, repository.ErrGameNotFound)
}

func TestService_PlayMoveAndUndo(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	game, err := s.CreateGame(ctx, models.CreateGameRequest{})
	require.NoError(t, err)

	_, err = s.PlayMove(ctx, game.ID, models.MoveRequest{Row: 0, Col: 0})
	require.ErrorIs(t, err, othello.ErrInvalidMove)

	played, err := s.PlayMove(ctx, game.ID, models.MoveRequest{Row: 2, Col: 3})
	require.NoError(t, err)
	require.Equal(t, "white", played.Turn)
	require.Equal(t, []int{19}, played.Moves)
	require.Equal(t, 4, played.Scores.Black)

	undone, err := s.Undo(ctx, game.ID)
	require.NoError(t, err)
	require.Equal(t, game.Board, undone.Board)
	require.Equal(t, "black", undone.Turn)

	_, err = s.Undo(ctx, game.ID)
	require.ErrorIs(t, err, othello.ErrEmptyHistory)
}

func TestService_BotMove(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	game, err := s.CreateGame(ctx, models.CreateGameRequest{Height: 6, Width: 6})
	require.NoError(t, err)

	for !game.Over {
		response, err := s.BotMove(ctx, game.ID)
		require.NoError(t, err)
		require.False(t, response.Cached)
		require.Contains(t, game.ValidMoves, response.Result.Move)
		require.Equal(t, len(game.Moves)+1, len(response.Game.Moves))

		game = response.Game
	}

	require.NotEmpty(t, game.Winner)
	require.Equal(t, 36, game.Scores.Black+game.Scores.White+game.Scores.Empty)

	_, err = s.BotMove(ctx, game.ID)
	require.ErrorIs(t, err, othello.ErrGameOver)
}
