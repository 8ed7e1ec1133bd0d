package othello

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidMoves_StandardOpening(t *testing.T) {
	b := NewBoardStart()

	require.Equal(t, []Position{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, slices.Collect(ValidMoves(b, BLACK)))
	require.Equal(t, []Position{{2, 4}, {3, 5}, {4, 2}, {5, 3}}, slices.Collect(ValidMoves(b, WHITE)))
}

func TestValidMoves_Recomputed(t *testing.T) {
	b := NewBoardStart()
	moves := ValidMoves(b, WHITE)

	before := slices.Collect(moves)
	require.NoError(t, b.PutDisc(Position{2, 3}, BLACK))
	after := slices.Collect(moves)

	require.NotEqual(t, before, after)
	require.Equal(t, []Position{{2, 2}, {2, 4}, {4, 2}}, after)
}

func TestIsValidMove(t *testing.T) {
	b := NewBoardStart()

	tests := []struct {
		name   string
		pos    Position
		player Cell
		want   bool
	}{
		{name: "legal", pos: Position{2, 3}, player: BLACK, want: true},
		{name: "legal for white", pos: Position{2, 4}, player: WHITE, want: true},
		{name: "occupied", pos: Position{3, 3}, player: BLACK, want: false},
		{name: "out of bounds", pos: Position{-1, 3}, player: BLACK, want: false},
		{name: "far from discs", pos: Position{0, 0}, player: BLACK, want: false},
		{name: "adjacent but flips nothing", pos: Position{2, 2}, player: BLACK, want: false},
		{name: "empty player", pos: Position{2, 3}, player: EMPTY, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, IsValidMove(b, test.pos, test.player))
		})
	}
}

func TestIsGameOver(t *testing.T) {
	tests := []struct {
		name          string
		board         string
		wantBlackPlay bool
		wantWhitePlay bool
		wantOver      bool
	}{
		{name: "start", board: NewBoardStart().String(), wantBlackPlay: true, wantWhitePlay: true, wantOver: false},
		{name: "full board", board: "BB/WW", wantBlackPlay: false, wantWhitePlay: false, wantOver: true},
		{name: "one colour left", board: "BB../....", wantBlackPlay: false, wantWhitePlay: false, wantOver: true},
		{name: "only black can move", board: "BW../....", wantBlackPlay: true, wantWhitePlay: false, wantOver: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := ParseBoard(test.board)
			require.NoError(t, err)

			require.Equal(t, test.wantBlackPlay, CanPlay(b, BLACK))
			require.Equal(t, test.wantWhitePlay, CanPlay(b, WHITE))
			require.Equal(t, test.wantOver, IsGameOver(b))
		})
	}
}

func TestIsGameOver_RandomGames(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for range 20 {
		b := NewBoardMust(6, 6)
		player := BLACK

		for {
			blackCan, whiteCan := CanPlay(b, BLACK), CanPlay(b, WHITE)
			require.Equal(t, !blackCan && !whiteCan, IsGameOver(b))

			if IsGameOver(b) {
				break
			}

			if move, ok := randomMove(rng, b, player); ok {
				require.NoError(t, b.PutDisc(move, player))
			}
			player = player.Opponent()
		}
	}
}

func TestGetScores(t *testing.T) {
	b, err := ParseBoard("BBW./W...")
	require.NoError(t, err)

	scores := GetScores(b)
	require.Equal(t, Scores{Black: 2, White: 2, Empty: 4}, scores)
	require.Equal(t, 2, scores.Of(BLACK))
	require.Equal(t, 0, scores.Diff(WHITE))
}

func TestPlay(t *testing.T) {
	b := NewBoardStart()

	outcome := Play(b, Position{0, 0}, BLACK)
	require.Equal(t, Rejected, outcome)
	require.Zero(t, b.HistoryLen())

	outcome = Play(b, Position{2, 3}, BLACK)
	require.True(t, outcome.Applied)
	require.Equal(t, 1, outcome.Flipped)
	require.Equal(t, 1, b.HistoryLen())

	outcome = Play(b, Position{2, 3}, WHITE)
	require.False(t, outcome.Applied)
}
