package play

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lk16/othello/internal/evaluate"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/repository"
)

var ErrInvalidGameID = errors.New("invalid game id")

// Service runs games on behalf of the HTTP and websocket handlers.
// Every call rebuilds the game from the repository, so no board is shared between calls.
type Service struct {
	games  repository.GameRepository
	cache  *repository.BestMoveCache
	depth  int
	height int
	width  int
}

// NewService creates a new Service. Games created without dimensions use height and width.
func NewService(games repository.GameRepository, cache *repository.BestMoveCache, depth, height, width int) *Service {
	return &Service{
		games:  games,
		cache:  cache,
		depth:  depth,
		height: height,
		width:  width,
	}
}

func parseGameID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: %s", ErrInvalidGameID, id)
	}
	return parsed, nil
}

func (s *Service) load(ctx context.Context, id string) (models.GameRecord, *othello.Game, error) {
	gameID, err := parseGameID(id)
	if err != nil {
		return models.GameRecord{}, nil, err
	}

	record, err := s.games.Get(ctx, gameID)
	if err != nil {
		return models.GameRecord{}, nil, err
	}

	game, err := record.Game()
	if err != nil {
		return models.GameRecord{}, nil, err
	}

	return record, game, nil
}

func (s *Service) save(ctx context.Context, record models.GameRecord, game *othello.Game) (models.GameResponse, error) {
	updated := record.WithGame(game)

	if err := s.games.Update(ctx, updated, len(record.Moves)); err != nil {
		return models.GameResponse{}, err
	}

	return models.NewGameResponse(updated, game), nil
}

// CreateGame starts a new game. Boards larger than othello.MaxBoardSize in either direction are rejected.
func (s *Service) CreateGame(ctx context.Context, req models.CreateGameRequest) (models.GameResponse, error) {
	height, width := req.Height, req.Width
	if height == 0 {
		height = s.height
	}
	if width == 0 {
		width = s.width
	}

	if height > othello.MaxBoardSize || width > othello.MaxBoardSize {
		return models.GameResponse{}, fmt.Errorf("%w: %dx%d, height and width must be at most %d",
			othello.ErrInvalidDimensions, height, width, othello.MaxBoardSize)
	}

	game, err := othello.NewGame(height, width)
	if err != nil {
		return models.GameResponse{}, err
	}

	record := models.NewGameRecord(game)
	if err = s.games.Create(ctx, record); err != nil {
		return models.GameResponse{}, err
	}

	slog.Info("created game", "id", record.ID, "height", height, "width", width)
	return models.NewGameResponse(record, game), nil
}

// GetGame returns the state of a game.
func (s *Service) GetGame(ctx context.Context, id string) (models.GameResponse, error) {
	record, game, err := s.load(ctx, id)
	if err != nil {
		return models.GameResponse{}, err
	}

	return models.NewGameResponse(record, game), nil
}

// PlayMove plays a move for the player to move.
func (s *Service) PlayMove(ctx context.Context, id string, req models.MoveRequest) (models.GameResponse, error) {
	record, game, err := s.load(ctx, id)
	if err != nil {
		return models.GameResponse{}, err
	}

	if err = game.PushMove(req.Position()); err != nil {
		return models.GameResponse{}, err
	}

	return s.save(ctx, record, game)
}

// Undo takes back the last move.
func (s *Service) Undo(ctx context.Context, id string) (models.GameResponse, error) {
	record, game, err := s.load(ctx, id)
	if err != nil {
		return models.GameResponse{}, err
	}

	if err = game.PopMove(); err != nil {
		return models.GameResponse{}, err
	}

	return s.save(ctx, record, game)
}

// BotMove lets the bot play for the player to move.
func (s *Service) BotMove(ctx context.Context, id string) (models.BotMoveResponse, error) {
	record, game, err := s.load(ctx, id)
	if err != nil {
		return models.BotMoveResponse{}, err
	}

	if game.IsOver() {
		return models.BotMoveResponse{}, othello.ErrGameOver
	}

	result, cached, err := s.bestMove(ctx, game)
	if err != nil {
		return models.BotMoveResponse{}, err
	}

	if err = game.PushMove(result.Move); err != nil {
		return models.BotMoveResponse{}, fmt.Errorf("bot played an invalid move: %w", err)
	}

	response, err := s.save(ctx, record, game)
	if err != nil {
		return models.BotMoveResponse{}, err
	}

	return models.BotMoveResponse{
		Game:   response,
		Result: result,
		Cached: cached,
	}, nil
}

// bestMove looks up the bot move in the cache and searches on a miss.
func (s *Service) bestMove(ctx context.Context, game *othello.Game) (evaluate.Result, bool, error) {
	board, player := game.Board(), game.Turn()

	result, ok, err := s.cache.Lookup(ctx, board, player, s.depth)
	if err != nil {
		slog.Warn("best move cache lookup failed", "error", err)
	}

	if ok && othello.IsValidMove(board, result.Move, player) {
		return result, true, nil
	}

	result, err = evaluate.PickBestTurnParallel(ctx, board, player, s.depth)
	if err != nil {
		return evaluate.Result{}, false, err
	}

	if err = s.cache.Store(ctx, board, player, result); err != nil {
		slog.Warn("best move cache store failed", "error", err)
	}

	return result, false, nil
}
