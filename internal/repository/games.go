package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/services"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameConflict = errors.New("game was modified concurrently")
)

// GameRepository stores games.
type GameRepository interface {
	// Create stores a new game.
	Create(ctx context.Context, record models.GameRecord) error

	// Get loads a game by ID.
	Get(ctx context.Context, id uuid.UUID) (models.GameRecord, error)

	// Update replaces the moves of a game, provided it still has previousMoves moves stored.
	Update(ctx context.Context, record models.GameRecord, previousMoves int) error
}

// NewGameRepository returns a Postgres backed repository when Postgres is configured
// and an in-memory repository otherwise.
func NewGameRepository(services *services.Services) GameRepository {
	if services.Postgres != nil {
		return NewPostgresGameRepository(services.Postgres)
	}
	return NewMemoryGameRepository()
}
