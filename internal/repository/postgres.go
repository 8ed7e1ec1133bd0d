package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lk16/othello/internal/models"
)

const gamesSchema = `
	CREATE TABLE IF NOT EXISTS games (
		id         UUID PRIMARY KEY,
		height     INTEGER NOT NULL,
		width      INTEGER NOT NULL,
		moves      INTEGER[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
`

// PostgresGameRepository stores games in the games table.
type PostgresGameRepository struct {
	db *sqlx.DB
}

// NewPostgresGameRepository creates a new PostgresGameRepository.
func NewPostgresGameRepository(db *sqlx.DB) *PostgresGameRepository {
	return &PostgresGameRepository{db: db}
}

// EnsureSchema creates the games table if it does not exist.
func (repo *PostgresGameRepository) EnsureSchema(ctx context.Context) error {
	if _, err := repo.db.ExecContext(ctx, gamesSchema); err != nil {
		return fmt.Errorf("error creating games table: %w", err)
	}
	return nil
}

func (repo *PostgresGameRepository) Create(ctx context.Context, record models.GameRecord) error {
	query := `
		INSERT INTO games (id, height, width, moves, created_at, updated_at)
		VALUES (:id, :height, :width, :moves, :created_at, :updated_at)
	`

	if _, err := repo.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}
	return nil
}

func (repo *PostgresGameRepository) Get(ctx context.Context, id uuid.UUID) (models.GameRecord, error) {
	query := `
		SELECT id, height, width, moves, created_at, updated_at
		FROM games
		WHERE id = $1
	`

	var record models.GameRecord
	err := repo.db.GetContext(ctx, &record, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.GameRecord{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if err != nil {
		return models.GameRecord{}, fmt.Errorf("error getting game: %w", err)
	}

	return record, nil
}

func (repo *PostgresGameRepository) Update(ctx context.Context, record models.GameRecord, previousMoves int) error {
	query := `
		UPDATE games
		SET moves = $2, updated_at = $3
		WHERE id = $1 AND COALESCE(array_length(moves, 1), 0) = $4
	`

	result, err := repo.db.ExecContext(ctx, query, record.ID, record.Moves, record.UpdatedAt, previousMoves)
	if err != nil {
		return fmt.Errorf("error updating game: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error updating game: %w", err)
	}

	if updated == 1 {
		return nil
	}

	// Tell a missing game apart from a concurrent update.
	if _, err := repo.Get(ctx, record.ID); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", ErrGameConflict, record.ID)
}
