package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/lk16/othello/internal/othello"
)

// MoveList is the list of encoded disc moves of a game. It implements sql.Scanner and driver.Valuer.
type MoveList []int

// Scan implements the sql.Scanner interface for MoveList.
func (m *MoveList) Scan(value interface{}) error {
	var array pq.Int64Array
	if err := array.Scan(value); err != nil {
		return fmt.Errorf("cannot scan %T into MoveList: %w", value, err)
	}

	moves := make([]int, len(array))
	for i, move := range array {
		moves[i] = int(move)
	}
	*m = moves

	return nil
}

// Value implements the driver.Valuer interface for MoveList.
func (m MoveList) Value() (driver.Value, error) {
	array := make(pq.Int64Array, len(m))
	for i, move := range m {
		array[i] = int64(move)
	}
	return array.Value()
}

// GameRecord is a game as it is stored. The board is rebuilt by replaying the moves.
type GameRecord struct {
	ID        uuid.UUID `db:"id"`
	Height    int       `db:"height"`
	Width     int       `db:"width"`
	Moves     MoveList  `db:"moves"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewGameRecord creates a record for a new game.
func NewGameRecord(game *othello.Game) GameRecord {
	now := time.Now().UTC()
	return GameRecord{
		ID:        uuid.New(),
		Height:    game.Board().Height(),
		Width:     game.Board().Width(),
		Moves:     game.Moves(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Game replays the record into a game.
func (r GameRecord) Game() (*othello.Game, error) {
	game, err := othello.NewGameFromMoves(r.Height, r.Width, r.Moves)
	if err != nil {
		return nil, fmt.Errorf("failed to replay game %s: %w", r.ID, err)
	}
	return game, nil
}

// WithGame returns a copy of the record holding the moves of game.
func (r GameRecord) WithGame(game *othello.Game) GameRecord {
	r.Moves = game.Moves()
	r.UpdatedAt = time.Now().UTC()
	return r
}
