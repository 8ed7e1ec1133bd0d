package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/lk16/othello/internal/models"
)

// MemoryGameRepository keeps games in a map.
type MemoryGameRepository struct {
	// data stores the underlying map
	data map[uuid.UUID]models.GameRecord

	// dataMutex protects data
	dataMutex sync.Mutex
}

// NewMemoryGameRepository creates an empty in-memory repository.
func NewMemoryGameRepository() *MemoryGameRepository {
	return &MemoryGameRepository{
		data: make(map[uuid.UUID]models.GameRecord),
	}
}

func (repo *MemoryGameRepository) Create(_ context.Context, record models.GameRecord) error {
	repo.dataMutex.Lock()
	defer repo.dataMutex.Unlock()

	if _, ok := repo.data[record.ID]; ok {
		return fmt.Errorf("game %s already exists", record.ID)
	}

	record.Moves = slices.Clone(record.Moves)
	repo.data[record.ID] = record
	return nil
}

func (repo *MemoryGameRepository) Get(_ context.Context, id uuid.UUID) (models.GameRecord, error) {
	repo.dataMutex.Lock()
	defer repo.dataMutex.Unlock()

	record, ok := repo.data[id]
	if !ok {
		return models.GameRecord{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	record.Moves = slices.Clone(record.Moves)
	return record, nil
}

func (repo *MemoryGameRepository) Update(_ context.Context, record models.GameRecord, previousMoves int) error {
	repo.dataMutex.Lock()
	defer repo.dataMutex.Unlock()

	found, ok := repo.data[record.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, record.ID)
	}

	if len(found.Moves) != previousMoves {
		return fmt.Errorf("%w: %s", ErrGameConflict, record.ID)
	}

	found.Moves = slices.Clone(record.Moves)
	found.UpdatedAt = record.UpdatedAt
	repo.data[record.ID] = found
	return nil
}

// Len returns the number of stored games.
func (repo *MemoryGameRepository) Len() int {
	repo.dataMutex.Lock()
	defer repo.dataMutex.Unlock()

	return len(repo.data)
}
