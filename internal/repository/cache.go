package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lk16/othello/internal/evaluate"
	"github.com/lk16/othello/internal/othello"
	"github.com/redis/go-redis/v9"
)

const (
	bestMoveKeyPrefix = "best_move"
	BestMoveTTL       = 24 * time.Hour
)

// BestMoveCache caches search results in Redis. A cache without a client never hits.
type BestMoveCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewBestMoveCache creates a new BestMoveCache. client may be nil.
func NewBestMoveCache(client *redis.Client) *BestMoveCache {
	return &BestMoveCache{
		redis: client,
		ttl:   BestMoveTTL,
	}
}

func bestMoveKey(b *othello.Board, player othello.Cell, depth int) string {
	return fmt.Sprintf("%s:%d:%s:%s", bestMoveKeyPrefix, depth, player, b)
}

// Lookup returns the cached result for player on b, if any.
func (cache *BestMoveCache) Lookup(ctx context.Context, b *othello.Board, player othello.Cell, depth int) (evaluate.Result, bool, error) {
	if cache.redis == nil {
		return evaluate.Result{}, false, nil
	}

	data, err := cache.redis.Get(ctx, bestMoveKey(b, player, depth)).Bytes()
	if errors.Is(err, redis.Nil) {
		return evaluate.Result{}, false, nil
	}
	if err != nil {
		return evaluate.Result{}, false, fmt.Errorf("error getting cached move: %w", err)
	}

	var result evaluate.Result
	if err = json.Unmarshal(data, &result); err != nil {
		return evaluate.Result{}, false, fmt.Errorf("error unmarshaling cached move: %w", err)
	}

	return result, true, nil
}

// Store caches a search result.
func (cache *BestMoveCache) Store(ctx context.Context, b *othello.Board, player othello.Cell, result evaluate.Result) error {
	if cache.redis == nil {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error marshaling move: %w", err)
	}

	if err = cache.redis.Set(ctx, bestMoveKey(b, player, result.Depth), data, cache.ttl).Err(); err != nil {
		return fmt.Errorf("error caching move: %w", err)
	}

	return nil
}
