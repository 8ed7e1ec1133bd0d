package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/othello/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services.
// Both connections are optional and nil when not configured.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
}

func InitServices(ctx context.Context, cfg *config.ServerConfig) (*Services, error) {
	services := &Services{}

	if cfg.PostgresURL != "" {
		postgres, err := InitPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		services.Postgres = postgres
	} else {
		slog.Warn("No Postgres URL configured, games are kept in memory")
	}

	if cfg.RedisURL != "" {
		redis, err := InitRedis(ctx, cfg.RedisURL)
		if err != nil {
			_ = services.Close()
			return nil, err
		}
		services.Redis = redis
	} else {
		slog.Warn("No Redis URL configured, bot moves are not cached")
	}

	return services, nil
}

// Close closes all open connections.
func (s *Services) Close() error {
	var errs []error

	if s.Postgres != nil {
		errs = append(errs, s.Postgres.Close())
	}

	if s.Redis != nil {
		errs = append(errs, s.Redis.Close())
	}

	return errors.Join(errs...)
}
