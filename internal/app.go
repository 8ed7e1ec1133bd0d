package internal

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/middleware"
	"github.com/lk16/othello/internal/play"
	"github.com/lk16/othello/internal/repository"
	"github.com/lk16/othello/internal/routes"
	"github.com/lk16/othello/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 1024 * 1024 // 1MB
	initTimeout         = 10 * time.Second
)

// SetupApp loads the configuration, connects to the configured services and creates the app.
// It exits the process when any of this fails.
func SetupApp() (*fiber.App, *config.ServerConfig, *services.Services) {
	cfg := config.LoadServerConfig()

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	svc, err := services.InitServices(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	if svc.Postgres != nil {
		if err = repository.NewPostgresGameRepository(svc.Postgres).EnsureSchema(ctx); err != nil {
			slog.Error("Failed to create schema", "error", err)
			os.Exit(1)
		}
	}

	return NewApp(cfg, svc), cfg, svc
}

// NewApp creates the Fiber app on top of already initialized services.
func NewApp(cfg *config.ServerConfig, svc *services.Services) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	playService := play.NewService(
		repository.NewGameRepository(svc),
		repository.NewBestMoveCache(svc.Redis),
		cfg.SearchDepth,
		cfg.BoardHeight,
		cfg.BoardWidth,
	)

	// Setup connections to external services and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", svc)
		c.Locals("config", cfg)
		c.Locals("play", playService)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging(os.Stdout))

	// Setup all routes
	routes.SetupRoutes(app, middleware.AuthOrToken(cfg))

	return app
}
