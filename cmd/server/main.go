package main

import (
	"log/slog"
	"os"

	"github.com/lk16/othello/internal"
	"github.com/lk16/othello/internal/config"
)

func main() {
	if err := config.LoadDotEnv(""); err != nil {
		slog.Error("Failed to load dotenv file", "error", err)
		os.Exit(1)
	}

	config.SetLogLevel()

	// Setup app
	app, cfg, services := internal.SetupApp()
	defer func() {
		if err := services.Close(); err != nil {
			slog.Error("Failed to close services", "error", err)
		}
	}()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	if err := app.Listen(address); err != nil {
		slog.Error("Server stopped", "error", err)
	}
}
