package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/lk16/othello/internal/othello"
)

const (
	DefaultServerHost  = "localhost"
	DefaultServerPort  = "3000"
	DefaultSearchDepth = 3
	DefaultBoardSize   = 8
	MaxSearchDepth     = 8
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
	SearchDepth       int
	BoardHeight       int
	BoardWidth        int
}

// LoadServerConfig loads configuration from environment variables.
// Postgres and Redis are optional. Without them games are kept in memory and bot moves are not cached.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvDefault("OTHELLO_SERVER_HOST", DefaultServerHost),
		ServerPort:        getEnvDefault("OTHELLO_SERVER_PORT", DefaultServerPort),
		RedisURL:          os.Getenv("OTHELLO_REDIS_URL"),
		PostgresURL:       os.Getenv("OTHELLO_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("OTHELLO_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("OTHELLO_BASIC_AUTH_PASS"),
		Token:             getEnvMust("OTHELLO_TOKEN"),
		Prefork:           getEnvBoolDefault("OTHELLO_PREFORK", false),
		SearchDepth:       getEnvIntDefault("OTHELLO_SEARCH_DEPTH", DefaultSearchDepth, 1, MaxSearchDepth),
		BoardHeight:       getEnvIntDefault("OTHELLO_BOARD_HEIGHT", DefaultBoardSize, 2, othello.MaxBoardSize),
		BoardWidth:        getEnvIntDefault("OTHELLO_BOARD_WIDTH", DefaultBoardSize, 2, othello.MaxBoardSize),
	}
}

// ClientConfig holds the details needed to talk to a running server.
type ClientConfig struct {
	ServerURL string
	Token     string
}

// LoadClientConfig loads the client configuration from environment variables.
func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL: getEnvMust("OTHELLO_SERVER_URL"),
		Token:     getEnvMust("OTHELLO_TOKEN"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBoolDefault(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

func getEnvIntDefault(key string, fallback, lowest, highest int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < lowest || parsed > highest {
		slog.Error("Cannot load environment variable, it must be an integer in range", "key", key, "value", value, "min", lowest, "max", highest)
		os.Exit(1)
	}

	return parsed
}
