package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

// DefaultDotEnvPath is the file LoadDotEnv reads when no path is given.
const DefaultDotEnvPath = ".env"

// LoadDotEnv adds the variables of a dotenv file to the environment.
// Variables that are already set are not overwritten. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultDotEnvPath
	}

	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No dotenv file found", "path", path)
		return nil
	}
	return err
}
