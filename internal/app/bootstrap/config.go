// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the batch tools need. Values come from the
// environment, with a .env file loaded first when present (godotenv does not
// override variables that are already set).
type Config struct {
	MongoURI      string // MongoDB connection string
	MongoDatabase string // database name within MongoDB
}

const defaultDatabase = "attendance"

// LoadConfig reads configuration before any I/O is attempted. A missing
// MONGODB_URI is fatal here rather than at connect time, so a misconfigured
// run does no partial work.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: os.Getenv("MONGODB_DB"),
	}
	if cfg.MongoURI == "" {
		return Config{}, errors.New("MONGODB_URI is not set (export it or create a .env file)")
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = defaultDatabase
	}
	return cfg, nil
}
