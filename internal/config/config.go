// Package config handles configuration loading and management
// Settings come from environment variables, optionally seeded from a .env file
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	"github.com/keraattin/cardtools/internal/bindb"
	"github.com/keraattin/cardtools/internal/card"
)

// Config holds all configuration settings for the CLI
type Config struct {
	// BinDBPath is the CSV BIN database loaded at startup
	BinDBPath string

	// LogLevel is one of "debug", "info", "warn", "error"
	LogLevel string

	// DefaultBatchSize is how many cards "generate" emits without --count
	DefaultBatchSize int

	// MaxBatchSize caps --count
	MaxBatchSize int

	// ExpiryYearsAhead is the width of the random expiry window
	// Example: 5 means current year +1 .. +5
	ExpiryYearsAhead int
}

// Load reads the configuration from the environment
// A .env file in the working directory or any parent is loaded first;
// variables already set in the environment win over the file
//
// Example:
//
//	cfg := config.Load()
//	if err := config.Validate(cfg); err != nil {
//	    return err
//	}
func Load() *Config {
	loadDotEnv()

	return &Config{
		BinDBPath:        env.GetString("BIN_DB_PATH", bindb.DefaultPath),
		LogLevel:         env.GetString("LOG_LEVEL", "info"),
		DefaultBatchSize: env.GetInt("DEFAULT_BATCH_SIZE", 10),
		MaxBatchSize:     env.GetInt("MAX_BATCH_SIZE", 100),
		ExpiryYearsAhead: env.GetInt("EXPIRY_YEARS_AHEAD", card.DefaultYearsAhead),
	}
}

// loadDotEnv searches for a .env file from the current directory
// up to the root and loads the first one found
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
