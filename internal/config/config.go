// Package config provides configuration for the bookkeeping server. It loads
// configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port string
	// DBPath is the sqlite database file for accounts and transactions.
	DBPath string
	// TokenDBPath is the bbolt database file for bearer tokens.
	TokenDBPath string
	// ChartPath optionally overrides the built-in default chart of accounts
	// with a YAML file.
	ChartPath string
	// Debug enables debug-level logging.
	Debug bool
}

// Load loads configuration from environment variables. It automatically loads
// a .env file from the current directory if available; a custom .env path can
// be given.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Missing .env is fine; plain environment variables still apply.
		_ = godotenv.Load()
	}

	return &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		DBPath:      getEnvOrDefault("DB_PATH", "./data/ledger.db"),
		TokenDBPath: getEnvOrDefault("TOKEN_DB_PATH", "./data/tokens.db"),
		ChartPath:   os.Getenv("CHART_PATH"),
		Debug:       os.Getenv("DEBUG") == "true",
	}, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
