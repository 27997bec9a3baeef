package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL        string
	AVKey        string
	AnthropicKey string // empty disables the generative tiers
	APIKey       string // empty disables request authentication
	Port         string
	CacheVersion int
}

// Load reads configuration from the environment. A .env file is loaded
// first when present (development convenience; ignored in production).
func Load() (*Config, error) {
	_ = godotenv.Load()

	pgURL := os.Getenv("PG_URL")
	if pgURL == "" {
		return nil, fmt.Errorf("PG_URL environment variable is required")
	}

	avKey := os.Getenv("AV_KEY")
	if avKey == "" {
		return nil, fmt.Errorf("AV_KEY environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cacheVersion := 1
	if v := os.Getenv("CACHE_VERSION"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("CACHE_VERSION must be a positive integer, got %q", v)
		}
		cacheVersion = parsed
	}

	return &Config{
		PGURL:        pgURL,
		AVKey:        avKey,
		AnthropicKey: os.Getenv("ANTHROPIC_KEY"),
		APIKey:       os.Getenv("API_KEY"),
		Port:         port,
		CacheVersion: cacheVersion,
	}, nil
}
