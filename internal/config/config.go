// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort    int
	DatabasePath  string
	JWTSecret     string
	TokenDuration time.Duration
	CORSOrigin    string
}

// Load reads configuration from environment variables, applying defaults
// for everything except JWT_SECRET, which must be set.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	durationStr := getEnv("TOKEN_DURATION", "24h")
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_DURATION %q: %w", durationStr, err)
	}

	return &Config{
		ServerPort:    port,
		DatabasePath:  getEnv("DB_PATH", "./data/splitcart.db"),
		JWTSecret:     secret,
		TokenDuration: duration,
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}, nil
}

// getEnv returns an environment variable or a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
