// ABOUTME: Configuration management with environment variable and .env support
// ABOUTME: Defines configuration structures for origin, storage, and logging

package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all client configuration
type Config struct {
	// Origin is the portal server origin every request targets
	Origin string

	// Storage contains local key-value store configuration
	Storage StorageConfig

	// Log contains logging configuration
	Log LogConfig
}

// StorageConfig holds local store backend configuration
type StorageConfig struct {
	// Type specifies the store backend (memory/sqlite/redis)
	Type string

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Backend selects the logger implementation (standard/logrus)
	Backend string

	// Level is the minimum level emitted by the logrus backend
	Level string
}

// LoadFromEnv loads configuration from environment variables. A .env file in
// the working directory is read first when present; real environment
// variables take precedence over it.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Origin: getEnvOrDefault("PORTAL_ORIGIN", "http://localhost:8080"),
		Storage: StorageConfig{
			Type:       getEnvOrDefault("PORTAL_STORAGE", "memory"),
			SQLitePath: getEnvOrDefault("PORTAL_STORAGE_PATH", "portal.db"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("PORTAL_REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("PORTAL_REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("PORTAL_REDIS_DB", 0),
			},
		},
		Log: LogConfig{
			Backend: getEnvOrDefault("PORTAL_LOG_BACKEND", "standard"),
			Level:   getEnvOrDefault("PORTAL_LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Origin == "" {
		return errors.New("origin cannot be empty")
	}

	switch c.Storage.Type {
	case "memory", "sqlite", "redis":
	default:
		return errors.New("storage type must be memory, sqlite, or redis")
	}

	switch c.Log.Backend {
	case "standard", "logrus":
	default:
		return errors.New("log backend must be standard or logrus")
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
