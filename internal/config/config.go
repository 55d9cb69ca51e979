package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Store StoreConfig
	App   AppConfig
}

type StoreConfig struct {
	Path string
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
	Workers  int
}

func Load() (*Config, error) {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	config := &Config{}

	config.Store = StoreConfig{
		Path: getEnv("STORE_PATH", "payroll.db"),
	}

	workers, err := strconv.Atoi(getEnv("PREVIEW_WORKERS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PREVIEW_WORKERS: %w", err)
	}

	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Workers:  workers,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH is required")
	}
	if c.App.Workers < 1 {
		return fmt.Errorf("PREVIEW_WORKERS must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
