// Package config loads runtime settings from the environment
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name
const Prefix = "CONVERTER"

// Config holds the application configuration
type Config struct {
	Port             int           `envconfig:"PORT" default:"8080"`
	APIBaseURL       string        `envconfig:"API_BASE_URL" default:"https://api.frankfurter.app"`
	APITimeout       time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
	DefaultTrendDays int           `envconfig:"DEFAULT_TREND_DAYS" default:"7"`
	DarkMode         bool          `envconfig:"DARK_MODE" default:"false"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads an optional .env file from each given path (or ./.env when none
// are given) and then processes CONVERTER_* variables. Missing .env files are
// not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	}
	for _, path := range envFiles {
		_ = godotenv.Load(path)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.DefaultTrendDays <= 0 {
		return nil, fmt.Errorf("%s_DEFAULT_TREND_DAYS must be positive, got %d", Prefix, cfg.DefaultTrendDays)
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("%s_API_BASE_URL must not be empty", Prefix)
	}

	return &cfg, nil
}
