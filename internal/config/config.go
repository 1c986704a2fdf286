package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all process configuration, loaded from the environment.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	RedisURL string `envconfig:"REDIS_URL" default:"localhost:6379"`

	// Worker settings.
	WorkerID    string `envconfig:"WORKER_ID"`
	QueueName   string `envconfig:"QUEUE_NAME" default:"generation-requests"`
	LockTTLSecs int    `envconfig:"LOCK_TTL_SECONDS" default:"30"`

	// Console/CLI settings.
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured level string to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
