package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/fitcal/internal/config"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	config *config.Config
	logger *slog.Logger
	clock  func() time.Time
}

// WithConfig sets the loaded configuration
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.config = cfg
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

// WithClock replaces time.Now for entry creation
func WithClock(now func() time.Time) Option {
	return func(c *appConfig) {
		c.clock = now
	}
}
