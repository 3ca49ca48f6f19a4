package workout

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the service
type Option func(*service)

// WithClock replaces time.Now, used for entry ids and timestamps
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithLogger sets the logger for load warnings and persist failures
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// WithStorageKey overrides the key the snapshot is stored under
func WithStorageKey(key string) Option {
	return func(s *service) {
		s.key = key
	}
}
