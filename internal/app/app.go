package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/fitcal/internal/config"
	"github.com/thenoetrevino/fitcal/internal/database"
	workoutservice "github.com/thenoetrevino/fitcal/internal/services/workout"
)

// App holds all application services and provides dependency injection.
// This is the main application container shared by the TUI and the CLI.
type App struct {
	// Storage backend holding the workout snapshot
	kv database.KeyValueStore

	// Config is the loaded configuration; never nil
	Config *config.Config

	// Service layer (business logic)
	WorkoutService workoutservice.Service
}

// New creates a new App over kv and loads the workout snapshot.
func New(ctx context.Context, kv database.KeyValueStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}

	serviceOpts := []workoutservice.Option{workoutservice.WithLogger(cfg.logger)}
	if cfg.clock != nil {
		serviceOpts = append(serviceOpts, workoutservice.WithClock(cfg.clock))
	}

	svc := workoutservice.NewService(kv, serviceOpts...)
	svc.Load(ctx)

	return &App{
		kv:             kv,
		Config:         cfg.config,
		WorkoutService: svc,
	}
}

// Open selects the storage backend named by cfg and builds the App on it
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	kv, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return New(ctx, kv, append([]Option{WithConfig(cfg)}, opts...)...), nil
}

// OpenStorage opens the configured key-value backend
func OpenStorage(ctx context.Context, cfg *config.Config) (database.KeyValueStore, error) {
	path, err := cfg.StoragePath()
	if err != nil {
		return nil, err
	}

	switch cfg.Storage.Backend {
	case config.BackendFile:
		kv, err := database.NewFileStore(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		slog.Debug("using file storage", "path", kv.Path())
		return kv, nil
	default:
		kv, err := database.OpenSQLiteStore(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		slog.Debug("using sqlite storage", "path", path)
		return kv, nil
	}
}

// Close releases the storage backend.
func (a *App) Close() error {
	if a.kv == nil {
		return nil
	}
	return a.kv.Close()
}
