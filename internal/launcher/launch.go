package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/fitcal/internal/app"
	"github.com/thenoetrevino/fitcal/internal/config"
	"github.com/thenoetrevino/fitcal/internal/logging"
	"github.com/thenoetrevino/fitcal/internal/tui/core"
)

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return err
	}

	// storage cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing storage", "error", err)
		}
	}()

	tuiApp := core.New(ctx, application)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	slog.Info("starting tui", "week_start", cfg.WeekStartDay(), "backend", cfg.Storage.Backend)
	if _, err := p.Run(); err != nil {
		// a signal cancels ctx, which is a normal exit
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
