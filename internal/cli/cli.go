package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/fitcal/internal/app"
	"github.com/thenoetrevino/fitcal/internal/cli/styles"
	"github.com/thenoetrevino/fitcal/internal/config"
	"github.com/thenoetrevino/fitcal/internal/logging"
)

type contextKey string

const appKey contextKey = "fitcal.app"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is true when this CLI opened App itself and must close it
	owned bool

	// logFile is the log sink opened by NewCLI, nil when logging is unavailable
	logFile io.Closer
}

// WithApp returns a context carrying an existing App.
// Commands run with this context use it instead of opening storage.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// NewCLI loads the configuration and opens the configured storage
func NewCLI(ctx context.Context) (*CLI, error) {
	// A CLI run still works without its log file
	logFile, _ := logging.Init()

	cfg, err := config.Load()
	if err != nil {
		closeLog(logFile)
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	application, err := app.Open(ctx, cfg)
	if err != nil {
		closeLog(logFile)
		return nil, err
	}
	slog.Debug("cli storage opened", "backend", cfg.Storage.Backend)

	return &CLI{App: application, owned: true, logFile: logFile}, nil
}

// GetCLIFromContext returns a CLI over the App carried by ctx, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	defer closeLog(c.logFile)
	return c.App.Close()
}

func closeLog(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
