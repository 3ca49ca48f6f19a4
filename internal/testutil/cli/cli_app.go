// Package cli holds helpers for CLI command tests.
// It lives apart from testutil so service tests never import the CLI.
package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fitcal/internal/app"
	appcli "github.com/thenoetrevino/fitcal/internal/cli"
	"github.com/thenoetrevino/fitcal/internal/testutil"
)

// FixedNow is the instant CLI tests run at: Friday 2024-03-15 10:00 UTC
var FixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// SetupCLITest creates a memory-backed App whose clock and CLI clock are FixedNow
func SetupCLITest(t *testing.T) (*testutil.MemoryStore, *app.App) {
	t.Helper()
	return SetupCLITestWithData(t, "")
}

// SetupCLITestWithData is SetupCLITest with a raw snapshot seeded before load
func SetupCLITestWithData(t *testing.T, snapshot string) (*testutil.MemoryStore, *app.App) {
	t.Helper()

	kv := testutil.NewMemoryStore()
	if snapshot != "" {
		kv.Put("fitnessWorkouts", snapshot)
	}

	clock := func() time.Time { return FixedNow }
	appInstance := app.New(context.Background(), kv, app.WithClock(clock))

	prevNow := appcli.Now
	appcli.Now = clock
	t.Cleanup(func() {
		appcli.Now = prevNow
	})

	return kv, appInstance
}

// ExecuteCLICommand executes a CLI command with a test app instance
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput executes a CLI command with stdin set to input
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := appcli.WithApp(context.Background(), testApp)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}
