package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fitcal/internal/cli"
	"github.com/thenoetrevino/fitcal/internal/cli/workout"
	"github.com/thenoetrevino/fitcal/internal/launcher"
)

// NewRootCmd builds the fitcal command tree.
// Without a subcommand it launches the calendar TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fitcal",
		Short: "fitcal - a terminal workout calendar",
		Long: `fitcal is a terminal fitness-tracking calendar.
Run it without arguments to browse the month and log workouts interactively,
or use the subcommands to record and query workouts from scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := launcher.Launch(); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				return cli.WithExitCode(cli.ExitError, err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(workout.Commands()...)

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
// Errors cobra raises itself (unknown flags, missing required flags,
// conflicting flags) are usage errors; commands report their own failures.
func Execute() int {
	return run(NewRootCmd())
}

func run(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	fmt.Fprintln(os.Stderr, "Run 'fitcal --help' for usage.")
	return cli.ExitUsage
}
