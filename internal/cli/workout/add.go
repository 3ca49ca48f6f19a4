package workout

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fitcal/internal/cli"
	"github.com/thenoetrevino/fitcal/internal/cli/styles"
	"github.com/thenoetrevino/fitcal/internal/models"
	workoutservice "github.com/thenoetrevino/fitcal/internal/services/workout"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a workout",
		Long: `Record a workout on a day.

Examples:
  # Today, no notes
  fitcal add --type=cardio

  # A past day with notes
  fitcal add --type="Rest Day" --date=2024-03-15 --notes="sore legs"

  # Notes from stdin
  cat session.md | fitcal add --type=strength --notes=-

  # Quiet mode for bash capture
  ID=$(fitcal add --type=yoga --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("type", "", "Workout type (required): "+cli.WorkoutTypeList())
	if err := cmd.MarkFlagRequired("type"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("date", "", "Day as YYYY-MM-DD, today or yesterday (defaults to today)")
	cmd.Flags().String("notes", "", "Free-form notes (use - for stdin)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	typeFlag, _ := cmd.Flags().GetString("type")
	dateFlag, _ := cmd.Flags().GetString("date")
	notes, _ := cmd.Flags().GetString("notes")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	wt, err := models.ParseWorkoutType(typeFlag)
	if err != nil {
		return formatter.FailWith(err)
	}

	date, err := cli.ParseDateFlag(dateFlag, models.DateOf(cli.Now()))
	if err != nil {
		return formatter.FailWith(err)
	}

	if notes == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(cli.ExitDataErr, "STDIN_ERROR", fmt.Errorf("failed to read notes from stdin: %w", err), "")
		}
		notes = string(data)
	}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	entry, err := cliInstance.App.WorkoutService.Add(ctx, workoutservice.AddEntryRequest{
		Date:  date,
		Type:  wt,
		Notes: notes,
	})
	if err != nil {
		return formatter.FailWith(err)
	}

	out := cli.NewEntryOutput(date, entry)
	if quietMode || jsonOutput {
		return formatter.Success(out)
	}

	fmt.Fprintf(os.Stdout, "✓ Logged %s on %s (id %d)\n", styles.RenderTypeChip(entry.Type), date, entry.ID)
	return nil
}
