package workout

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fitcal/internal/cli"
	"github.com/thenoetrevino/fitcal/internal/models"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a workout",
		Long: `Delete a workout entry by id.

The day is looked up from the id when --date is omitted.

Examples:
  fitcal delete --id=1710500000000
  fitcal delete --date=2024-03-15 --id=1710500000000 --json
`,
		RunE: runDelete,
	}

	cmd.Flags().Int64("id", 0, "Entry ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("date", "", "Day of the entry (YYYY-MM-DD)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	entryID, _ := cmd.Flags().GetInt64("id")
	dateFlag, _ := cmd.Flags().GetString("date")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

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

	svc := cliInstance.App.WorkoutService

	var date models.Date
	if dateFlag != "" {
		date, err = models.ParseDate(dateFlag)
		if err != nil {
			return formatter.FailWith(err)
		}
	} else {
		_, found, ok := svc.Store().Find(entryID)
		if !ok {
			return formatter.FailWith(fmt.Errorf("%w: id %d", models.ErrEntryNotFound, entryID))
		}
		date = found
	}

	removed, err := svc.Delete(ctx, date, entryID)
	if err != nil {
		return formatter.FailWith(err)
	}
	if !removed {
		return formatter.FailWith(fmt.Errorf("%w: id %d on %s", models.ErrEntryNotFound, entryID, date))
	}

	// Output success
	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":  true,
			"entry_id": entryID,
			"date":     date.String(),
		})
	}

	fmt.Printf("✓ Workout %d on %s deleted successfully\n", entryID, date)
	return nil
}
