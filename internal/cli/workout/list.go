package workout

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fitcal/internal/cli"
	"github.com/thenoetrevino/fitcal/internal/cli/styles"
	"github.com/thenoetrevino/fitcal/internal/models"
	"github.com/thenoetrevino/fitcal/internal/store"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded workouts",
		Long: `List workouts for one day, one month, or everything recorded.

Examples:
  fitcal list --date=2024-03-15
  fitcal list --month=2024-03
  fitcal list --json
`,
		RunE: runList,
	}

	cmd.Flags().String("date", "", "Only this day (YYYY-MM-DD, today or yesterday)")
	cmd.Flags().String("month", "", "Only this month (YYYY-MM)")
	cmd.MarkFlagsMutuallyExclusive("date", "month")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dateFlag, _ := cmd.Flags().GetString("date")
	monthFlag, _ := cmd.Flags().GetString("month")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
	now := cli.Now()
	today := models.DateOf(now)

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

	current := cliInstance.App.WorkoutService.Store()

	var dates []models.Date
	switch {
	case cmd.Flags().Changed("date"):
		date, err := cli.ParseDateFlag(dateFlag, today)
		if err != nil {
			return formatter.FailWith(err)
		}
		dates = []models.Date{date}
	case cmd.Flags().Changed("month"):
		month, err := cli.ParseMonthFlag(monthFlag, today)
		if err != nil {
			return formatter.FailWith(err)
		}
		for _, d := range current.Dates() {
			if d.SameMonth(month) {
				dates = append(dates, d)
			}
		}
	default:
		dates = current.Dates()
	}

	entries := collect(current, dates)

	// Quiet mode: just print IDs
	if quietMode {
		for _, e := range entries {
			fmt.Printf("%d\n", e.ID)
		}
		return nil
	}

	// JSON output
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"count":   len(entries),
			"entries": entries,
		})
	}

	// Human-readable output
	if len(entries) == 0 {
		fmt.Println("No workouts found")
		return nil
	}

	fmt.Printf("Found %d workouts:\n", len(entries))
	for _, d := range dates {
		dayEntries := current.EntriesFor(d)
		if len(dayEntries) == 0 {
			continue
		}
		fmt.Println(styles.SectionStyle.Render(fmt.Sprintf("%s (%s)", d, d.Weekday())))
		for _, e := range dayEntries {
			age := humanize.RelTime(e.CreatedAt, now, "ago", "from now")
			fmt.Printf("  %s %s\n", styles.RenderEntryLine(e), styles.SubtitleStyle.Render("· "+age))
		}
	}
	return nil
}

// collect flattens the entries of dates in order
func collect(s store.Store, dates []models.Date) []cli.EntryOutput {
	out := make([]cli.EntryOutput, 0)
	for _, d := range dates {
		for _, e := range s.EntriesFor(d) {
			out = append(out, cli.NewEntryOutput(d, e))
		}
	}
	return out
}
