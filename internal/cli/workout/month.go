package workout

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fitcal/internal/calendar"
	"github.com/thenoetrevino/fitcal/internal/cli"
	"github.com/thenoetrevino/fitcal/internal/cli/styles"
	"github.com/thenoetrevino/fitcal/internal/models"
	"github.com/thenoetrevino/fitcal/internal/store"
)

// MonthCmd returns the month subcommand
func MonthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print a month calendar with workout counts",
		Long: `Print the month grid with a dot per workout (at most three per day).

Examples:
  fitcal month
  fitcal month --month=2024-02 --json
`,
		RunE: runMonth,
	}

	cmd.Flags().String("month", "", "Month as YYYY-MM (defaults to the current month)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (dates with workouts only)")

	return cmd
}

// DaySummary is the JSON shape of one day of the month
type DaySummary struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func runMonth(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	monthFlag, _ := cmd.Flags().GetString("month")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
	today := models.DateOf(cli.Now())

	month, err := cli.ParseMonthFlag(monthFlag, today)
	if err != nil {
		return formatter.FailWith(err)
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

	current := cliInstance.App.WorkoutService.Store()
	weekStart := cliInstance.App.Config.WeekStartDay()

	if quietMode {
		for _, d := range current.Dates() {
			if d.SameMonth(month) {
				fmt.Println(d)
			}
		}
		return nil
	}

	if jsonOutput {
		days := make([]DaySummary, 0, models.DaysInMonth(month.Year, month.Month))
		total := 0
		for d := month.FirstOfMonth(); d.SameMonth(month); d = d.AddDays(1) {
			n := current.Count(d)
			total += n
			days = append(days, DaySummary{Date: d.String(), Count: n})
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":    true,
			"month":      month.MonthString(),
			"week_start": weekStart.String(),
			"total":      total,
			"days":       days,
		})
	}

	fmt.Print(RenderMonth(current, month, today, weekStart))
	return nil
}

// RenderMonth renders the month grid as text, one week per line.
// Each day shows its number followed by up to three dots.
func RenderMonth(s store.Store, month, today models.Date, weekStart time.Weekday) string {
	const cellWidth = 6

	var b strings.Builder
	title := fmt.Sprintf("%s %d", month.Month, month.Year)
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	for _, h := range calendar.WeekdayHeaders(weekStart) {
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%-*s", cellWidth, h)))
	}
	b.WriteString("\n")

	for _, week := range calendar.Rows(calendar.DeriveMonthGridFrom(month, weekStart)) {
		for _, cell := range week {
			if !cell.Valid {
				b.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			dots := min(s.Count(cell.Date), models.MaxIndicatorDots)
			num := fmt.Sprintf("%2d", cell.Day)
			if cell.IsToday(today) {
				num = styles.TodayStyle.Render(num)
			}
			b.WriteString(num)
			b.WriteString(styles.DotStyle.Render(strings.Repeat("•", dots)))
			b.WriteString(strings.Repeat(" ", cellWidth-2-dots))
		}
		b.WriteString("\n")
	}
	return b.String()
}
