package workout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fitcal/internal/cli/styles"
	"github.com/thenoetrevino/fitcal/internal/models"
)

// TypesCmd returns the types subcommand
func TypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the workout types",
		RunE:  runTypes,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (names only)")

	return cmd
}

func runTypes(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	types := models.WorkoutTypes()

	if jsonOutput {
		names := make([]string, len(types))
		for i, wt := range types {
			names[i] = wt.String()
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"types":   names,
		})
	}

	for i, wt := range types {
		if quietMode {
			fmt.Println(wt)
			continue
		}
		fmt.Printf("%d  %s\n", i+1, styles.RenderTypeChip(wt))
	}
	return nil
}
