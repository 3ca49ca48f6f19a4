// Package workout holds the workout subcommands of the fitcal CLI
package workout

import (
	"github.com/spf13/cobra"
)

// Commands returns every workout subcommand for registration on the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		DeleteCmd(),
		MonthCmd(),
		TypesCmd(),
	}
}
