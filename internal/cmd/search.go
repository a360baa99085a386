package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewSearchCommand creates and returns the search subcommand
func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>...",
		Short: "Find sections by title",
		Long: `Print every section whose title contains the query, ignoring case.

Each line starts with the sheet index and section number, so
"rustcheat <sheet> <section>" prints the match.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.browser.ShowSearch(strings.Join(args, " "))
		},
	}
}
