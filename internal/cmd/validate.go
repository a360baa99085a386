package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/rustcheat/internal/display"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every sheet splits into sections",
		Long: `Parse every bundled and user sheet and report its section count.

Sheets that fail to parse are silently left out of the sheet list, so use this
command after adding sheets to --sheets-dir.

Exit code: 0 if every sheet parses, 1 otherwise`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.validateSheets(cmd.OutOrStdout())
		},
	}
}

func (a *app) validateSheets(out io.Writer) error {
	var failed int
	var empty []string

	for i, doc := range a.index.Documents() {
		_, parsed, err := a.browser.Parsed(i)
		if err != nil {
			failed++
			fmt.Fprintf(out, "✗ %s: %v\n", display.SheetTitle(i, doc.Name), err)
			continue
		}
		if parsed.Len() == 0 {
			empty = append(empty, doc.Name)
		}
		fmt.Fprintf(out, "✓ %s: %d sections\n", display.SheetTitle(i, doc.Name), parsed.Len())
	}

	if len(empty) > 0 {
		display.Warning{
			Title:      "Sheets without sections",
			Message:    "These sheets are listed but have an empty outline",
			Sheets:     empty,
			Suggestion: `Start each section with a divider such as "// ----" followed by a header such as "// 1. Title"`,
		}.Display(out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sheets failed to parse", failed, a.index.Len())
	}
	return nil
}
