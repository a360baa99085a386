package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/rustcheat/internal/browser"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// UsageMessage describes the accepted argument shapes
const UsageMessage = "Usage: rustcheat [sheet_index] [section_number]"

// UsageError reports a malformed command line.
type UsageError struct {
	Message string
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return e.Message
}

// NewRootCommand creates and returns the root cobra command for rustcheat
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rustcheat [sheet_index] [section_number]",
		Short: "Browse bundled Rust cheat sheets from the terminal",
		Long: `Rustcheat prints Rust cheat sheets, one section at a time.

  rustcheat          list every sheet with its sections
  rustcheat 1        show the outline of sheet 1
  rustcheat 1 3      print section 3 of sheet 1
  rustcheat 1 0      print the whole of sheet 1

Sections are recovered from the sheets themselves: a comment divider line
such as "// ----" followed by a numbered header such as "// 3. Functions"
starts a new section.`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE:    runRoot,
		// Errors are rendered by main so they get the configured colors
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addPersistentFlags(cmd)

	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewExportCommand())

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		return &UsageError{Message: UsageMessage}
	}

	var sheetIndex int
	if len(args) > 0 {
		index, err := parseSheetIndex(args[0])
		if err != nil {
			return err
		}
		sheetIndex = index
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	switch len(args) {
	case 0:
		return a.browser.ListSheets()
	case 1:
		return a.browser.ShowOutline(sheetIndex)
	default:
		if args[1] == "0" {
			return a.browser.ShowFullSheet(sheetIndex)
		}
		return a.browser.ShowSection(sheetIndex, args[1])
	}
}

// parseSheetIndex accepts non-negative decimal integers, optionally with a
// leading '+'
func parseSheetIndex(arg string) (int, error) {
	index, ok := browser.ParseNumber(arg)
	if !ok {
		return 0, &UsageError{Message: "Sheet index must be a positive integer"}
	}
	return index, nil
}
