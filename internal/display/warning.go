package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning is a yellow notice printed after command output, e.g. for sheets
// that parsed but produced no sections.
type Warning struct {
	Title      string
	Message    string   // optional
	Sheets     []string // optional, listed as a numbered block
	Suggestion string   // optional
}

const indent = "    "

func (w Warning) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚠️  Warning: %s\n", w.Title)

	if w.Message != "" {
		fmt.Fprintf(&b, "%s%s\n", indent, w.Message)
	}

	if n := len(w.Sheets); n > 0 {
		label := "Affected sheets:"
		if n == 1 {
			label = "Affected sheet:"
		}
		fmt.Fprintf(&b, "%s%s\n", indent, label)
		for i, sheet := range w.Sheets {
			fmt.Fprintf(&b, "%s  %d. %s\n", indent, i+1, sheet)
		}
	}

	if w.Suggestion != "" {
		fmt.Fprintf(&b, "%sSuggestion:\n%s%s\n", indent, indent, w.Suggestion)
	}
	return b.String()
}

// Display writes the warning to out in yellow
func (w Warning) Display(out io.Writer) {
	color.New(color.FgYellow).Fprint(out, w.String())
}
