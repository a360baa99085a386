package highlight

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by ConfigureColor
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// IsValidColorMode reports whether mode is a known color mode
func IsValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// ConfigureColor sets fatih/color's global switch for mode and reports whether
// color output is enabled. In auto mode color is used only when out is a
// terminal and NO_COLOR is unset.
func ConfigureColor(mode string, out *os.File) (bool, error) {
	switch mode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	case ColorAuto, "":
		color.NoColor = os.Getenv("NO_COLOR") != "" || !isTerminal(out)
	default:
		return false, fmt.Errorf("invalid color mode %q, must be one of: auto, always, never", mode)
	}
	return !color.NoColor, nil
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewRenderer returns a Highlighter when enabled, otherwise Plain.
func NewRenderer(enabled bool, styleName string) (Renderer, error) {
	if !enabled {
		return Plain{}, nil
	}
	h, err := NewHighlighter(styleName)
	if err != nil {
		return nil, err
	}
	return h, nil
}
