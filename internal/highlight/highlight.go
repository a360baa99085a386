// Package highlight renders sheet text for the terminal.
//
// Code is syntax highlighted as Rust. Section marker lines are not highlighted,
// they are drawn as headers so the outline stays readable inside long sections.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fatih/color"
)

// DefaultStyle is the chroma style used when none is configured
const DefaultStyle = "solarized-dark"

// Renderer turns text into terminal output.
type Renderer interface {
	// Render returns text ready to print, highlighted when supported.
	Render(text string) string
	// RenderHeader formats a header line; emphasized headers are sheet titles.
	RenderHeader(text string, emphasized bool) string
	// RenderError formats a user-facing error message.
	RenderError(message string) string
}

// Highlighter renders Rust source with chroma and headers with fatih/color.
type Highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
	title     *color.Color
	header    *color.Color
}

// NewHighlighter creates a Highlighter using the named chroma style.
func NewHighlighter(styleName string) (*Highlighter, error) {
	if styleName == "" {
		styleName = DefaultStyle
	}
	style, ok := styles.Registry[styleName]
	if !ok {
		return nil, fmt.Errorf("unknown style %q", styleName)
	}

	lexer := lexers.Get("rust")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Highlighter{
		lexer:     chroma.Coalesce(lexer),
		style:     style,
		formatter: formatters.TTY256,
		title:     color.New(color.FgCyan),
		header:    color.New(color.FgBlue),
	}, nil
}

// Render highlights code. Marker lines are rendered as plain headers and
// everything between them is tokenized as one chunk.
func (h *Highlighter) Render(text string) string {
	var out, chunk strings.Builder

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		if !IsMarkerLine(line) {
			chunk.WriteString(line)
			continue
		}

		h.flush(&out, chunk.String())
		chunk.Reset()

		body := strings.TrimSuffix(line, "\n")
		out.WriteString(h.RenderHeader(body, false))
		if len(body) < len(line) {
			out.WriteString("\n")
		}
	}
	h.flush(&out, chunk.String())

	return out.String()
}

func (h *Highlighter) flush(out *strings.Builder, code string) {
	if code == "" {
		return
	}
	iterator, err := h.lexer.Tokenise(&chroma.TokeniseOptions{State: "root", EnsureLF: true}, code)
	if err != nil {
		out.WriteString(code)
		return
	}
	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		out.WriteString(code)
		return
	}
	out.WriteString(buf.String())
}

// RenderHeader colors sheet titles cyan and section headers blue.
func (h *Highlighter) RenderHeader(text string, emphasized bool) string {
	if emphasized {
		return h.title.Sprint(text)
	}
	return h.header.Sprint(text)
}

// RenderError formats message as a red error line.
func (h *Highlighter) RenderError(message string) string {
	return FormatError(message)
}

// FormatError formats message as "Error: <message>", red when color is enabled.
func FormatError(message string) string {
	return color.New(color.FgRed).Sprintf("Error: %s", message)
}

// IsMarkerLine reports whether line is drawn as a header instead of code:
// a divider, or a comment line containing a numbered title.
func IsMarkerLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "// ----") || strings.HasPrefix(trimmed, "# ----") {
		return true
	}
	isComment := strings.HasPrefix(trimmed, "// ") || strings.HasPrefix(trimmed, "# ")
	return isComment && strings.Contains(line, ". ")
}

// Plain renders text unchanged. It is used when color output is disabled.
type Plain struct{}

// Render returns text unchanged
func (Plain) Render(text string) string { return text }

// RenderHeader returns text unchanged
func (Plain) RenderHeader(text string, emphasized bool) string { return text }

// RenderError returns "Error: <message>"
func (Plain) RenderError(message string) string { return "Error: " + message }
