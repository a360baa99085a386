// Package export converts a parsed sheet into a standalone Markdown or HTML
// document.
package export

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/harrison/rustcheat/internal/display"
	"github.com/harrison/rustcheat/internal/filelock"
	"github.com/harrison/rustcheat/internal/models"
)

// Format is an export output format
type Format string

const (
	// FormatMarkdown writes a Markdown document with one fenced block per section
	FormatMarkdown Format = "md"
	// FormatHTML writes the Markdown document rendered to HTML
	FormatHTML Format = "html"
)

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q, must be one of: md, html", name)
	}
}

// Exporter renders sheets to Markdown and HTML.
type Exporter struct {
	markdown goldmark.Markdown
}

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{markdown: goldmark.New()}
}

// Markdown returns the sheet as Markdown: a title, then a numbered heading and
// a fenced rust block per section.
func (e *Exporter) Markdown(name string, parsed *models.ParsedDocument) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", display.DisplayName(name))

	for i, section := range parsed.Sections {
		fence := fenceFor(section.Content)
		fmt.Fprintf(&sb, "\n## %d. %s\n\n", i+1, section.Title)
		fmt.Fprintf(&sb, "%srust\n%s\n%s\n", fence, strings.TrimSuffix(section.Content, "\n"), fence)
	}
	return sb.String()
}

// HTML returns the sheet as a complete HTML page.
func (e *Exporter) HTML(name string, parsed *models.ParsedDocument) (string, error) {
	var body bytes.Buffer
	if err := e.markdown.Convert([]byte(e.Markdown(name, parsed)), &body); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString(display.DisplayName(name)))
	sb.WriteString("</head>\n<body>\n")
	sb.Write(body.Bytes())
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

// Render returns the sheet in the requested format.
func (e *Exporter) Render(format Format, name string, parsed *models.ParsedDocument) ([]byte, error) {
	switch format {
	case FormatMarkdown:
		return []byte(e.Markdown(name, parsed)), nil
	case FormatHTML:
		out, err := e.HTML(name, parsed)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteFile replaces path with an export, waiting for concurrent writers
// until ctx is done.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := filelock.WriteFile(ctx, path, data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// TryWriteFile replaces path with an export, failing with filelock.ErrLocked
// when another writer holds the file.
func TryWriteFile(path string, data []byte) error {
	if err := filelock.TryWriteFile(path, data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// fenceFor returns a backtick fence longer than any backtick run in content.
func fenceFor(content string) string {
	fence := "```"
	for strings.Contains(content, fence) {
		fence += "`"
	}
	return fence
}
