// Package browser answers the user-facing queries over an index of sheets:
// listing sheets, outlining one sheet, and fetching a section or a whole sheet.
package browser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harrison/rustcheat/internal/display"
	"github.com/harrison/rustcheat/internal/highlight"
	"github.com/harrison/rustcheat/internal/logger"
	"github.com/harrison/rustcheat/internal/models"
	"github.com/harrison/rustcheat/internal/sheets"
)

// Browser composes the sheet index with a renderer and an output writer.
type Browser struct {
	index    *sheets.Index
	renderer highlight.Renderer
	out      io.Writer
	log      logger.Logger
}

// New creates a Browser. A nil log discards diagnostics.
func New(index *sheets.Index, renderer highlight.Renderer, out io.Writer, log logger.Logger) *Browser {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Browser{
		index:    index,
		renderer: renderer,
		out:      out,
		log:      log,
	}
}

// ListSheets prints every sheet with its outline. Sheets that fail to parse
// are skipped.
func (b *Browser) ListSheets() error {
	for i, doc := range b.index.Documents() {
		parsed, err := b.index.Parse(i)
		if err != nil {
			b.log.LogDebug(fmt.Sprintf("skipping sheet %q: %v", doc.Name, err))
			continue
		}
		fmt.Fprintln(b.out)
		fmt.Fprintln(b.out, b.renderer.RenderHeader(display.SheetTitle(i, doc.Name), true))
		b.printOutline(parsed.Sections)
	}
	return nil
}

// ShowOutline prints the header of the sheet at index followed by its
// numbered sections.
func (b *Browser) ShowOutline(index int) error {
	doc, parsed, err := b.parseSheet(index)
	if err != nil {
		return err
	}
	fmt.Fprintln(b.out, b.renderer.RenderHeader(display.SheetTitle(index, doc.Name), true))
	b.printOutline(parsed.Sections)
	return nil
}

func (b *Browser) printOutline(sections []models.Section) {
	for i, section := range sections {
		line := display.OutlineLine(i, len(sections), section.Title)
		fmt.Fprintln(b.out, b.renderer.RenderHeader(line, false))
	}
}

// SectionContent returns the raw content of the 1-based section number of
// the sheet at index.
func (b *Browser) SectionContent(index int, number string) (string, error) {
	_, parsed, err := b.parseSheet(index)
	if err != nil {
		return "", err
	}

	n, ok := ParseNumber(number)
	if !ok {
		return "", &InvalidSectionNumberError{Value: number, Reason: ReasonNotInteger}
	}
	if n == 0 || n > parsed.Len() {
		return "", &InvalidSectionNumberError{Value: number, Reason: ReasonOutOfBounds}
	}

	section, _ := parsed.Section(n)
	b.log.LogTrace(fmt.Sprintf("sheet %d section %d: %q", index, n, section.Title))
	return section.Content, nil
}

// ParseNumber parses a sheet index or section number: decimal digits with
// at most one leading '+'. Signs other than '+' are rejected.
func ParseNumber(s string) (int, bool) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// ShowSection renders one section of a sheet.
func (b *Browser) ShowSection(index int, number string) error {
	content, err := b.SectionContent(index, number)
	if err != nil {
		return err
	}
	fmt.Fprint(b.out, b.renderer.Render(content))
	return nil
}

// FullContent returns the raw text of the sheet at index without segmenting it.
func (b *Browser) FullContent(index int) (string, error) {
	doc, ok := b.index.Get(index)
	if !ok {
		return "", &SheetNotFoundError{Index: index}
	}
	return doc.Body, nil
}

// ShowFullSheet renders the whole sheet at index.
func (b *Browser) ShowFullSheet(index int) error {
	content, err := b.FullContent(index)
	if err != nil {
		return err
	}
	fmt.Fprintln(b.out, b.renderer.Render(content))
	return nil
}

// Parsed returns the document at index and its sections.
func (b *Browser) Parsed(index int) (models.Document, *models.ParsedDocument, error) {
	return b.parseSheet(index)
}

func (b *Browser) parseSheet(index int) (models.Document, *models.ParsedDocument, error) {
	doc, ok := b.index.Get(index)
	if !ok {
		return models.Document{}, nil, &SheetNotFoundError{Index: index}
	}
	parsed, err := b.index.Parse(index)
	if err != nil {
		if errors.Is(err, sheets.ErrSheetNotFound) {
			return models.Document{}, nil, &SheetNotFoundError{Index: index}
		}
		return models.Document{}, nil, fmt.Errorf("failed to parse sheet %q: %w", doc.Name, err)
	}
	b.log.LogDebug(fmt.Sprintf("parsed sheet %q: %d sections", doc.Name, parsed.Len()))
	return doc, parsed, nil
}
