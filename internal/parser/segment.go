package parser

import (
	"strings"

	"github.com/harrison/rustcheat/internal/models"
)

// titleSeparator splits a header line into its number and its title
const titleSeparator = ". "

// Marker prefixes. Both comment styles are accepted everywhere.
var (
	dividerPrefixes = []string{"# ----", "// ----"}
	headerPrefixes  = []string{"# ", "// "}
)

// markerChars are stripped from the left of a header line before the title is read
const markerChars = "#/ "

// Parse segments text into a ParsedDocument.
func Parse(text string) (*models.ParsedDocument, error) {
	sections, err := Segment(text)
	if err != nil {
		return nil, err
	}
	return &models.ParsedDocument{Sections: sections}, nil
}

// Segment splits text into titled sections.
//
// A section starts at a divider line ("# ----" or "// ----") that is immediately
// followed by a header line ("// 3. Title"). Each section runs up to the next
// section start or the end of the text. Lines before the first section start are
// not part of any section. Text without any section start yields no sections.
func Segment(text string) ([]models.Section, error) {
	lines := SplitLines(text)
	starts := FindSectionStarts(lines)
	return buildSections(lines, starts)
}

// SplitLines splits text into lines. A trailing "\r" is dropped from every line
// and a final newline does not produce an empty last line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// IsDivider reports whether line opens a section marker
func IsDivider(line string) bool {
	return hasAnyPrefix(line, dividerPrefixes)
}

// IsHeader reports whether line is a numbered section header
func IsHeader(line string) bool {
	if !hasAnyPrefix(line, headerPrefixes) {
		return false
	}
	_, ok := headerTitle(line)
	return ok
}

// FindSectionStarts returns the positions of every divider that is directly
// followed by a header, in ascending order.
func FindSectionStarts(lines []string) []int {
	var starts []int
	for i := 0; i+1 < len(lines); i++ {
		if IsDivider(lines[i]) && IsHeader(lines[i+1]) {
			starts = append(starts, i)
		}
	}
	return starts
}

func buildSections(lines []string, starts []int) ([]models.Section, error) {
	sections := make([]models.Section, 0, len(starts))
	for k, start := range starts {
		end := len(lines)
		if k+1 < len(starts) {
			end = starts[k+1]
		}
		section, err := newSection(lines, start, end)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, nil
}

// newSection builds the section spanning lines[start:end].
// The divider, the header and the line after the header are mandatory.
func newSection(lines []string, start, end int) (models.Section, error) {
	if start+1 >= len(lines) {
		return models.Section{}, &ParseError{Kind: KindMissingTitle, Line: start}
	}
	header := lines[start+1]

	title, ok := headerTitle(header)
	if !ok {
		return models.Section{}, &ParseError{Kind: KindInvalidTitleFormat, Line: start}
	}

	if start+2 >= len(lines) || end < start+3 {
		return models.Section{}, &ParseError{Kind: KindMissingBody, Line: start}
	}

	content := strings.Join([]string{
		lines[start],
		header,
		lines[start+2],
		strings.Join(lines[start+3:end], "\n"),
	}, "\n")

	return models.Section{Title: title, Content: content}, nil
}

// headerTitle returns the text after the first ". " once leading marker
// characters are removed.
func headerTitle(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, markerChars)
	_, title, found := strings.Cut(trimmed, titleSeparator)
	return title, found
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
