package display

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tree glyphs used in outlines
const (
	BranchPrefix = "├──"
	LastPrefix   = "└──"
)

var titleCaser = cases.Title(language.Und)

// DisplayName turns an identifier such as "advanced_async-io" into
// "Advanced Async Io".
func DisplayName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}

// SheetTitle formats the header line of a sheet: "{index} - {DisplayName}"
func SheetTitle(index int, name string) string {
	return fmt.Sprintf("%d - %s", index, DisplayName(name))
}

// TreePrefix returns the glyph for entry i of total
func TreePrefix(i, total int) string {
	if i == total-1 {
		return LastPrefix
	}
	return BranchPrefix
}

// OutlineLine formats zero-based entry i of total as "{prefix} {i+1}. {title}"
func OutlineLine(i, total int, title string) string {
	return fmt.Sprintf("%s %d. %s", TreePrefix(i, total), i+1, title)
}
