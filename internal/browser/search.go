package browser

import (
	"fmt"
	"strings"

	"github.com/harrison/rustcheat/internal/display"
)

// Match is a section whose title matched a search query.
type Match struct {
	Sheet     int    // Sheet index
	SheetName string // Sheet identifier
	Number    int    // 1-based section number
	Title     string
}

// Search returns the sections whose titles contain query, ignoring case.
// Sheets that fail to parse are skipped, as in ListSheets.
func (b *Browser) Search(query string) ([]Match, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidQuery
	}
	needle := strings.ToLower(query)

	var matches []Match
	for i, doc := range b.index.Documents() {
		parsed, err := b.index.Parse(i)
		if err != nil {
			b.log.LogDebug(fmt.Sprintf("search skipping sheet %q: %v", doc.Name, err))
			continue
		}
		for n, section := range parsed.Sections {
			if strings.Contains(strings.ToLower(section.Title), needle) {
				matches = append(matches, Match{
					Sheet:     i,
					SheetName: doc.Name,
					Number:    n + 1,
					Title:     section.Title,
				})
			}
		}
	}
	return matches, nil
}

// ShowSearch prints one line per match: "{sheet} {n}. {title}  ({Sheet Name})".
// The first two fields are the arguments that print the section.
func (b *Browser) ShowSearch(query string) error {
	matches, err := b.Search(query)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		b.log.LogInfo(fmt.Sprintf("no sections match %q", query))
		return nil
	}
	for _, m := range matches {
		line := fmt.Sprintf("%d %d. %s  (%s)", m.Sheet, m.Number, m.Title, display.DisplayName(m.SheetName))
		fmt.Fprintln(b.out, b.renderer.RenderHeader(line, false))
	}
	return nil
}
