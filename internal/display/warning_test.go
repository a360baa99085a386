package display

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })
}

func TestDisplayWarning_TitleOnly(t *testing.T) {
	withColor(t)
	var buf bytes.Buffer

	Warning{Title: "Sheets without sections"}.Display(&buf)

	output := buf.String()
	assert.True(t, len(output) > 0)
	assert.Contains(t, output, "\x1b[33m")
	assert.Contains(t, output, "⚠️  Warning: Sheets without sections")
	assert.Contains(t, output, "\x1b[0m")
}

func TestDisplayWarning_Sheets(t *testing.T) {
	tests := []struct {
		name     string
		sheets   []string
		wantText string
	}{
		{"single sheet", []string{"notes"}, "Affected sheet:"},
		{"multiple sheets", []string{"notes", "scratch"}, "Affected sheets:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Warning{Title: "Empty", Sheets: tt.sheets}.Display(&buf)

			output := buf.String()
			assert.Contains(t, output, tt.wantText)
			assert.Contains(t, output, "      1. notes")
		})
	}
}

func TestDisplayWarning_Complete(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	Warning{
		Title:      "Sheets without sections",
		Message:    "These sheets are listed but have no outline",
		Sheets:     []string{"notes"},
		Suggestion: "Add a divider line followed by a numbered header",
	}.Display(&buf)

	want := "⚠️  Warning: Sheets without sections\n" +
		"    These sheets are listed but have no outline\n" +
		"    Affected sheet:\n" +
		"      1. notes\n" +
		"    Suggestion:\n" +
		"    Add a divider line followed by a numbered header\n"
	assert.Equal(t, want, buf.String())
}
