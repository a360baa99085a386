package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"basics", "Basics"},
		{"nalgebra", "Nalgebra"},
		{"advanced_async-io", "Advanced Async Io"},
		{"SHOUTING_name", "Shouting Name"},
		{"double__underscore", "Double Underscore"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.name))
		})
	}
}

func TestSheetTitle(t *testing.T) {
	assert.Equal(t, "0 - Basics", SheetTitle(0, "basics"))
	assert.Equal(t, "3 - Nalgebra", SheetTitle(3, "nalgebra"))
}

func TestOutlineLine(t *testing.T) {
	assert.Equal(t, "├── 1. Intro", OutlineLine(0, 2, "Intro"))
	assert.Equal(t, "└── 2. Outro", OutlineLine(1, 2, "Outro"))
	assert.Equal(t, "└── 1. Only", OutlineLine(0, 1, "Only"))
}
