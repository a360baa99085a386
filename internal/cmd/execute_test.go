package cmd

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestRun_RendersErrors(t *testing.T) {
	t.Setenv("RUSTCHEAT_HOME", t.TempDir())
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })
	color.NoColor = true

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{"outline", []string{"--color", "never", "0"}, 0, ""},
		{"bad index", []string{"--color", "never", "abc"}, 1, "Error: Sheet index must be a positive integer\n"},
		{"negative index", []string{"--color", "never", "-1"}, 1, "Error: Sheet index must be a positive integer\n"},
		{"too many args", []string{"--color", "never", "1", "2", "3"}, 1, "Error: " + UsageMessage + "\n"},
		{"missing sheet", []string{"--color", "never", "99"}, 1, "Error: Could not find sheet at index 99\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootCommand()
			var stdout, stderr bytes.Buffer
			root.SetOut(&stdout)
			root.SetErr(&stderr)

			code := run(root, tt.args, &stderr)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestRun_ColoredError(t *testing.T) {
	t.Setenv("RUSTCHEAT_HOME", t.TempDir())
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	code := run(root, []string{"--color", "always", "99"}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "\x1b[31m")
	assert.Contains(t, stderr.String(), "Could not find sheet at index 99")
}

func TestPositionalNegatives(t *testing.T) {
	root := NewRootCommand()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no negatives", []string{"0", "1"}, []string{"0", "1"}},
		{"negative index", []string{"-1"}, []string{"--", "-1"}},
		{"negative section", []string{"0", "-2"}, []string{"0", "--", "-2"}},
		{"after persistent flag", []string{"--color", "never", "-1"}, []string{"--color", "never", "--", "-1"}},
		{"flag value", []string{"--log-level", "-1"}, []string{"--log-level", "-1"}},
		{"shorthand flag value", []string{"export", "0", "-o", "-5"}, []string{"export", "0", "-o", "-5"}},
		{"bool flag is not a value flag", []string{"--no-cache", "-1"}, []string{"--no-cache", "--", "-1"}},
		{"already terminated", []string{"--", "-1"}, []string{"--", "-1"}},
		{"not a number", []string{"-x"}, []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, positionalNegatives(root, tt.args))
		})
	}
}
