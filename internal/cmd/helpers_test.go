package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args in an isolated home directory
// and returns what it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("RUSTCHEAT_HOME", t.TempDir())
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(positionalNegatives(cmd, append([]string{"--color", "never"}, args...)))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSheet(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

const tokioSheet = `// Tokio
// ----
// 1. Runtime
// ----
#[tokio::main]
async fn main() {}
// ----
// 2. Tasks
// ----
tokio::spawn(async {});
`
