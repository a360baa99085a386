package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files []string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("// ----\n// 1. X\nx\n"), 0644))
	}
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

func TestScanDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{
		"iterators.rs",
		"macros.RS",
		"notes.txt",
		"README.md",
		".scratch.rs",
		"async/tokio.rs",
		"async/deep/select.rs",
		".git/config.rs",
		"target/build.rs",
	})

	tests := []struct {
		name          string
		opts          ScanOptions
		wantFileNames []string
	}{
		{
			name:          "non-recursive, all extensions",
			opts:          ScanOptions{},
			wantFileNames: []string{"README.md", "iterators.rs", "macros.RS", "notes.txt"},
		},
		{
			name:          "sheet extensions, case-insensitive",
			opts:          ScanOptions{Extensions: []string{".rs", "txt"}},
			wantFileNames: []string{"iterators.rs", "macros.RS", "notes.txt"},
		},
		{
			name: "recursive with excluded dir",
			opts: ScanOptions{
				Extensions:  []string{".rs"},
				Recursive:   true,
				ExcludeDirs: []string{"target"},
			},
			wantFileNames: []string{"tokio.rs", "select.rs", "iterators.rs", "macros.RS"},
		},
		{
			name: "recursive with depth limit",
			opts: ScanOptions{
				Extensions:  []string{".rs"},
				Recursive:   true,
				ExcludeDirs: []string{"target"},
				MaxDepth:    2,
			},
			wantFileNames: []string{"tokio.rs", "iterators.rs", "macros.RS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := ScanDirectory(tmpDir, tt.opts)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.wantFileNames, baseNames(files))
			for _, f := range files {
				assert.True(t, filepath.IsAbs(f), "expected absolute path, got %s", f)
			}
		})
	}
}

func TestScanDirectory_SortedOutput(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{"c.rs", "a.rs", "b.rs"})

	files, err := ScanDirectory(tmpDir, ScanOptions{Extensions: []string{".rs"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.rs", "b.rs", "c.rs"}, baseNames(files))
}

func TestScanDirectory_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := ScanDirectory(filepath.Join(t.TempDir(), "missing"), ScanOptions{})
		assert.Error(t, err)
	})

	t.Run("path is a file", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeTree(t, tmpDir, []string{"sheet.rs"})
		_, err := ScanDirectory(filepath.Join(tmpDir, "sheet.rs"), ScanOptions{})
		assert.ErrorContains(t, err, "not a directory")
	})

	t.Run("relative path is resolved", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeTree(t, tmpDir, []string{"sheet.rs"})
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(tmpDir))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		files, err := ScanDirectory(".", ScanOptions{})
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.True(t, filepath.IsAbs(files[0]))
	})
}
