package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// ScanOptions selects the files ScanDirectory returns
type ScanOptions struct {
	// Extensions accepted, with or without the leading dot, compared
	// case-insensitively. Empty accepts every file.
	Extensions []string
	// Recursive descends into subdirectories
	Recursive bool
	// ExcludeDirs names directories that are never entered
	ExcludeDirs []string
	// MaxDepth bounds recursion (0 = unlimited, 1 = top level only)
	MaxDepth int
}

// matcher is ScanOptions compiled for lookups during the walk
type matcher struct {
	opts       ScanOptions
	extensions map[string]struct{}
	excluded   map[string]struct{}
}

func newMatcher(opts ScanOptions) *matcher {
	m := &matcher{
		opts:       opts,
		extensions: make(map[string]struct{}, len(opts.Extensions)),
		excluded:   make(map[string]struct{}, len(opts.ExcludeDirs)),
	}
	for _, ext := range opts.Extensions {
		m.extensions["."+strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	for _, name := range opts.ExcludeDirs {
		m.excluded[name] = struct{}{}
	}
	return m
}

// enter reports whether the directory at rel (slash separated) is walked
func (m *matcher) enter(rel string) bool {
	name := path.Base(rel)
	if strings.HasPrefix(name, ".") || !m.opts.Recursive {
		return false
	}
	if _, ok := m.excluded[name]; ok {
		return false
	}
	depth := strings.Count(rel, "/") + 1
	return m.opts.MaxDepth <= 0 || depth < m.opts.MaxDepth
}

func (m *matcher) accept(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	if len(m.extensions) == 0 {
		return true
	}
	_, ok := m.extensions[strings.ToLower(path.Ext(name))]
	return ok
}

// ScanDirectory returns the absolute paths of the matching regular files
// under dir, sorted. Hidden files and directories are skipped.
func ScanDirectory(dir string, opts ScanOptions) ([]string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	m := newMatcher(opts)
	var files []string
	err = fs.WalkDir(os.DirFS(root), ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filepath.Join(root, filepath.FromSlash(rel)), err)
		}
		switch {
		case rel == ".":
			return nil
		case d.IsDir():
			if !m.enter(rel) {
				return fs.SkipDir
			}
		case d.Type().IsRegular() && m.accept(d.Name()):
			files = append(files, filepath.Join(root, filepath.FromSlash(rel)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}
