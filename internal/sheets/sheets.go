// Package sheets provides the cheat sheet documents and the index that serves
// them by position.
//
// The bundled sheets are compiled into the binary. Additional sheets can be
// loaded from a directory and are appended after the bundled ones.
package sheets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/rustcheat/internal/fileutil"
	"github.com/harrison/rustcheat/internal/models"
)

//go:embed data/*.rs
var bundledFS embed.FS

// bundledOrder is the display order of the bundled sheets
var bundledOrder = []string{
	"basics",
	"intermediate",
	"advanced",
	"nalgebra",
}

// SheetExtensions are the file extensions accepted by LoadDir
var SheetExtensions = []string{".rs", ".txt"}

// MaxSheetDepth bounds a recursive LoadDir: sheets at most MaxSheetDepth-1
// directories below dir are loaded
const MaxSheetDepth = 4

// skippedDirs are build and dependency directories found in Rust projects
var skippedDirs = []string{"target", "node_modules", "vendor"}

// Bundled returns the sheets compiled into the binary, in display order.
func Bundled() []models.Document {
	docs := make([]models.Document, 0, len(bundledOrder))
	for _, name := range bundledOrder {
		data, err := bundledFS.ReadFile("data/" + name + ".rs")
		if err != nil {
			// The embed pattern guarantees every listed sheet exists
			panic(fmt.Sprintf("bundled sheet %q missing: %v", name, err))
		}
		docs = append(docs, models.Document{Name: name, Body: string(data)})
	}
	return docs
}

// LoadDir reads the sheet files inside dir, and with recursive also those in
// its subdirectories up to MaxSheetDepth. Sheets are named after their file
// name without extension and returned sorted by path.
func LoadDir(dir string, recursive bool) ([]models.Document, error) {
	opts := fileutil.ScanOptions{Extensions: SheetExtensions}
	if recursive {
		opts.Recursive = true
		opts.ExcludeDirs = skippedDirs
		opts.MaxDepth = MaxSheetDepth
	}
	paths, err := fileutil.ScanDirectory(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sheets directory: %w", err)
	}

	docs := make([]models.Document, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		docs = append(docs, models.Document{Name: name, Body: string(data)})
	}
	return docs, nil
}
