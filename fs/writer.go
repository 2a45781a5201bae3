// Package fs provides file-based storage for conversion results.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docparse"
)

// PathForSource converts a source document path to the relative file
// path of its JSON result.
// Example: /data/docs/guide.txt → guide.json
func PathForSource(sourcePath string) (string, error) {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "", docparse.Errorf(docparse.EINVALID, "invalid source path %q", sourcePath)
	}
	return stem + ".json", nil
}

// Ensure Writer implements docparse.ConversionWriter at compile time.
var _ docparse.ConversionWriter = (*Writer)(nil)

// Writer writes conversion results as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateConversion writes a conversion's document result to disk as an
// indented JSON file named after the source document.
func (w *Writer) CreateConversion(ctx context.Context, conv *docparse.Conversion) error {
	if err := conv.Validate(); err != nil {
		return err
	}

	relPath, err := PathForSource(conv.SourcePath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(conv.Result, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(w.baseDir, relPath), data, 0644)
}
