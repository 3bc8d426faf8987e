// Package output handles file naming and writing for editmark exports.
// Filenames are derived from the source document (notes.html → notes.md);
// input read from stdin is written as "document".
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const stdinName = "document"

// Writer writes rendered output to disk, or to Stdout when set.
type Writer struct {
	OutputDir string
	Stdout    io.Writer
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// NewStream creates a Writer that sends every artifact to w.
func NewStream(w io.Writer) *Writer {
	return &Writer{Stdout: w}
}

// Write stores data for the given source and returns where it went.
func (w *Writer) Write(source string, data []byte, ext string) (string, error) {
	if w.Stdout != nil {
		if _, err := w.Stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return "stdout", nil
	}

	path := filepath.Join(w.OutputDir, FileName(source)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// FileName converts a source path into a flat base name without extension.
// Example: ./drafts/My Notes.html → My_Notes
func FileName(source string) string {
	if source == "" || source == "-" {
		return stdinName
	}
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return stdinName
	}
	return sanitize(base)
}

// sanitize replaces characters outside [A-Za-z0-9._-] with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') ||
			ch == '.' || ch == '_' || ch == '-' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
