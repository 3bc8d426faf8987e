package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"notes.html", "notes"},
		{"./drafts/My Notes.html", "My_Notes"},
		{"/tmp/a.b.htm", "a.b"},
		{"-", "document"},
		{"", "document"},
		{"weird#name?.html", "weird_name_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FileName(tt.input); got != tt.expected {
				t.Errorf("FileName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWriteToDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")

	w, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	path, err := w.Write("drafts/notes.html", []byte("# hi\n"), ".md")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if path != filepath.Join(dir, "notes.md") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "# hi\n" {
		t.Errorf("contents = %q", data)
	}
}

func TestWriteToStream(t *testing.T) {
	var buf bytes.Buffer
	w := NewStream(&buf)

	where, err := w.Write("-", []byte("body"), ".md")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if where != "stdout" || buf.String() != "body" {
		t.Errorf("where = %q, buf = %q", where, buf.String())
	}
}
