package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/editmark/core"
)

const sampleMarkdown = "# Notes\n\n" +
	"Hello **world** &amp; [docs](https://go.dev)\n\n" +
	"1. one\n2. two\n\n" +
	"\n---\n\n" +
	"## Media\n\n" +
	"![logo](https://x/y.png)\n\n" +
	"<img src=\"https://x/z.png\" alt=\"wide\" width=\"200px\">"

var sampleMeta = core.DocumentMetadata{
	Source:      "notes.html",
	Title:       "Notes",
	Engine:      "editor",
	GeneratedAt: "2026-01-01T00:00:00Z",
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()
	got, err := r.Render("# x", sampleMeta)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if string(got) != "# x\n" {
		t.Errorf("Render() = %q", got)
	}
	if r.Extension() != ".md" {
		t.Errorf("Extension() = %q", r.Extension())
	}
}

func TestHTMLRenderer(t *testing.T) {
	r := NewHTMLRenderer()
	got, err := r.Render(sampleMarkdown+"\n\n<script>alert(1)</script>\n\n[bad](javascript:alert(1))", sampleMeta)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := string(got)

	for _, want := range []string{
		"<h1>Notes</h1>",
		"<strong>world</strong>",
		"&amp;",
		`href="https://go.dev"`,
		"<ol>",
		"<hr",
		`src="https://x/y.png"`,
		`width="200px"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q:\n%s", want, out)
		}
	}
	for _, bad := range []string{"<script", "alert(1)</script>", "javascript:"} {
		if strings.Contains(out, bad) {
			t.Errorf("HTML output contains %q:\n%s", bad, out)
		}
	}
	if r.Extension() != ".html" {
		t.Errorf("Extension() = %q", r.Extension())
	}
}

func TestJSONRenderer(t *testing.T) {
	got, err := NewJSONRenderer().Render(sampleMarkdown, sampleMeta)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var doc core.DocumentJSON
	if err := json.Unmarshal(got, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Metadata.Title != "Notes" {
		t.Errorf("title = %q", doc.Metadata.Title)
	}
	if len(doc.Structure.Headings) != 2 || doc.Structure.Headings[1].Text != "Media" || doc.Structure.Headings[1].Level != 2 {
		t.Errorf("headings = %+v", doc.Structure.Headings)
	}
	if len(doc.Structure.Links) != 1 || doc.Structure.Links[0].Href != "https://go.dev" || doc.Structure.Links[0].Text != "docs" {
		t.Errorf("links = %+v", doc.Structure.Links)
	}
	if len(doc.Structure.Images) != 2 {
		t.Fatalf("images = %+v", doc.Structure.Images)
	}
	if doc.Structure.Images[1].Width != "200px" || doc.Structure.Images[1].Alt != "wide" {
		t.Errorf("raw image = %+v", doc.Structure.Images[1])
	}
	if doc.Structure.Lists != 2 {
		t.Errorf("lists = %d, want 2", doc.Structure.Lists)
	}
	if doc.Structure.Rules != 1 {
		t.Errorf("rules = %d, want 1", doc.Structure.Rules)
	}
	if len(doc.Content.Sections) != 2 || doc.Content.Sections[0].Heading != "Notes" {
		t.Errorf("sections = %+v", doc.Content.Sections)
	}
	if !strings.Contains(doc.Content.Text, "Hello world & docs") {
		t.Errorf("plain text = %q", doc.Content.Text)
	}
}

func TestPDFRenderer(t *testing.T) {
	got, err := NewPDFRenderer().Render(sampleMarkdown, sampleMeta)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(got, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", got[:min(len(got), 16)])
	}
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"## Head", "Head"},
		{"**b** and *i*", "b and i"},
		{"see [x](https://a.b)", "see x"},
		{"a &lt;b&gt;", "a <b>"},
		{"![alt](https://a.b/c.png)", "alt"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := stripMarkdown(tt.input); got != tt.expected {
				t.Errorf("stripMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanInlineMarkdown(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold** and *soft* &amp; more", "bold and soft & more"},
		{"2*3*4", "2*3*4"},
		{"&lt;tag&gt;", "<tag>"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := cleanInlineMarkdown(tt.in); got != tt.want {
				t.Errorf("cleanInlineMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
