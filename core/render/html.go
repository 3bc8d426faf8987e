// Package render — HTML renderer.
// Renders Markdown to HTML with goldmark and scrubs the result. Raw HTML is
// let through the Markdown stage so sized images survive, then the
// sanitizer removes anything outside the editor vocabulary.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/gaurav-prasanna/editmark/core"
	"github.com/gaurav-prasanna/editmark/core/sanitize"
)

// HTMLRenderer produces a sanitized HTML fragment from Markdown.
type HTMLRenderer struct {
	md goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(), // scrubbed by sanitize.HTML below
			),
		),
	}
}

// Render converts Markdown into sanitized HTML bytes.
func (r *HTMLRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return []byte(sanitize.HTML(buf.String())), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
