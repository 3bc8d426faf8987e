// Package normalize implements the Normalizer interface.
// It converts cleaned HTML into Markdown, which serves as the
// canonical intermediate format for all downstream renderers.
//
// Two engines are available: "editor" reproduces the editor's own
// serialization rules exactly; "commonmark" delegates to html-to-markdown
// for markup outside the editor vocabulary (tables, code blocks).
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/editmark/core"
	"github.com/gaurav-prasanna/editmark/core/parse"
	"github.com/gaurav-prasanna/editmark/core/serialize"
)

const (
	EngineEditor     = "editor"
	EngineCommonMark = "commonmark"
)

// Engines lists the accepted engine names.
var Engines = []string{EngineEditor, EngineCommonMark}

// EditorNormalizer parses HTML into a content tree and serializes it.
type EditorNormalizer struct {
	parser     core.Parser
	serializer core.Serializer
}

// NewEditor creates an EditorNormalizer rooted at selector.
func NewEditor(selector string) *EditorNormalizer {
	return &EditorNormalizer{
		parser:     parse.New(selector),
		serializer: serialize.New(),
	}
}

// Normalize converts an HTML fragment into trimmed Markdown.
func (n *EditorNormalizer) Normalize(html string) (string, error) {
	root, err := n.parser.Parse(html)
	if err != nil {
		return "", fmt.Errorf("building content tree: %w", err)
	}
	return n.serializer.Serialize(root), nil
}

// CommonMarkNormalizer converts HTML to Markdown using html-to-markdown.
type CommonMarkNormalizer struct{}

// NewCommonMark creates a CommonMarkNormalizer.
func NewCommonMark() *CommonMarkNormalizer {
	return &CommonMarkNormalizer{}
}

// Normalize converts a cleaned HTML fragment into Markdown.
func (n *CommonMarkNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

// ForEngine returns the normalizer registered under name.
func ForEngine(name, selector string) (core.Normalizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineEditor:
		return NewEditor(selector), nil
	case EngineCommonMark:
		return NewCommonMark(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want one of: %s)", name, strings.Join(Engines, ", "))
	}
}
