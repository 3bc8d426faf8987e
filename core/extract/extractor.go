// Package extract implements the Extractor interface.
// It isolates the editable region of a host page by:
//  1. Finding the best content container (configured selector,
//     [contenteditable], <main>, <article>, or <body>)
//  2. Removing noise elements inside it (scripts, embeds, form controls,
//     editor chrome)
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed from the chosen container. None of them hold
// text the user typed into the editor. <form> is a container and stays.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"iframe", "object", "embed",
	"button", "input", "select", "textarea",
	".toolbar", ".popup", ".emoji-picker", "[data-editor-chrome]",
}

// fallbackContainers are tried in order when the configured selector
// matches nothing.
var fallbackContainers = []string{"[contenteditable]", "main", "article", "body"}

// HTMLExtractor strips noise from a host page and returns the editor fragment.
type HTMLExtractor struct {
	Selector string
}

// New creates an HTMLExtractor. An empty selector relies on the fallbacks.
func New(selector string) *HTMLExtractor {
	return &HTMLExtractor{Selector: strings.TrimSpace(selector)}
}

// Extract takes host HTML and returns the outer HTML of the editable region.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	candidates := fallbackContainers
	if e.Selector != "" {
		candidates = append([]string{e.Selector}, fallbackContainers...)
	}

	var container *goquery.Selection
	for _, sel := range candidates {
		found := doc.Find(sel)
		if found.Length() > 0 {
			container = found.First()
			break
		}
	}

	if container == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	for _, sel := range noiseSelectors {
		container.Find(sel).Remove()
	}

	result, err := goquery.OuterHtml(container)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return result, nil
}
