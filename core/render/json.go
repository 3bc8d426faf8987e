// Package render — JSON renderer.
// Builds the structured JSON export from Markdown and document metadata.
// Parses the serializer's Markdown to extract structural information
// (headings, links, images, lists, rules) for hosts that index content.
package render

import (
	"encoding/json"
	"fmt"
	stdhtml "html"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/editmark/core"
)

// JSONRenderer produces structured JSON output from Markdown.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts Markdown and metadata into the JSON document.
func (r *JSONRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	headings := extractHeadings(markdown)

	doc := core.DocumentJSON{
		Metadata: meta,
		Content: core.DocumentContent{
			Text:     stripMarkdown(markdown),
			Markdown: markdown,
			Sections: buildSections(markdown, headings),
		},
		Structure: core.DocumentStructure{
			Headings: headings,
			Links:    extractLinks(markdown),
			Images:   extractImages(markdown),
			Lists:    countListItems(markdown),
			Rules:    countRules(markdown),
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []core.Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, core.Heading{
			Level: len(m[1]),
			Text:  plain(m[2]),
		})
	}
	return headings
}

// linkRegex matches Markdown links [text](url), skipping images.
var linkRegex = regexp.MustCompile(`(^|[^!])\[([^\]]*)\]\(([^)]*)\)`)

func extractLinks(md string) []core.Link {
	matches := linkRegex.FindAllStringSubmatch(md, -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, core.Link{
			Text: plain(m[2]),
			Href: m[3],
		})
	}
	return links
}

var (
	imageRegex    = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
	rawImageRegex = regexp.MustCompile(`<img src="([^"]*)" alt="([^"]*)" width="([^"]*)">`)
)

func extractImages(md string) []core.Image {
	var images []core.Image
	for _, m := range imageRegex.FindAllStringSubmatch(md, -1) {
		images = append(images, core.Image{Alt: plain(m[1]), Src: m[2]})
	}
	for _, m := range rawImageRegex.FindAllStringSubmatch(md, -1) {
		images = append(images, core.Image{
			Src:   stdhtml.UnescapeString(m[1]),
			Alt:   stdhtml.UnescapeString(m[2]),
			Width: stdhtml.UnescapeString(m[3]),
		})
	}
	if images == nil {
		images = []core.Image{}
	}
	return images
}

func buildSections(md string, headings []core.Heading) []core.Section {
	if len(headings) == 0 {
		return nil
	}

	lines := strings.Split(md, "\n")
	sections := make([]core.Section, 0, len(headings))
	headingIdx := 0

	var currentSection *core.Section
	var sectionLines []string

	for _, line := range lines {
		if headingRegex.MatchString(line) && headingIdx < len(headings) {
			// Flush previous section.
			if currentSection != nil {
				currentSection.Text = stripMarkdown(strings.Join(sectionLines, "\n"))
				sections = append(sections, *currentSection)
			}
			currentSection = &core.Section{
				Heading: headings[headingIdx].Text,
				Level:   headings[headingIdx].Level,
			}
			sectionLines = nil
			headingIdx++
		} else if currentSection != nil {
			sectionLines = append(sectionLines, line)
		}
	}
	// Flush last section.
	if currentSection != nil {
		currentSection.Text = stripMarkdown(strings.Join(sectionLines, "\n"))
		sections = append(sections, *currentSection)
	}

	return sections
}

// countListItems counts list item lines ("- x" or "1. x").
var listItemRegex = regexp.MustCompile(`(?m)^\s*(?:-|\d+\.)\s`)

func countListItems(md string) int {
	return len(listItemRegex.FindAllString(md, -1))
}

var ruleRegex = regexp.MustCompile(`(?m)^---$`)

func countRules(md string) int {
	return len(ruleRegex.FindAllString(md, -1))
}

var (
	boldItalicRegex = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`)
	blankRunRegex   = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown removes the serializer's Markdown markup to produce plain text.
func stripMarkdown(md string) string {
	text := md
	text = headingRegex.ReplaceAllString(text, "$2")
	text = imageRegex.ReplaceAllString(text, "$1")
	text = rawImageRegex.ReplaceAllString(text, "$2")
	text = boldItalicRegex.ReplaceAllString(text, "$1")
	text = linkRegex.ReplaceAllString(text, "$1$2")
	text = ruleRegex.ReplaceAllString(text, "")
	text = blankRunRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(stdhtml.UnescapeString(text))
}

// plain strips inline markup from a single fragment.
func plain(s string) string {
	return stripMarkdown(strings.TrimSpace(s))
}
