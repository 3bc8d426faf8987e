// Package core defines the export pipeline interfaces for editmark.
// Each stage of the pipeline is a clean, testable interface.
package core

import "github.com/gaurav-prasanna/editmark/core/content"

// DocumentMetadata describes the document being exported.
type DocumentMetadata struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	Language    string `json:"language"`
	Engine      string `json:"engine"`
	GeneratedAt string `json:"generated_at"` // ISO8601
}

// Section represents a heading-delimited section of content.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Heading represents a single heading found in the content.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the content.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image represents an image reference found in the content.
type Image struct {
	Alt   string `json:"alt"`
	Src   string `json:"src"`
	Width string `json:"width,omitempty"`
}

// DocumentContent holds the text and structured content of a document.
type DocumentContent struct {
	Text     string    `json:"text"`
	Markdown string    `json:"markdown"`
	Sections []Section `json:"sections"`
}

// DocumentStructure holds structural metadata parsed from the Markdown.
type DocumentStructure struct {
	Headings []Heading `json:"headings"`
	Links    []Link    `json:"links"`
	Images   []Image   `json:"images"`
	Lists    int       `json:"lists"`
	Rules    int       `json:"rules"`
}

// DocumentJSON is the complete JSON export for a single document.
type DocumentJSON struct {
	Metadata  DocumentMetadata  `json:"metadata"`
	Content   DocumentContent   `json:"content"`
	Structure DocumentStructure `json:"structure"`
}

// Extractor isolates the editable region of a host page, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Parser builds a content tree from an HTML fragment.
type Parser interface {
	Parse(html string) (*content.Node, error)
}

// Serializer turns a content tree into Markdown.
type Serializer interface {
	Serialize(root *content.Node) string
}

// Normalizer converts HTML into Markdown (the canonical format).
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts Markdown (and metadata) into a final output format.
type Renderer interface {
	Render(markdown string, meta DocumentMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
