// Package render — PDF renderer.
// Converts the serializer's Markdown into a styled PDF using gofpdf.
// Handles headings (variable font sizes), paragraphs, lists, rules and
// image placeholders. Image bytes are never fetched.
package render

import (
	"bytes"
	stdhtml "html"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/editmark/core"
)

// PDFRenderer renders Markdown content as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var orderedItemRegex = regexp.MustCompile(`^\d+\.\s`)

// italicRegex matches *word* markers but not stray asterisks inside words.
var italicRegex = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)

// Render converts Markdown into PDF bytes.
func (r *PDFRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate UTF-8 text before writing it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}

	if meta.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+meta.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			pdf.Ln(3)

		case trimmed == "---":
			renderRule(pdf)

		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			renderHeading(pdf, tr(cleanInlineMarkdown(strings.TrimLeft(trimmed, "# "))), level)

		case rawImageRegex.MatchString(trimmed), imageRegex.MatchString(trimmed):
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(100, 100, 100)
			pdf.MultiCell(0, 5, tr("[image: "+imageAlt(trimmed)+"]"), "", "L", false)
			pdf.SetTextColor(0, 0, 0)

		case strings.HasPrefix(trimmed, "- "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr("• "+cleanInlineMarkdown(trimmed[2:])), "", "L", false)

		case orderedItemRegex.MatchString(trimmed):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)

		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(line)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// renderRule draws a horizontal line across the printable width.
func renderRule(pdf *gofpdf.Fpdf) {
	left, _, right, _ := pdf.GetMargins()
	width, _ := pdf.GetPageSize()
	y := pdf.GetY() + 2
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(left, y, width-right, y)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Ln(5)
}

func imageAlt(line string) string {
	if m := rawImageRegex.FindStringSubmatch(line); m != nil {
		return stdhtml.UnescapeString(m[2])
	}
	if m := imageRegex.FindStringSubmatch(line); m != nil {
		return stdhtml.UnescapeString(m[1])
	}
	return ""
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering
// and turns escaped entities back into characters.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = italicRegex.ReplaceAllString(text, " $1 ")
	text = linkRegex.ReplaceAllString(text, "$1$2")
	return strings.TrimSpace(stdhtml.UnescapeString(text))
}
