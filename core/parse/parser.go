// Package parse implements the Parser interface.
// It turns an HTML fragment from the editing surface into a content tree:
//  1. Parse the fragment with goquery and select the editor root
//  2. Walk the html.Node tree, mapping element names onto content tags
package parse

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/editmark/core/content"
)

const defaultSelector = "body"

// droppedElements never contribute content; their whole subtree is skipped.
var droppedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
	"head":     true,
}

// HTMLParser builds content trees from HTML.
type HTMLParser struct {
	Selector string // CSS selector of the root element
}

// New creates an HTMLParser rooted at selector. Defaults to "body".
func New(selector string) *HTMLParser {
	if strings.TrimSpace(selector) == "" {
		selector = defaultSelector
	}
	return &HTMLParser{Selector: selector}
}

// Parse converts an HTML fragment into a content tree rooted at the first
// element matching the parser's selector.
func (p *HTMLParser) Parse(fragment string) (*content.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	sel := doc.Find(p.Selector)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("no element matches selector %q", p.Selector)
	}

	return convert(sel.Nodes[0]), nil
}

// convert walks n iteratively so deeply nested markup cannot overflow the stack.
func convert(n *html.Node) *content.Node {
	root := content.Named(n.Data, attrsOf(n))

	type pending struct {
		src *html.Node
		dst *content.Node
	}
	stack := []pending{{src: n, dst: root}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for c := cur.src.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				if isFormattingWhitespace(c.Data) {
					continue
				}
				cur.dst.Children = append(cur.dst.Children, content.Text(c.Data))
			case html.ElementNode:
				name := strings.ToLower(c.Data)
				if droppedElements[name] {
					continue
				}
				child := content.Named(name, attrsOf(c))
				cur.dst.Children = append(cur.dst.Children, child)
				stack = append(stack, pending{src: c, dst: child})
			}
		}
	}

	return root
}

// isFormattingWhitespace reports whitespace-only text that spans a line
// break. That is indentation from the HTML source, not user content.
func isFormattingWhitespace(s string) bool {
	return strings.TrimSpace(s) == "" && strings.ContainsAny(s, "\r\n")
}

func attrsOf(n *html.Node) map[string]string {
	if len(n.Attr) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[strings.ToLower(a.Key)] = a.Val
	}
	return attrs
}
