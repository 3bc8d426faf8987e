// Package serialize implements the Serializer interface.
// It walks a content tree depth-first, post-order, and emits Markdown.
// Children are rendered in document order before the parent's markup is
// wrapped around them. The walk uses an explicit stack, so arbitrarily
// deep pasted content cannot exhaust the goroutine stack.
package serialize

import (
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/editmark/core/content"
	"github.com/gaurav-prasanna/editmark/core/sanitize"
)

// MarkdownSerializer converts content trees into Markdown.
type MarkdownSerializer struct{}

// New creates a MarkdownSerializer.
func New() *MarkdownSerializer {
	return &MarkdownSerializer{}
}

// Serialize returns the trimmed Markdown for the tree rooted at root.
func (s *MarkdownSerializer) Serialize(root *content.Node) string {
	return Document(root)
}

// Document serializes root and trims leading and trailing whitespace.
// This is the form handed back to the host.
func Document(root *content.Node) string {
	return strings.TrimSpace(Node(root))
}

// frame is one pending node on the traversal stack.
type frame struct {
	node   *content.Node
	parent *content.Node
	index  int // position of node in parent.Children
	next   int // next child to visit
	out    strings.Builder
}

// Node serializes the subtree rooted at n without trimming the result.
// It is a pure function of the tree.
func Node(n *content.Node) string {
	if n == nil {
		return ""
	}

	stack := []*frame{{node: n}}
	for {
		top := stack[len(stack)-1]

		if top.node.Kind == content.ElementNode && top.next < len(top.node.Children) {
			child := top.node.Children[top.next]
			top.next++
			if child == nil {
				continue
			}
			stack = append(stack, &frame{node: child, parent: top.node, index: top.next - 1})
			continue
		}

		var rendered string
		if top.node.IsText() {
			rendered = sanitize.EscapeText(top.node.Text)
		} else {
			rendered = wrap(top.node, top.parent, top.index, top.out.String())
		}

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return rendered
		}
		stack[len(stack)-1].out.WriteString(rendered)
	}
}

// wrap applies the element's own markup around its serialized children.
func wrap(n, parent *content.Node, index int, inner string) string {
	if level := n.Tag.HeadingLevel(); level > 0 {
		return strings.Repeat("#", level) + " " + inner + "\n\n"
	}
	if n.Tag.IsList() {
		return inner + "\n"
	}

	switch n.Tag {
	case content.Bold:
		return "**" + inner + "**"
	case content.Italic:
		return "*" + inner + "*"
	case content.Paragraph, content.Div:
		if strings.TrimSpace(inner) == "" {
			return ""
		}
		return inner + "\n\n"
	case content.LineBreak:
		return "\n"
	case content.ListItem:
		return listPrefix(parent, index) + inner + "\n"
	case content.Rule:
		return "\n---\n\n"
	case content.Link:
		href, _ := n.Attr("href")
		return "[" + inner + "](" + href + ")"
	case content.Image:
		return image(n)
	default:
		return inner
	}
}

// listPrefix numbers an item by its position among the list items of its
// immediate parent. Nested lists therefore restart at 1.
func listPrefix(parent *content.Node, index int) string {
	if parent == nil || parent.Tag != content.OrderedList {
		return "- "
	}
	ordinal := 0
	for i := 0; i <= index && i < len(parent.Children); i++ {
		if c := parent.Children[i]; c != nil && c.Kind == content.ElementNode && c.Tag == content.ListItem {
			ordinal++
		}
	}
	return strconv.Itoa(ordinal) + ". "
}

// image emits standard Markdown unless a width is present. Markdown has no
// width syntax, so sized images fall back to a raw <img> tag.
func image(n *content.Node) string {
	src, _ := n.Attr("src")
	alt, _ := n.Attr("alt")

	if width, ok := n.Attr("width"); ok {
		return "\n<img src=\"" + attr(src) + "\" alt=\"" + attr(alt) + "\" width=\"" + attr(width) + "\">\n"
	}
	return "\n![" + alt + "](" + src + ")\n"
}

// attr keeps attribute values from breaking out of their quotes.
func attr(v string) string {
	return sanitize.EscapeText(v)
}
