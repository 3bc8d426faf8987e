// Package content defines the rich-text content tree handed over by the
// editing surface. Nodes are read-only once built: the serializer walks
// them but never mutates them.
package content

import (
	"fmt"
	"strings"
)

// Kind distinguishes text leaves from tagged elements.
type Kind int

const (
	TextNode Kind = iota
	ElementNode
)

// Tag is the closed set of element kinds the serializer understands.
type Tag int

const (
	Unknown Tag = iota
	Bold
	Italic
	Heading1
	Heading2
	Heading3
	Heading4
	Heading5
	Heading6
	Paragraph
	Div
	LineBreak
	UnorderedList
	OrderedList
	ListItem
	Rule
	Link
	Image
)

var tagNames = map[Tag]string{
	Unknown:       "unknown",
	Bold:          "bold",
	Italic:        "italic",
	Heading1:      "h1",
	Heading2:      "h2",
	Heading3:      "h3",
	Heading4:      "h4",
	Heading5:      "h5",
	Heading6:      "h6",
	Paragraph:     "paragraph",
	Div:           "div",
	LineBreak:     "br",
	UnorderedList: "ul",
	OrderedList:   "ol",
	ListItem:      "li",
	Rule:          "hr",
	Link:          "link",
	Image:         "image",
}

// htmlTags maps lowercase HTML element names onto tags.
var htmlTags = map[string]Tag{
	"b":      Bold,
	"strong": Bold,
	"i":      Italic,
	"em":     Italic,
	"h1":     Heading1,
	"h2":     Heading2,
	"h3":     Heading3,
	"h4":     Heading4,
	"h5":     Heading5,
	"h6":     Heading6,
	"p":      Paragraph,
	"div":    Div,
	"br":     LineBreak,
	"ul":     UnorderedList,
	"ol":     OrderedList,
	"li":     ListItem,
	"hr":     Rule,
	"a":      Link,
	"img":    Image,
}

// Lookup returns the tag for an HTML element name. Names outside the
// editor vocabulary map to Unknown.
func Lookup(name string) Tag {
	if tag, ok := htmlTags[strings.ToLower(strings.TrimSpace(name))]; ok {
		return tag
	}
	return Unknown
}

// String returns a short name for the tag.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// HeadingLevel returns 1..6 for heading tags and 0 otherwise.
func (t Tag) HeadingLevel() int {
	if t >= Heading1 && t <= Heading6 {
		return int(t-Heading1) + 1
	}
	return 0
}

// IsList reports whether the tag is an ordered or unordered list.
func (t Tag) IsList() bool {
	return t == UnorderedList || t == OrderedList
}

// Node is a single node in the content tree. A parent owns its children;
// the tree must be acyclic and no node may appear under two parents.
type Node struct {
	Kind     Kind
	Text     string
	Tag      Tag
	Name     string // original element name, lowercase
	Attrs    map[string]string
	Children []*Node
}

// Text creates a text leaf.
func Text(s string) *Node {
	return &Node{Kind: TextNode, Text: s}
}

// Element creates an element node with the given tag.
func Element(tag Tag, attrs map[string]string, children ...*Node) *Node {
	return &Node{
		Kind:     ElementNode,
		Tag:      tag,
		Name:     tag.String(),
		Attrs:    attrs,
		Children: children,
	}
}

// Named creates an element node from an HTML element name, resolving its tag.
func Named(name string, attrs map[string]string, children ...*Node) *Node {
	name = strings.ToLower(strings.TrimSpace(name))
	return &Node{
		Kind:     ElementNode,
		Tag:      Lookup(name),
		Name:     name,
		Attrs:    attrs,
		Children: children,
	}
}

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil || n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[key]
	return v, ok
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool {
	return n != nil && n.Kind == TextNode
}

// IsBlank reports whether the subtree holds no visible text and no
// self-contained elements (images, rules, line breaks).
func (n *Node) IsBlank() bool {
	if n == nil {
		return true
	}
	if n.IsText() {
		return strings.TrimSpace(n.Text) == ""
	}
	switch n.Tag {
	case Image, Rule, LineBreak:
		return false
	}
	for _, c := range n.Children {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}
