// Package edit — link and image mutations for the editing surface.
// Each helper validates the user's URL before it touches an attribute,
// so nothing reaches an href or src without passing the validator.
package edit

import (
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/editmark/core/content"
	"github.com/gaurav-prasanna/editmark/core/validate"
)

// Link builds a link element around children. An empty URL returns
// validate.ErrEmptyURL and no node; a rejected URL returns the rejection.
func Link(rawURL string, children ...*content.Node) (*content.Node, error) {
	u, err := validate.EnforceSecureURL(rawURL)
	if err != nil {
		return nil, err
	}
	return content.Element(content.Link, map[string]string{"href": u.Value}, children...), nil
}

// SetLink updates the target of an existing link.
//
// A blank URL unlinks: the returned node is a pass-through wrapper holding
// the link's children. A rejected URL leaves link untouched and returns
// the rejection so the caller can show a message. The input node is never
// mutated; a valid URL yields a copy with the new href.
func SetLink(link *content.Node, rawURL string) (*content.Node, error) {
	if link == nil || link.Tag != content.Link {
		return nil, fmt.Errorf("set link: node is not a link")
	}

	u, err := validate.EnforceSecureURL(rawURL)
	if errors.Is(err, validate.ErrEmptyURL) {
		return Unlink(link), nil
	}
	if err != nil {
		return link, err
	}

	attrs := cloneAttrs(link.Attrs)
	attrs["href"] = u.Value
	return &content.Node{
		Kind:     content.ElementNode,
		Tag:      content.Link,
		Name:     link.Name,
		Attrs:    attrs,
		Children: link.Children,
	}, nil
}

// Unlink replaces a link with an untagged wrapper around its children.
// The serializer passes unknown elements through, so the text survives.
func Unlink(link *content.Node) *content.Node {
	return content.Named("span", nil, link.Children...)
}

// Image builds an image element. The width is optional: an invalid value
// is dropped rather than treated as an error.
func Image(src, alt, width string) (*content.Node, error) {
	u, err := validate.EnforceSecureURL(src)
	if err != nil {
		return nil, err
	}

	attrs := map[string]string{
		"src": u.Value,
		"alt": alt,
	}
	if w, ok := validate.Width(width); ok {
		attrs["width"] = w
	}
	return content.Element(content.Image, attrs), nil
}

func cloneAttrs(in map[string]string) map[string]string {
	out := make(map[string]string, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
