// Package sanitize — HTML export scrubbing.
// Rendered HTML passes through a bluemonday policy that only knows the
// editor's element vocabulary and only lets https URLs through.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/gaurav-prasanna/editmark/core/validate"
)

var htmlPolicy = newHTMLPolicy()

func newHTMLPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.RequireParseableURLs(true)
	p.AllowURLSchemes("https")
	p.RequireNoFollowOnLinks(true)

	p.AllowElements(
		"p", "div", "br", "hr",
		"b", "strong", "i", "em", "del",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li",
		"blockquote", "code", "pre",
		"table", "thead", "tbody", "tr", "th", "td",
	)

	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowAttrs("width").Matching(validate.WidthPattern).OnElements("img")
	p.AllowAttrs("start").Matching(bluemonday.Integer).OnElements("ol")

	return p
}

// HTML scrubs a rendered HTML fragment. Disallowed elements are removed
// while their text content is kept; scripts and styles are dropped whole.
func HTML(fragment string) string {
	return htmlPolicy.Sanitize(fragment)
}
