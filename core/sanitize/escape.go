// Package sanitize — text escaping and HTML scrubbing.
// EscapeText is the only defence on the text serialization path: every
// text leaf goes through it before landing in the Markdown output.
package sanitize

import "strings"

type escMap struct {
	char byte
	seq  string
}

// textEscaper is applied in order. '&' comes first so entities produced by
// later rules are never escaped again within the same call.
var textEscaper = []escMap{
	{'&', "&amp;"},
	{'<', "&lt;"},
	{'>', "&gt;"},
	{'"', "&quot;"},
	{'\'', "&#039;"},
}

// EscapeText replaces the five HTML-significant characters with entities.
// Every other byte is copied through unchanged. The transform is one-way:
// escaping an already escaped string escapes its ampersands again.
func EscapeText(raw string) string {
	if !strings.ContainsAny(raw, `&<>"'`) {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw) + len(raw)/4)

	start := 0
	for i := 0; i < len(raw); i++ {
		for _, e := range textEscaper {
			if raw[i] == e.char {
				b.WriteString(raw[start:i])
				b.WriteString(e.seq)
				start = i + 1
				break
			}
		}
	}
	b.WriteString(raw[start:])
	return b.String()
}
