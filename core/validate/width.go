package validate

import (
	"regexp"
	"strings"
)

// WidthPattern accepts digits optionally followed by "px" or "%".
var WidthPattern = regexp.MustCompile(`^\d+(px|%)?$`)

// Width validates an image width. A value that does not match is
// reported as absent rather than rejected.
func Width(raw string) (string, bool) {
	w := strings.TrimSpace(raw)
	if w == "" || !WidthPattern.MatchString(w) {
		return "", false
	}
	return w, true
}
