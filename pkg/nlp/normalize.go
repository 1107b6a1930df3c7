package nlp

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

// Normalize collapses every whitespace run (including newlines) to a single
// space and trims the result. Model replies often wrap or indent items.
func Normalize(s string) string {
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
