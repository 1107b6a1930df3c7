package nlp

import (
	"iter"
	"slices"
	"strings"
)

// Items yields the comma-separated entries of text, normalized, skipping blanks.
// Commas inside an entry are not escaped, so such entries get split.
// Every call returns a fresh sequence.
func Items(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for part := range strings.SplitSeq(text, ",") {
			item := Normalize(part)
			if item == "" {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// SplitList is the eager form of Items. It never returns nil.
func SplitList(text string) []string {
	out := slices.Collect(Items(text))
	if out == nil {
		return []string{}
	}
	return out
}
