package bselect

import (
	"strings"

	"golang.org/x/text/cases"
)

// HasPrefixFold returns a predicate which reports whether a string starts
// with prefix, ignoring case. Comparison uses Unicode case folding, so
// "ÄRGER" matches the prefix "är".
func HasPrefixFold(prefix string) func(string) bool {
	fold := cases.Fold()
	folded := fold.String(prefix)
	return func(s string) bool {
		return strings.HasPrefix(fold.String(s), folded)
	}
}

// Not negates a predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(x T) bool {
		return !pred(x)
	}
}
