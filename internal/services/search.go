package services

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchName returns the items whose name contains term, ignoring case.
// Matching uses Unicode case folding; only an empty term matches every item.
// The term is used as given, surrounding spaces included. Order is preserved.
func MatchName[T any](items []T, nameOf func(T) string, term string) []T {
	matched := make([]T, 0, len(items))
	if term == "" {
		return append(matched, items...)
	}
	// A Caser carries state, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(term)
	for _, it := range items {
		if strings.Contains(fold.String(nameOf(it)), needle) {
			matched = append(matched, it)
		}
	}
	return matched
}
