package domain

import (
	"fmt"
	"strings"
)

func requireField(errs []string, name, value string) []string {
	if strings.TrimSpace(value) == "" {
		return append(errs, name+" is required")
	}
	return errs
}

func validateGenres(genres []string) []string {
	var errs []string
	for i, g := range genres {
		if strings.TrimSpace(g) == "" {
			errs = append(errs, fmt.Sprintf("genres[%d] must not be empty", i))
		}
	}
	return errs
}

// normalizeGenres trims each tag and never returns nil so the column stays non-null.
func normalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		out = append(out, strings.TrimSpace(g))
	}
	return out
}
