package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchName(t *testing.T) {
	names := []string{"Guns N Petals", "Matt Quevado", "The Wild Sax Band"}
	id := func(s string) string { return s }

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "single letter matches all", term: "a", want: names},
		{name: "case insensitive", term: "band", want: []string{"The Wild Sax Band"}},
		{name: "upper case term", term: "GUNS", want: []string{"Guns N Petals"}},
		{name: "empty matches all", term: "", want: names},
		{name: "space matches only names containing one", term: " ", want: []string{"Guns N Petals", "Matt Quevado", "The Wild Sax Band"}},
		{name: "surrounding spaces are significant", term: "petals ", want: []string{}},
		{name: "leading space kept", term: " petals", want: []string{"Guns N Petals"}},
		{name: "no match", term: "zz", want: []string{}},
		{name: "substring across words", term: "x b", want: []string{"The Wild Sax Band"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchName(names, id, tt.term))
		})
	}
}

func TestMatchName_unicodeFolding(t *testing.T) {
	names := []string{"Café Straße", "ΣΊΣΥΦΟΣ Club"}
	id := func(s string) string { return s }

	assert.Equal(t, []string{"Café Straße"}, MatchName(names, id, "STRASSE"))
	assert.Equal(t, []string{"Café Straße"}, MatchName(names, id, "CAFÉ"))
	assert.Equal(t, []string{"ΣΊΣΥΦΟΣ Club"}, MatchName(names, id, "σίσυφος"))
}

func TestMatchName_spaceTermSkipsSingleWordNames(t *testing.T) {
	names := []string{"Guns N Petals", "Solo", "Matt Quevado"}
	id := func(s string) string { return s }

	assert.Equal(t, []string{"Guns N Petals", "Matt Quevado"}, MatchName(names, id, " "))
}
