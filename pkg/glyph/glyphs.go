// Package glyph holds the symbols and aliases used to present categories.
package glyph

import (
	"fmt"
	"strings"

	"tableflip.dev/hairjourney/pkg/catalog"
)

// Glyph describes how one category is shown and typed.
type Glyph struct {
	Category catalog.Category
	Symbol   string
	Noun     string
	Meaning  string
	Aliases  []string
}

func (g Glyph) String() string {
	return g.Symbol
}

// Unknown is shown for categories the journal does not know about.
var Unknown = Glyph{Symbol: "·", Noun: "item", Meaning: "uncategorised"}

// DefaultGlyphs returns one glyph per known category, in rank order.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Category: catalog.CategoryGoals,
			Symbol:   "◎",
			Noun:     "goal",
			Meaning:  "something you are working towards",
			Aliases:  []string{"goal", "goals", "g"},
		},
		{
			Category: catalog.CategoryEntries,
			Symbol:   "✎",
			Noun:     "entry",
			Meaning:  "a timeline entry: wash day, treatment, observation",
			Aliases:  []string{"entry", "entries", "e", "journal"},
		},
		{
			Category: catalog.CategoryRoutines,
			Symbol:   "↻",
			Noun:     "routine",
			Meaning:  "a recurring routine",
			Aliases:  []string{"routine", "routines", "r"},
		},
	}
}

// For returns the glyph for c, or Unknown.
func For(c catalog.Category) Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Category == c {
			return g
		}
	}
	return Unknown
}

// CategoryForAlias resolves a typed alias to a known category.
func CategoryForAlias(alias string) (catalog.Category, error) {
	a := strings.ToLower(strings.TrimSpace(alias))
	for _, g := range DefaultGlyphs() {
		for _, candidate := range g.Aliases {
			if candidate == a {
				return g.Category, nil
			}
		}
	}
	return "", fmt.Errorf("glyph: unknown category %q", alias)
}

// FilterForAlias resolves filter input. "all", "*" and "" select everything;
// known aliases map to their category; anything else passes through as-is so
// it can match categories the journal does not ship with.
func FilterForAlias(alias string) string {
	a := strings.ToLower(strings.TrimSpace(alias))
	switch a {
	case "", "*", catalog.FilterAll:
		return catalog.FilterAll
	}
	if c, err := CategoryForAlias(a); err == nil {
		return string(c)
	}
	return a
}
