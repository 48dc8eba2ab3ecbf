// Package key prints the legend of categories and sort orders.
package key

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/glyph"
)

// sortHelp describes each order for the legend.
var sortHelp = map[catalog.SortOrder]string{
	catalog.SortNewest:    "newest first",
	catalog.SortOldest:    "oldest first",
	catalog.SortTitleAsc:  "title A to Z",
	catalog.SortTitleDesc: "title Z to A",
	catalog.SortCategory:  "grouped by category rank",
}

type Key struct {
	// Ranks shown for the category sort; nil means catalog.DefaultRanks.
	Ranks catalog.RankTable
	Out   io.Writer
}

// Do renders the category and sort order keys.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	ranks := k.Ranks
	if len(ranks) == 0 {
		ranks = catalog.DefaultRanks
	}
	bold := color.New(color.Bold)

	glyphs := glyph.DefaultGlyphs()
	sort.SliceStable(glyphs, func(i, j int) bool {
		return ranks.Rank(glyphs[i].Category) < ranks.Rank(glyphs[j].Category)
	})

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("  "), bold.Sprint("Category"), bold.Sprint("Rank"), bold.Sprint("Aliases"), bold.Sprint("Meaning"))
	for _, g := range glyphs {
		rank := "-"
		if r := ranks.Rank(g.Category); r != catalog.Unranked {
			rank = fmt.Sprint(r)
		}
		tbl.AddRow(g.Symbol, string(g.Category), rank, strings.Join(g.Aliases, ", "), g.Meaning)
	}
	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Sort"), bold.Sprint("Meaning"))
	for _, o := range catalog.AllSortOrders() {
		tbl.AddRow(string(o), sortHelp[o])
	}
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
