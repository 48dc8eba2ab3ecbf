// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/glyph"
)

// ViewOptions selects the initial catalog view. Empty values fall back to
// the configured defaults.
type ViewOptions struct {
	Filter string
	Sort   string
	Search string
	Last   string
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		"Only show one category: all, entries, goals, routines.")
	cmd.Flags().StringVarP(&o.Sort, "sort", "s", "",
		"Sort order: "+strings.Join(sortNames(), ", ")+".")
	cmd.Flags().StringVarP(&o.Search, "search", "q", "",
		"Only show titles containing this text, ignoring case.")
	cmd.Flags().StringVar(&o.Last, "last", "",
		"Only show records from this window, for example 3d or 2mo.")

	_ = cmd.RegisterFlagCompletionFunc("filter", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return filterNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return sortNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

func filterNames() []string {
	names := []string{catalog.FilterAll}
	for _, g := range glyph.DefaultGlyphs() {
		names = append(names, string(g.Category))
	}
	return names
}

func sortNames() []string {
	orders := catalog.AllSortOrders()
	names := make([]string, 0, len(orders))
	for _, o := range orders {
		names = append(names, string(o))
	}
	return names
}
