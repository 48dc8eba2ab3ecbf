// Package list renders a catalog view to the terminal.
package list

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/hairjourney/pkg/app"
	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/glyph"
	"tableflip.dev/hairjourney/pkg/printers"
	"tableflip.dev/hairjourney/pkg/timeutil"
)

type List struct {
	Service *app.Service

	Filter string
	Sort   string
	Search string
	// Last narrows to a look-back window such as "2w". Empty shows everything.
	Last string

	ShowID bool
	JSON   bool
	Width  int
	Out    io.Writer

	now func() time.Time
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("list: no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	opts := app.OpenOptions{Filter: n.Filter, Sort: n.Sort, Search: n.Search}
	label := ""
	if n.Last != "" {
		now := time.Now
		if n.now != nil {
			now = n.now
		}
		since, l, err := timeutil.Since(n.Last, now())
		if err != nil {
			return err
		}
		opts.Since, label = since, l
	}

	tl, err := n.Service.Open(ctx, opts)
	if err != nil {
		return err
	}
	entries, view := tl.Visible()
	state := tl.State()

	if n.JSON {
		return printers.JSON(out, state, entries)
	}

	pp := printers.PrettyPrint{Out: out, ShowID: n.ShowID, Width: n.Width}
	pp.NewLine()
	pp.TitleWithCount(heading(state.Filter, label), view.Count)
	if view.Empty() {
		pp.Empty(emptyMessage(state, tl.Len()))
		return nil
	}
	pp.Timeline(entries...)
	return nil
}

func heading(filter, window string) string {
	title := "Everything"
	if filter != "" && filter != catalog.FilterAll {
		g := glyph.For(catalog.Category(filter))
		title = fmt.Sprintf("%s %s", g.Symbol, filter)
	}
	if window != "" {
		title += " · last " + window
	}
	return title
}

func emptyMessage(state catalog.ViewState, total int) string {
	switch {
	case total == 0:
		return "nothing recorded yet, try: hairjourney add entry wash day"
	case state.Search != "":
		return fmt.Sprintf("no titles match %q", state.Search)
	case state.Filter != catalog.FilterAll:
		return fmt.Sprintf("no %s yet", state.Filter)
	default:
		return "nothing matches this view"
	}
}
