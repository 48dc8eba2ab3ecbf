package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/hairjourney/pkg/app"
	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/glyph"
	"tableflip.dev/hairjourney/pkg/printers"
)

type Add struct {
	Kind    catalog.Category
	Title   string
	Options app.AddOptions

	Service *app.Service
	ShowID  bool
	Out     io.Writer
}

// Do stores the record and prints the kind it was added to, newest first.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("add: no service")
	}
	e, err := n.Service.Add(ctx, n.Kind, n.Title, n.Options)
	if err != nil {
		return err
	}

	tl, err := n.Service.Open(ctx, app.OpenOptions{Filter: string(e.Kind), Sort: string(catalog.SortNewest)})
	if err != nil {
		return err
	}
	entries, view := tl.Visible()

	g := glyph.For(e.Kind)
	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount(g.Symbol+" "+string(e.Kind), view.Count)
	pp.Timeline(entries...)
	return nil
}
