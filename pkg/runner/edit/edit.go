package edit

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/hairjourney/pkg/app"
	"tableflip.dev/hairjourney/pkg/entry"
	"tableflip.dev/hairjourney/pkg/printers"
)

// Edit changes the title and/or goal progress of one record.
type Edit struct {
	Service *app.Service
	ID      string
	// Title is left alone when empty.
	Title string
	// Progress is left alone when nil. Only goals accept it.
	Progress *int

	Out io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("edit: no service")
	}
	if n.Title == "" && n.Progress == nil {
		return errors.New("edit: nothing to change, give a title or --progress")
	}

	var e *entry.Entry
	var err error
	if n.Title != "" {
		if e, err = n.Service.Edit(ctx, n.ID, n.Title); err != nil {
			return err
		}
	}
	if n.Progress != nil {
		if e, err = n.Service.SetProgress(ctx, n.ID, *n.Progress); err != nil {
			return err
		}
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out, ShowID: true}
	pp.Timeline(e)
	return nil
}
