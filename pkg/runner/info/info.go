package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/hairjourney/pkg/glyph"
	"tableflip.dev/hairjourney/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("HAIRJOURNEY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "HAIRJOURNEY_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "HAIRJOURNEY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	view := n.Config.View()
	_, _ = fmt.Fprintln(out, "path:       ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "log.level:  ", n.Config.LogLevel())
	_, _ = fmt.Fprintln(out, "view.filter:", view.Filter)
	_, _ = fmt.Fprintln(out, "view.sort:  ", view.Sort)
	_, _ = fmt.Fprintln(out, "view.locale:", view.Locale)

	if n.Persistence == nil {
		return errors.New("info: no persistence")
	}

	_, _ = fmt.Fprintln(out, "Kinds:")
	found := 0
	for _, k := range n.Persistence.Kinds(ctx) {
		_, _ = fmt.Fprintf(out, "  %s %s (%d)\n", glyph.For(k).Symbol, k, len(n.Persistence.List(ctx, k)))
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintln(out, "  nothing recorded yet")
	}
	return nil
}
