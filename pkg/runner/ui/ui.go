// Package ui runs the interactive catalog view.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/hairjourney/pkg/app"
	"tableflip.dev/hairjourney/pkg/tui/catalogview"
)

type UI struct {
	Service *app.Service
	Open    app.OpenOptions
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("ui: no service")
	}
	return catalogview.Run(ctx, d.Service, d.Open)
}
