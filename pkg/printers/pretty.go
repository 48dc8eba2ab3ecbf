package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/entry"
	"tableflip.dev/hairjourney/pkg/glyph"
)

// DefaultWidth caps rendered titles when no terminal width is known.
const DefaultWidth = 48

// PrettyPrint renders records as coloured tables.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out    io.Writer
	ShowID bool
	// Width is the maximum title width; zero means DefaultWidth.
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() uint {
	if pp.Width <= 0 {
		return DefaultWidth
	}
	return uint(pp.Width)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// TitleWithCount prints title followed by a faint record count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	noun := "records"
	if count == 1 {
		noun = "record"
	}
	_, _ = c.Fprintf(pp.out(), " - %d %s\n", count, noun)
}

// Empty prints the empty-state line.
func (pp *PrettyPrint) Empty(msg string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), " %s\n\n", msg)
}

// Timeline prints entries in the order given. An empty slice prints the
// empty state instead of a table.
func (pp *PrettyPrint) Timeline(entries ...*entry.Entry) {
	if len(entries) == 0 {
		pp.Empty("nothing to show")
		return
	}

	id := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		g := glyph.For(e.Kind)
		title := truncate.StringWithTail(e.Title, pp.width(), "…")
		row := []interface{}{g.Symbol, title, faint.Sprint(e.Created.Date()), Detail(e)}
		if pp.ShowID {
			row = append([]interface{}{id.Sprint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Detail summarises the kind-specific fields of e in a few characters.
func Detail(e *entry.Entry) string {
	switch e.Kind {
	case catalog.CategoryEntries:
		if e.Rating == 0 {
			return ""
		}
		return strings.Repeat("★", e.Rating) + strings.Repeat("☆", 5-e.Rating)
	case catalog.CategoryGoals:
		s := fmt.Sprintf("%d%%", e.Progress)
		if e.Target != nil && !e.Target.IsZero() {
			s += " by " + e.Target.Date()
		}
		return s
	case catalog.CategoryRoutines:
		parts := make([]string, 0, 2)
		if e.Frequency != "" {
			parts = append(parts, e.Frequency)
		}
		if n := len(e.Products); n > 0 {
			parts = append(parts, fmt.Sprintf("%d products", n))
		}
		return strings.Join(parts, ", ")
	}
	return ""
}
