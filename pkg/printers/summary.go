package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/hairjourney/pkg/app"
	"tableflip.dev/hairjourney/pkg/glyph"
)

// Summary prints one section per kind with its latest record.
func (pp *PrettyPrint) Summary(res app.SummaryResult, label string) {
	pp.Title(fmt.Sprintf("Last %s: %s to %s", label, res.Since.Format("Jan 2"), res.Until.Format("Jan 2 2006")))
	if res.Total == 0 {
		pp.Empty("no records in this window")
		return
	}
	faint := color.New(color.Faint)
	for _, sec := range res.Sections {
		g := glyph.For(sec.Kind)
		_, _ = fmt.Fprintf(pp.out(), "%s %-10s %3d", g.Symbol, sec.Kind, sec.Count)
		if sec.Latest != nil {
			_, _ = faint.Fprintf(pp.out(), "  latest: %s (%s)", sec.Latest.Title, sec.Latest.Created.Date())
		}
		pp.NewLine()
	}
	pp.NewLine()
	pp.TitleWithCount("Total", res.Total)
}
