package catalogview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/entry"
	"tableflip.dev/hairjourney/pkg/printers"
)

const barWidth = 10

var (
	progressFrom, _ = colorful.Hex("#e06c75")
	progressTo, _   = colorful.Hex("#98c379")
)

// progressColor blends from red at 0% to green at 100%.
func progressColor(percent int) string {
	t := float64(min(max(percent, 0), 100)) / 100
	return progressFrom.BlendLab(progressTo, t).Clamped().Hex()
}

func progressBar(percent int) string {
	percent = min(max(percent, 0), 100)
	filled := percent * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(progressColor(percent)))
	return style.Render(bar) + fmt.Sprintf(" %3d%%", percent)
}

// detail is printers.Detail with a coloured bar for goals.
func detail(e *entry.Entry) string {
	if e.Kind != catalog.CategoryGoals {
		return printers.Detail(e)
	}
	s := progressBar(e.Progress)
	if e.Target != nil && !e.Target.IsZero() {
		s += " by " + e.Target.Date()
	}
	return s
}
