package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the catalog view.
type Theme struct {
	Header HeaderTheme
	List   ListTheme
	Footer FooterTheme
}

// HeaderTheme styles the title and view-state line.
type HeaderTheme struct {
	Title  lipgloss.Style
	State  lipgloss.Style
	Active lipgloss.Style
	Search lipgloss.Style
}

// ListTheme styles catalog rows.
type ListTheme struct {
	Row      lipgloss.Style
	Selected lipgloss.Style
	Symbol   lipgloss.Style
	Date     lipgloss.Style
	Detail   lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	accent := lipgloss.Color("212")
	faint := lipgloss.Color("244")

	return Theme{
		Header: HeaderTheme{
			Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
			State:  lipgloss.NewStyle().Foreground(faint),
			Active: lipgloss.NewStyle().Bold(true),
			Search: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		},
		List: ListTheme{
			Row:      lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Reverse(true),
			Symbol:   lipgloss.NewStyle().Foreground(accent),
			Date:     lipgloss.NewStyle().Foreground(faint),
			Detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Empty:    lipgloss.NewStyle().Italic(true).Foreground(faint).Padding(1, 2),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
	}
}
