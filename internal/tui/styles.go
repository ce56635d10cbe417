package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/iconshelf/internal/render"
)

const (
	gridCellWidth = 24
	// chromeHeight covers title, tabs, search, summary, toast and footer.
	chromeHeight = 10
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingRight(2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(accentColor).
			Padding(0, 2)

	idleTabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.HiddenBorder()).
			BorderBottom(true).
			Padding(0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingTop(2).
			PaddingLeft(2)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(accentColor).
				Bold(true)
)

func gridOptions(width int) render.GridOptions {
	opts := render.DefaultGridOptions(width)
	opts.CellWidth = gridCellWidth
	opts.CardStyle = cardStyle
	opts.SelectedStyle = selectedCardStyle
	opts.MutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
	return opts
}
