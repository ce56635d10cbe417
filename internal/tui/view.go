package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/iconshelf/internal/browser"
	"github.com/alexisbeaulieu97/iconshelf/internal/render"
	"github.com/alexisbeaulieu97/iconshelf/internal/tui/components"
)

// View renders the current model state
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	switch m.ctrl.Status() {
	case browser.LoadPending:
		content.WriteString(emptyStateStyle.Render(m.spinner.View() + " Loading icons…"))
	case browser.LoadFailed:
		content.WriteString(m.renderFailure())
	default:
		content.WriteString(m.search.View())
		content.WriteString("\n")
		content.WriteString(m.renderSummary())
		content.WriteString("\n")
		content.WriteString(m.renderBody())
	}
	content.WriteString("\n")

	if toast := m.renderToast(); toast != "" {
		content.WriteString(toast)
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter())
	return content.String()
}

// renderHeader renders the title and theme tabs.
func (m Model) renderHeader() string {
	tabs := m.ctrl.Tabs()
	entries := make([]components.TabEntry, len(tabs))
	for i, tab := range tabs {
		entries[i] = components.TabEntry{
			Label:  tab.Label,
			Key:    fmt.Sprintf("%d", i+1),
			Active: tab.Active,
		}
	}

	row := components.Tabs{
		Entries:     entries,
		ActiveStyle: activeTabStyle,
		IdleStyle:   idleTabStyle,
	}.View()

	return lipgloss.JoinHorizontal(lipgloss.Bottom, titleStyle.Render("iconshelf"), row)
}

func (m Model) renderSummary() string {
	total := m.ctrl.State().Catalog().Len(m.ctrl.State().Theme())
	meter := components.NewMeter(total).View(m.view.Count())
	return summaryStyle.Render(lipgloss.JoinHorizontal(lipgloss.Left, m.view.Summary, "  ", meter))
}

// renderBody renders the grid or the empty placeholder.
func (m Model) renderBody() string {
	if m.view.Empty {
		return emptyStateStyle.Render(m.view.Message)
	}

	opts := gridOptions(m.width)
	opts.Offset = m.offset
	opts.Rows = m.visibleRows()
	if m.focus == FocusGrid {
		opts.Selected = m.cursor
	}

	grid := render.Grid(m.view, opts)
	var lines []string
	if m.offset > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(mutedColor).Render("▲ More above"))
	}
	lines = append(lines, grid)
	if rows := totalRows(len(m.view.Cards), m.columns()); m.offset+opts.Rows < rows {
		lines = append(lines, lipgloss.NewStyle().Foreground(mutedColor).Render("▼ More below"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderFailure() string {
	return components.ErrorBanner(m.view.Message, m.view.Detail).View()
}

func (m Model) renderToast() string {
	if m.copyErr != "" {
		return components.ErrorToast("Copy failed", m.copyErr).View()
	}
	if m.ack != nil {
		return components.SuccessToast("Copied " + m.ack.URL).View()
	}
	return ""
}

// renderFooter renders the footer with keyboard shortcuts
func (m Model) renderFooter() string {
	return footerStyle.Render(m.help.View(m.keys))
}

func totalRows(cards, cols int) int {
	if cols <= 0 {
		return 0
	}
	return (cards + cols - 1) / cols
}
