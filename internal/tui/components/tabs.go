package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// TabEntry is one theme tab as the header renders it.
type TabEntry struct {
	Label  string
	Key    string
	Active bool
}

// Tabs renders a row of theme tabs.
type Tabs struct {
	Entries     []TabEntry
	ActiveStyle lipgloss.Style
	IdleStyle   lipgloss.Style
}

// View joins the tabs horizontally. Each tab shows its shortcut key.
func (t Tabs) View() string {
	cells := make([]string, 0, len(t.Entries))
	for _, entry := range t.Entries {
		text := entry.Label
		if entry.Key != "" {
			text = fmt.Sprintf("%s %s", entry.Key, entry.Label)
		}
		style := t.IdleStyle
		if entry.Active {
			style = t.ActiveStyle
		}
		cells = append(cells, style.Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
}

// Active returns the label of the active tab, or "" when none is.
func (t Tabs) Active() string {
	for _, entry := range t.Entries {
		if entry.Active {
			return entry.Label
		}
	}
	return ""
}
