package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GridOptions controls the text layout of a View's cards.
type GridOptions struct {
	Width         int
	CellWidth     int
	Selected      int
	CardStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
	MutedStyle    lipgloss.Style
	// Offset and Rows window the grid; Rows <= 0 shows everything.
	Offset int
	Rows   int
}

// DefaultGridOptions lays cards out in 24-column cells with a rounded border.
func DefaultGridOptions(width int) GridOptions {
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245")).
		Padding(0, 1)
	return GridOptions{
		Width:         width,
		CellWidth:     24,
		Selected:      -1,
		CardStyle:     card,
		SelectedStyle: card.BorderForeground(lipgloss.Color("212")).Bold(true),
		MutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Columns is how many cells of cellWidth fit in width. Always at least one.
func Columns(width, cellWidth int) int {
	if cellWidth <= 0 || width < cellWidth {
		return 1
	}
	return width / cellWidth
}

// Grid renders the cards in rows. Empty and failed views render their message.
func Grid(v View, opts GridOptions) string {
	if v.Failed || v.Empty {
		return v.Message
	}

	cols := Columns(opts.Width, opts.CellWidth)
	inner := opts.CellWidth - opts.CardStyle.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	var rows []string
	for start := 0; start < len(v.Cards); start += cols {
		end := start + cols
		if end > len(v.Cards) {
			end = len(v.Cards)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			style := opts.CardStyle
			if i == opts.Selected {
				style = opts.SelectedStyle
			}
			body := lipgloss.JoinVertical(lipgloss.Left,
				Truncate(v.Cards[i].Label, inner),
				opts.MutedStyle.Render(Truncate(v.Cards[i].Dir, inner)),
			)
			cells = append(cells, style.Width(inner+style.GetHorizontalPadding()).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	if opts.Rows > 0 {
		first := opts.Offset
		if first > len(rows) {
			first = len(rows)
		}
		last := first + opts.Rows
		if last > len(rows) {
			last = len(rows)
		}
		rows = rows[first:last]
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Plain renders one "label<TAB>path" line per card, for non-terminal output.
func Plain(v View) string {
	if v.Failed || v.Empty {
		return v.Message + "\n"
	}
	var b strings.Builder
	for _, c := range v.Cards {
		b.WriteString(c.Label)
		b.WriteByte('\t')
		b.WriteString(c.Path)
		b.WriteByte('\n')
	}
	return b.String()
}

// Truncate shortens s to at most width cells, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
