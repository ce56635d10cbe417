package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Meter shows how many of a theme's icons the current search matches.
type Meter struct {
	bar   progress.Model
	total int
}

// NewMeter creates a meter for a theme holding total icons.
func NewMeter(total int) Meter {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 20
	return Meter{bar: bar, total: total}
}

// View renders "matched/total" followed by the bar.
func (m Meter) View(matched int) string {
	ratio := 0.0
	if m.total > 0 {
		ratio = math.Min(1.0, float64(matched)/float64(m.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", matched, m.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", m.bar.ViewAs(ratio))
}
