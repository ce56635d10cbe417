package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the colors of an Alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantError
)

var (
	alertColors = map[AlertVariant]lipgloss.Color{
		AlertVariantInfo:    lipgloss.Color("245"),
		AlertVariantSuccess: lipgloss.Color("42"),
		AlertVariantError:   lipgloss.Color("196"),
	}
	alertIcons = map[AlertVariant]string{
		AlertVariantSuccess: "✓",
	}
)

// Alert is a one-shot message. Inline alerts render on a single line for
// toasts; boxed alerts get a border and padding for banners.
type Alert struct {
	Variant AlertVariant
	Title   string
	Message string
	Boxed   bool
}

// SuccessToast is the inline acknowledgement shown after a copy.
func SuccessToast(message string) Alert {
	return Alert{Variant: AlertVariantSuccess, Message: message}
}

// ErrorToast is the inline error shown when a copy fails.
func ErrorToast(title, message string) Alert {
	return Alert{Variant: AlertVariantError, Title: title, Message: message}
}

// ErrorBanner is the boxed error shown in place of content.
func ErrorBanner(title, detail string) Alert {
	return Alert{Variant: AlertVariantError, Title: title, Message: detail, Boxed: true}
}

// View renders the alert.
func (a Alert) View() string {
	color, ok := alertColors[a.Variant]
	if !ok {
		color = alertColors[AlertVariantInfo]
	}

	if !a.Boxed {
		parts := make([]string, 0, 3)
		if icon := alertIcons[a.Variant]; icon != "" {
			parts = append(parts, icon)
		}
		if a.Title != "" {
			parts = append(parts, a.Title+":")
		}
		if a.Message != "" {
			parts = append(parts, a.Message)
		}
		style := lipgloss.NewStyle().Foreground(color).Bold(a.Variant == AlertVariantSuccess)
		return style.Render(strings.Join(parts, " "))
	}

	var lines []string
	if a.Title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(a.Title))
	}
	if a.Message != "" {
		lines = append(lines, a.Message)
	}

	style := lipgloss.NewStyle().
		Foreground(color).
		Background(lipgloss.Color("52")).
		Padding(1, 2).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(color)
	return style.Render(strings.Join(lines, "\n"))
}
