package tui

import (
	"github.com/charmbracelet/lipgloss"

	"vitals/internal/engine"
)

// Colors
var (
	greenColor  = lipgloss.Color("#10B981")
	yellowColor = lipgloss.Color("#F59E0B")
	redColor    = lipgloss.Color("#EF4444")
	grayColor   = lipgloss.Color("#6B7280")
	accentColor = lipgloss.Color("#7C3AED")
	textColor   = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	navInactiveStyle = lipgloss.NewStyle().
				Foreground(grayColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(grayColor).
			Padding(1, 2)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(grayColor).
				Width(18)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(grayColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(redColor)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(grayColor).
			MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)
)

// statusStyles maps a verdict status to its display style.
var statusStyles = map[engine.Status]lipgloss.Style{
	engine.StatusGreen:  lipgloss.NewStyle().Bold(true).Foreground(greenColor),
	engine.StatusYellow: lipgloss.NewStyle().Bold(true).Foreground(yellowColor),
	engine.StatusRed:    lipgloss.NewStyle().Bold(true).Foreground(redColor),
	engine.StatusGray:   lipgloss.NewStyle().Bold(true).Foreground(grayColor),
}

// RenderStatus renders a verdict status in its color.
func RenderStatus(s engine.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}

// RenderMetric renders a labeled metric line with an optional trend arrow.
func RenderMetric(label, value, trend string) string {
	line := metricLabelStyle.Render(label) + metricValueStyle.Render(value)
	if trend != "" {
		line += mutedStyle.Render(" " + trend)
	}
	return line
}

// RenderKeyHelp renders a key binding help item
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + mutedStyle.Render(desc)
}
