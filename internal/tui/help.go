package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	sections := []string{
		cardTitleStyle.Render("Key Bindings"),
		RenderKeyHelp("1", "dashboard: today's verdict, recovery score and trends"),
		RenderKeyHelp("2", "history: score chart and day-by-day table"),
		RenderKeyHelp("3 / s", "sync: run the device export script"),
		RenderKeyHelp("r", "reload the current screen"),
		RenderKeyHelp("?", "toggle this help"),
		RenderKeyHelp("esc", "back"),
		RenderKeyHelp("q", "quit"),
		"",
		cardTitleStyle.Render("Reading the Verdict"),
		mutedStyle.Render("GREEN   all gates passed, full step target"),
		mutedStyle.Render("YELLOW  warning flags present, reduced target"),
		mutedStyle.Render("RED     a red flag fired, rest day target"),
		mutedStyle.Render("GRAY    no data for the day, sync first"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
