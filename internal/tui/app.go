package tui

import (
	"vitals/internal/config"
	"vitals/internal/engine"
	"vitals/internal/sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenHistory
	ScreenSync
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard  DashboardModel
	history    HistoryModel
	syncScreen SyncModel
	help       HelpModel

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(eng *engine.Engine, runner *sync.Runner, display config.DisplayConfig) *App {
	return &App{
		screen:     ScreenDashboard,
		dashboard:  NewDashboardModel(eng),
		history:    NewHistoryModel(eng, display.HistoryDays),
		syncScreen: NewSyncModel(runner),
		help:       NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings, unless a sync is mid-flight
		if a.screen != ScreenSync || !a.syncScreen.syncing {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenDashboard
				return a, a.dashboard.Init()
			case "2":
				a.screen = ScreenHistory
				return a, a.history.Init()
			case "3", "s":
				if a.screen != ScreenSync {
					a.screen = ScreenSync
					return a, a.syncScreen.Init()
				}
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.history.setSize(msg.Width, msg.Height)

	case SyncCompleteMsg:
		// Fresh data just landed; rebuild the dashboard behind the sync view
		// and still let the sync screen mark itself finished.
		var m tea.Model
		m, _ = a.syncScreen.Update(msg)
		a.syncScreen = m.(SyncModel)
		return a, a.dashboard.Init()
	}

	// Route to the active screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenHistory:
		var m tea.Model
		m, cmd = a.history.Update(msg)
		a.history = m.(HistoryModel)
	case ScreenSync:
		var m tea.Model
		m, cmd = a.syncScreen.Update(msg)
		a.syncScreen = m.(SyncModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}
	return a, cmd
}

// View renders the app
func (a *App) View() string {
	nav := a.renderNav()

	var body string
	switch a.screen {
	case ScreenDashboard:
		body = a.dashboard.View()
	case ScreenHistory:
		body = a.history.View()
	case ScreenSync:
		body = a.syncScreen.View()
	case ScreenHelp:
		body = a.help.View()
	}

	footer := statusBarStyle.Render("1 dashboard · 2 history · 3 sync · ? help · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("vitals"),
		nav,
		body,
		footer,
	)
}

func (a *App) renderNav() string {
	items := []struct {
		screen Screen
		label  string
	}{
		{ScreenDashboard, "Dashboard"},
		{ScreenHistory, "History"},
		{ScreenSync, "Sync"},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += navInactiveStyle.Render(" | ")
		}
		if a.screen == item.screen {
			nav += navActiveStyle.Render(item.label)
		} else {
			nav += navInactiveStyle.Render(item.label)
		}
	}
	return nav
}
