package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"vitals/internal/tui"
)

func runDashboard() error {
	app := tui.NewApp(eng, syncRunner(), cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
