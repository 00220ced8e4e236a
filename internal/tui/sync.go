package tui

import (
	"context"
	"fmt"
	"strings"

	"vitals/internal/engine"
	"vitals/internal/sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SyncModel is the sync screen model
type SyncModel struct {
	runner  *sync.Runner
	syncing bool
	done    bool
	lines   []string
	err     error

	events chan syncEvent
}

type syncEvent struct {
	line string
	err  error
	done bool
}

// syncLineMsg carries one line of script output.
type syncLineMsg string

// SyncCompleteMsg signals that the sync script has exited.
type SyncCompleteMsg struct {
	Err error
}

// NewSyncModel creates a new sync model
func NewSyncModel(runner *sync.Runner) SyncModel {
	return SyncModel{runner: runner}
}

// syncStartMsg asks the model to launch the script. The launch itself
// happens in Update so the model mutation survives.
type syncStartMsg struct{}

// Init starts the sync when the screen is opened.
func (m SyncModel) Init() tea.Cmd {
	if m.syncing {
		return nil
	}
	return func() tea.Msg { return syncStartMsg{} }
}

func (m *SyncModel) startSync() tea.Cmd {
	m.syncing = true
	m.done = false
	m.err = nil
	m.lines = nil
	m.events = make(chan syncEvent, 64)

	events := m.events
	runner := m.runner
	go func() {
		err := runner.Run(context.Background(), func(line string) {
			events <- syncEvent{line: line}
		})
		events <- syncEvent{err: err, done: true}
		close(events)
	}()

	return waitForSyncEvent(events)
}

// waitForSyncEvent blocks on the next script event. Re-issued from Update
// after every message so the stream keeps flowing.
func waitForSyncEvent(events chan syncEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok || ev.done {
			return SyncCompleteMsg{Err: ev.err}
		}
		return syncLineMsg(ev.line)
	}
}

// Update handles messages
func (m SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncStartMsg:
		if m.syncing {
			return m, nil
		}
		cmd := m.startSync()
		return m, cmd
	case syncLineMsg:
		m.lines = append(m.lines, string(msg))
		return m, waitForSyncEvent(m.events)
	case SyncCompleteMsg:
		m.syncing = false
		m.done = true
		m.err = msg.Err
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "r" && !m.syncing {
			return m, m.startSync()
		}
	}
	return m, nil
}

// View renders the sync screen
func (m SyncModel) View() string {
	title := cardTitleStyle.Render("Device Sync")

	var status string
	switch {
	case m.syncing:
		status = "Running export script..."
	case m.err != nil:
		status = errorStyle.Render(fmt.Sprintf("Sync failed: %v", m.err))
	case m.done:
		status = statusStyles[engine.StatusGreen].Render("Sync complete.") + mutedStyle.Render(" Press '1' for the dashboard.")
	default:
		status = mutedStyle.Render("Press 'r' to start a sync.")
	}

	var output string
	if len(m.lines) > 0 {
		// Keep only the tail; export scripts are chatty.
		tail := m.lines
		if len(tail) > 15 {
			tail = tail[len(tail)-15:]
		}
		output = mutedStyle.Render(strings.Join(tail, "\n"))
	}

	sections := []string{title, status}
	if output != "" {
		sections = append(sections, "", output)
	}
	if !m.syncing {
		sections = append(sections, statusBarStyle.Render("Press 'r' to run again"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
