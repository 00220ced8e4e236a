package tui

import (
	"fmt"
	"strings"
	"time"

	"vitals/internal/engine"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// HistoryModel is the history screen model
type HistoryModel struct {
	engine  *engine.Engine
	days    int
	points  []engine.HistoryPoint
	loading bool
	err     error

	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewHistoryModel creates a new history model
func NewHistoryModel(eng *engine.Engine, days int) HistoryModel {
	if days <= 0 {
		days = 14
	}
	return HistoryModel{
		engine:  eng,
		days:    days,
		loading: true,
	}
}

func (m *HistoryModel) setSize(width, height int) {
	m.width = width
	// Leave room for the title, nav and footer around the viewport.
	m.height = height - 6
	if m.height < 5 {
		m.height = 5
	}
	if !m.ready {
		m.viewport = viewport.New(width, m.height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = m.height
	}
	m.viewport.SetContent(m.renderContent())
}

// Init initializes the history screen
func (m HistoryModel) Init() tea.Cmd {
	return m.loadHistory
}

type historyMsg struct {
	points []engine.HistoryPoint
	err    error
}

func (m HistoryModel) loadHistory() tea.Msg {
	end := time.Now()
	start := end.AddDate(0, 0, -(m.days - 1))
	points, err := m.engine.History(start, end)
	return historyMsg{points: points, err: err}
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		m.loading = false
		m.err = msg.err
		m.points = msg.points
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.loadHistory
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the history screen
func (m HistoryModel) View() string {
	if m.loading {
		return "\n  Loading history..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if !m.ready {
		return m.renderContent()
	}
	return m.viewport.View()
}

func (m HistoryModel) renderContent() string {
	if len(m.points) == 0 {
		return "\n  No history available."
	}

	sections := []string{
		cardTitleStyle.Render(fmt.Sprintf("Recovery Score · last %d days", m.days)),
		m.renderChart(8, "composite recovery score", func(s *engine.RecoveryScore) float64 { return s.Score }),
		m.renderChart(3, "rhr sub-score", func(s *engine.RecoveryScore) float64 { return s.RHR.Score }),
		m.renderChart(3, "hrv sub-score", func(s *engine.RecoveryScore) float64 { return s.HRV.Score }),
		m.renderChart(3, "stress sub-score", func(s *engine.RecoveryScore) float64 { return s.Stress.Score }),
		"",
		m.renderTable(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderChart plots one score series. Days without a score hold the last
// known value so the line stays continuous.
func (m HistoryModel) renderChart(height int, caption string, pick func(*engine.RecoveryScore) float64) string {
	series := make([]float64, 0, len(m.points))
	last := 50.0
	for _, p := range m.points {
		if p.Score != nil {
			last = pick(p.Score)
		}
		series = append(series, last)
	}

	width := m.width - 12
	if width < 20 {
		width = 20
	}
	graph := asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
	return mutedStyle.Render(graph)
}

func (m HistoryModel) renderTable() string {
	var b strings.Builder
	b.WriteString(metricLabelStyle.Render("Date"))
	b.WriteString(metricLabelStyle.Render("Status"))
	b.WriteString(metricLabelStyle.Render("Score"))
	b.WriteString(metricLabelStyle.Render("Flags"))
	b.WriteString("\n")

	// Newest first reads better in a scrolling table.
	for i := len(m.points) - 1; i >= 0; i-- {
		p := m.points[i]
		b.WriteString(metricLabelStyle.Render(p.Day.Format("Mon Jan 02")))
		b.WriteString(lipgloss.NewStyle().Width(18).Render(RenderStatus(p.Verdict.Status)))

		score := "-"
		if p.Score != nil {
			score = fmt.Sprintf("%.1f", p.Score.Score)
		}
		b.WriteString(metricValueStyle.Width(18).Render(score))

		if p.Degraded {
			b.WriteString(errorStyle.Render("data gap"))
		} else if n := len(p.Verdict.Flags); n > 0 {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("%d flag(s)", n)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
