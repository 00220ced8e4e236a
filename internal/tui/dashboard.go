package tui

import (
	"fmt"
	"time"

	"vitals/internal/engine"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	engine  *engine.Engine
	data    *dashboardData
	loading bool
	err     error
}

type dashboardData struct {
	verdict    *engine.Verdict
	score      *engine.RecoveryScore
	trends     *engine.TrendReport
	series     *engine.DailySeries
	fresh      *engine.Freshness
	sleepHours float64
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(eng *engine.Engine) DashboardModel {
	return DashboardModel{
		engine:  eng,
		loading: true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

type dashboardDataMsg struct {
	data *dashboardData
	err  error
}

func (m DashboardModel) loadData() tea.Msg {
	today := time.Now()
	data := &dashboardData{}

	verdict, err := m.engine.Evaluate(today)
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	data.verdict = verdict

	// Verdict first, then score: the score's veto needs the status.
	score, err := m.engine.Score(today, verdict.Status)
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	data.score = score

	trends, err := m.engine.Trends(today, 7)
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	data.trends = trends

	// Sparklines, freshness and sleep are decorations; their absence
	// shouldn't blank the whole screen.
	if series, err := m.engine.DailySeries(today, 14); err == nil {
		data.series = series
	}
	if fresh, err := m.engine.Freshness(today); err == nil {
		data.fresh = fresh
	}
	if hours, err := m.engine.SleepHours(today); err == nil {
		data.sleepHours = hours
	}

	return dashboardDataMsg{data: data}
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading today's verdict..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if m.data == nil {
		return "\n  No data available. Press 's' to sync."
	}

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderVerdictCard(), "  ", m.renderScoreCard())

	sections := []string{
		topRow,
		m.renderTrendsCard(),
	}
	if chart := m.renderSeriesCard(); chart != "" {
		sections = append(sections, chart)
	}
	sections = append(sections,
		mutedStyle.Render(m.renderFreshnessLine()),
		statusBarStyle.Render("Press 'r' to refresh"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderVerdictCard() string {
	v := m.data.verdict
	title := cardTitleStyle.Render("Today's Verdict")

	lines := []string{
		RenderMetric("Status", RenderStatus(v.Status), ""),
		RenderMetric("Step ceiling", fmt.Sprintf("%d", v.TargetSteps), ""),
	}
	if m.data.sleepHours > 0 {
		lines = append(lines, RenderMetric("Sleep", fmt.Sprintf("%.1f h", m.data.sleepHours), ""))
	}
	lines = append(lines, "", mutedStyle.Render(v.Reason()))

	for _, f := range v.Flags {
		marker := "!"
		style := statusStyles[engine.StatusYellow]
		if f.Severity == engine.SeverityRed {
			marker = "✗"
			style = statusStyles[engine.StatusRed]
		}
		lines = append(lines, style.Render(marker+" ")+f.Message())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderScoreCard() string {
	s := m.data.score
	title := cardTitleStyle.Render("Recovery Score")

	lines := []string{
		RenderMetric("Composite", fmt.Sprintf("%.1f / 100", s.Score), ""),
		RenderMetric("RHR", fmt.Sprintf("%.0f (z %+.2f)", s.RHR.Score, s.RHR.ZScore), ""),
		RenderMetric("HRV", fmt.Sprintf("%.0f (ratio %.2f)", s.HRV.Score, s.HRV.Ratio), ""),
		RenderMetric("Stress", fmt.Sprintf("%.0f (adj %.1f)", s.Stress.Score, s.Stress.Adjusted), ""),
	}
	if s.Vetoed() {
		lines = append(lines, "", statusStyles[engine.StatusRed].Render(s.VetoMessage))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderTrendsCard() string {
	t := m.data.trends
	title := cardTitleStyle.Render("7-Day Trends")

	lines := []string{
		RenderMetric("RHR", fmt.Sprintf("%.1f bpm", t.RHR.Value), deltas(t.RHR)),
		RenderMetric("Body battery", fmt.Sprintf("%.0f%%", t.Battery.Value), deltas(t.Battery)),
		RenderMetric("Stress", fmt.Sprintf("%.1f", t.Stress.Value), deltas(t.Stress)),
		RenderMetric("HRV", fmt.Sprintf("%.1f ms", t.HRV.Value), deltas(t.HRV)),
	}

	if len(t.Cost) > 0 {
		costLine := metricLabelStyle.Render("Cost")
		for _, p := range t.Cost {
			costLine += statusStyles[p.Band].Render(fmt.Sprintf(" %.0f", p.Cost))
		}
		lines = append(lines, costLine+mutedStyle.Render(" kcal/1k steps"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(90).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

// renderSeriesCard draws 14-day steps and RHR sparklines when enough points
// exist to make a line.
func (m DashboardModel) renderSeriesCard() string {
	s := m.data.series
	if s == nil || (len(s.Steps) < 3 && len(s.RHR) < 3) {
		return ""
	}

	title := cardTitleStyle.Render("Last 14 Days")
	var charts []string
	if len(s.Steps) >= 3 {
		charts = append(charts, mutedStyle.Render(asciigraph.Plot(s.Steps,
			asciigraph.Height(4),
			asciigraph.Width(60),
			asciigraph.Caption("steps"),
		)))
	}
	if len(s.RHR) >= 3 {
		charts = append(charts, mutedStyle.Render(asciigraph.Plot(s.RHR,
			asciigraph.Height(4),
			asciigraph.Width(60),
			asciigraph.Precision(1),
			asciigraph.Caption("resting hr"),
		)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, charts...)
	return cardStyle.Width(90).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func deltas(t engine.SignalTrend) string {
	return fmt.Sprintf("3d %+.1f · 7d %+.1f", t.Delta3d, t.Delta7d)
}

func (m DashboardModel) renderFreshnessLine() string {
	f := m.data.fresh
	if f == nil {
		return ""
	}
	if f.Fresh {
		return "Data is current."
	}
	line := "Sync recommended:"
	if f.Summary != nil {
		line += " summary " + f.Summary.Format("2006-01-02")
	} else {
		line += " summary never"
	}
	if f.HRV != nil {
		line += ", hrv " + f.HRV.Format("2006-01-02")
	} else {
		line += ", hrv never"
	}
	if !f.SleepToday {
		line += ", no sleep for today"
	}
	return line
}
