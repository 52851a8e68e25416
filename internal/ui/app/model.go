package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gamedto "mindrng/internal/modules/game/dto"
	"mindrng/internal/ui/theme"
)

const (
	historyRows = 8
	maxBarWidth = 30
)

// gamePort is the minimal read surface the dashboard needs.
type gamePort interface {
	Stats(ctx context.Context, topN int, special *int) (gamedto.StatsOutput, error)
	Distribution(ctx context.Context, bins int) (gamedto.DistributionOutput, error)
	History(ctx context.Context, last int) (gamedto.HistoryOutput, error)
}

type dashboardLoadedMsg struct {
	stats        gamedto.StatsOutput
	distribution gamedto.DistributionOutput
	history      gamedto.HistoryOutput
	err          error
}

type keyMap struct {
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh}, {k.Help, k.Quit}}
}

// Model is the statistics dashboard: a metrics row, the binned distribution,
// recent trials, and a hot/cold insight line. It only reads; trials are
// recorded through the CLI.
type Model struct {
	game gamePort

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	stats        gamedto.StatsOutput
	distribution gamedto.DistributionOutput
	history      gamedto.HistoryOutput

	loading bool
	err     error
	width   int
}

func NewModel(game gamePort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{
		game:    game,
		keys:    defaultKeys(),
		help:    help.New(),
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadDashboard())
}

func (m Model) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := m.game.Stats(ctx, 0, nil)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		distribution, err := m.game.Distribution(ctx, 0)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		history, err := m.game.History(ctx, historyRows)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{stats: stats, distribution: distribution, history: history}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.stats = msg.stats
			m.distribution = msg.distribution
			m.history = msg.history
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadDashboard())
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return theme.App.Render(m.spinner.View() + " loading history...")
	}
	if m.err != nil {
		return theme.App.Render(theme.Miss.Render(fmt.Sprintf("error: %v", m.err)))
	}

	sections := []string{
		theme.Title.Render("Mind vs Machine RNG"),
		m.metricsView(),
		m.distributionView(),
		m.historyView(),
		m.insightsView(),
		m.help.View(m.keys),
	}
	if m.stats.Warning != "" {
		sections = append([]string{theme.Miss.Render("warning: " + m.stats.Warning)}, sections...)
	}
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) metricsView() string {
	avg := "n/a"
	if m.stats.AverageDistance != nil {
		avg = fmt.Sprintf("%.2f", *m.stats.AverageDistance)
	}
	cells := []string{
		metricCell("Attempts", fmt.Sprintf("%d", m.stats.TotalAttempts)),
		metricCell("Predictions", fmt.Sprintf("%d", m.stats.TotalPredictions)),
		metricCell("Hits", fmt.Sprintf("%d", m.stats.TotalHits)),
		metricCell("Hit Rate", fmt.Sprintf("%.1f%%", m.stats.HitRate)),
		metricCell("Avg Distance", avg),
		metricCell("Streak", fmt.Sprintf("%d (best %d)", m.stats.CurrentStreak, m.stats.LongestStreak)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func metricCell(label, value string) string {
	return theme.Pane.Render(theme.Muted.Render(label) + "\n" + theme.Title.Render(value))
}

func (m Model) distributionView() string {
	if len(m.distribution.Labels) == 0 {
		return theme.Pane.Render(theme.Muted.Render("no trials yet"))
	}
	maxCount := 0
	for _, c := range m.distribution.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	lines := make([]string, 0, len(m.distribution.Labels))
	for i, label := range m.distribution.Labels {
		count := m.distribution.Counts[i]
		width := 0
		if maxCount > 0 {
			width = count * maxBarWidth / maxCount
		}
		lines = append(lines, fmt.Sprintf("%10s %s %d", label, theme.Bar.Render(strings.Repeat("█", width)), count))
	}
	return theme.Pane.Render(theme.Title.Render("Distribution") + "\n" + strings.Join(lines, "\n"))
}

func (m Model) historyView() string {
	if len(m.history.Records) == 0 {
		return theme.Pane.Render(theme.Muted.Render("no trials yet"))
	}
	lines := make([]string, 0, len(m.history.Records))
	for _, r := range m.history.Records {
		prediction := "-"
		if r.Prediction != nil {
			prediction = fmt.Sprintf("%d", *r.Prediction)
		}
		result := theme.Muted.Render("n/a")
		if r.Prediction != nil {
			if r.Hit {
				result = theme.Hit.Render("hit")
			} else {
				result = theme.Miss.Render(fmt.Sprintf("miss (d=%d)", *r.Distance))
			}
		}
		generated := fmt.Sprintf("%d", r.Generated)
		if r.Generated == m.stats.SpecialNumber {
			generated = theme.Special.Render(generated)
		}
		lines = append(lines, fmt.Sprintf("%s  predicted %-4s got %-4s %s", theme.Muted.Render(r.Timestamp), prediction, generated, result))
	}
	return theme.Pane.Render(theme.Title.Render("Recent Trials") + "\n" + strings.Join(lines, "\n"))
}

func (m Model) insightsView() string {
	hot := make([]string, 0, len(m.stats.HotNumbers))
	for _, nc := range m.stats.HotNumbers {
		hot = append(hot, fmt.Sprintf("%d(x%d)", nc.Value, nc.Count))
	}
	cold := make([]string, 0, len(m.stats.ColdNumbers))
	for _, v := range m.stats.ColdNumbers {
		cold = append(cold, fmt.Sprintf("%d", v))
	}
	parts := []string{}
	if len(hot) > 0 {
		parts = append(parts, theme.Hot.Render("hot ")+strings.Join(hot, " "))
	}
	if len(cold) > 0 {
		parts = append(parts, theme.Muted.Render("cold ")+strings.Join(cold, " "))
	}
	parts = append(parts, theme.Special.Render(fmt.Sprintf("%d seen %d times", m.stats.SpecialNumber, m.stats.SpecialCount)))
	return theme.Pane.Render(strings.Join(parts, "   "))
}
