package overview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	analyticsdto "wellness/internal/modules/analytics/dto"
	"wellness/internal/ui/theme"
)

var weekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var (
	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Surface1).
			Padding(0, 1).
			Width(22)
	cardValue = lipgloss.NewStyle().Foreground(theme.Lavender).Bold(true)
)

// Model renders the KPI cards, the month heatmap and the weekly insight.
type Model struct {
	view     analyticsdto.ViewOutput
	loaded   bool
	viewport viewport.Model
	width    int
	height   int
}

func New() Model {
	return Model{viewport: viewport.New(0, 0)}
}

func (m *Model) SetView(view analyticsdto.ViewOutput) {
	m.view = view
	m.loaded = true
	m.viewport.SetContent(m.render())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.viewport.Width = size.Width
		m.viewport.Height = size.Height
		m.viewport.SetContent(m.render())
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return theme.Muted.Render("loading dashboard…")
	}
	return m.viewport.View()
}

func (m Model) render() string {
	if !m.loaded {
		return ""
	}
	sections := []string{
		RenderKPIs(m.view.KPIs),
		"",
		RenderHeatmap(m.view.Heatmap),
		"",
		theme.Title.Render("This week"),
		lipgloss.NewStyle().Width(max(m.width-4, 40)).Render(m.view.Insight.Message),
	}
	return strings.Join(sections, "\n")
}

// RenderKPIs lays the four headline numbers out as cards.
func RenderKPIs(k analyticsdto.KPIOutput) string {
	card := func(label, value string) string {
		return cardStyle.Render(theme.Muted.Render(label) + "\n" + cardValue.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Avg mood", k.AvgMood),
		card("Avg sleep", fmt.Sprintf("%.1f h", k.AvgSleepHours)),
		card("Exercise", fmt.Sprintf("%.1f h", k.TotalExerciseHours)),
		card("Top activity", k.TopActivity),
	)
}

// RenderHeatmap draws the month as a seven-column grid starting on Sunday.
func RenderHeatmap(h analyticsdto.HeatmapOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(h.Title) + "\n")
	header := make([]string, len(weekdayHeader))
	for i, d := range weekdayHeader {
		header[i] = theme.Muted.Width(4).Align(lipgloss.Center).Render(d)
	}
	sb.WriteString(strings.Join(header, " ") + "\n")

	row := make([]string, 0, 7)
	flush := func() {
		sb.WriteString(strings.Join(row, " ") + "\n")
		row = row[:0]
	}
	for _, c := range h.Cells {
		if c.Empty {
			row = append(row, strings.Repeat(" ", 4))
		} else {
			row = append(row, theme.Bucket(c.Bucket).Render(fmt.Sprintf("%d", c.Day)))
		}
		if len(row) == 7 {
			flush()
		}
	}
	if len(row) > 0 {
		flush()
	}
	return strings.TrimRight(sb.String(), "\n")
}
