package trends

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	analyticsdto "wellness/internal/modules/analytics/dto"
	"wellness/internal/ui/theme"
)

const labelWidth = 12

// Model renders the three chart series as horizontal bars.
type Model struct {
	series   analyticsdto.SeriesOutput
	window   int
	viewport viewport.Model
	width    int
}

func New() Model {
	return Model{viewport: viewport.New(0, 0)}
}

func (m *Model) SetView(view analyticsdto.ViewOutput) {
	m.series = view.Series
	m.window = view.WindowDays
	m.viewport.SetContent(m.render())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
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
	return m.viewport.View()
}

func (m Model) render() string {
	barWidth := max(m.width-labelWidth-12, 10)
	return strings.Join([]string{
		theme.Title.Render(fmt.Sprintf("Mood trend (last %d days)", m.window)),
		RenderBars(m.series.MoodTrend, 10, barWidth, "%.0f", theme.Lavender),
		"",
		theme.Title.Render("Sleep (hours)"),
		RenderBars(m.series.SleepTrend, 0, barWidth, "%.1f", theme.Sapphire),
		"",
		theme.Title.Render("Activity (minutes)"),
		RenderBars(m.series.ActivitySummary, 0, barWidth, "%.0f", theme.Green),
	}, "\n")
}

// RenderBars draws one bar per point. A zero scale uses the largest value.
func RenderBars(s analyticsdto.SeriesData, scale float64, width int, format string, color lipgloss.Color) string {
	if len(s.Labels) == 0 {
		return theme.Muted.Render("no entries in this window")
	}
	if scale <= 0 {
		for _, v := range s.Values {
			scale = math.Max(scale, v)
		}
	}
	bar := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, 0, len(s.Labels))
	for i, label := range s.Labels {
		n := 0
		if scale > 0 {
			n = int(math.Round(s.Values[i] / scale * float64(width)))
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %s", labelWidth, label, bar.Render(strings.Repeat("█", n)), fmt.Sprintf(format, s.Values[i])))
	}
	return strings.Join(lines, "\n")
}
