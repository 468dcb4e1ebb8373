package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Teal     = lipgloss.Color("#94e2d5")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Warn  = lipgloss.NewStyle().Foreground(Red).Bold(true)
)

// bucketColors maps heatmap bucket names to cell backgrounds.
var bucketColors = map[string]lipgloss.Color{
	"strongly-positive": Green,
	"positive":          Teal,
	"neutral-positive":  Yellow,
	"neutral-negative":  Peach,
	"negative":          Red,
	"unknown":           Surface0,
}

// Bucket returns the cell style of a heatmap bucket; unknown names render as empty days.
func Bucket(name string) lipgloss.Style {
	color, ok := bucketColors[name]
	if !ok {
		color = Surface0
	}
	fg := Base
	if color == Surface0 {
		fg = Subtext0
	}
	return lipgloss.NewStyle().Background(color).Foreground(fg).Width(4).Align(lipgloss.Center)
}
