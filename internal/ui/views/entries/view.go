package entries

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	logbookdto "wellness/internal/modules/logbook/dto"
	"wellness/internal/ui/theme"
)

const listLimit = 30

type EntriesPort interface {
	Recent(ctx context.Context, userID, category string, limit int) ([]logbookdto.DocumentOutput, error)
}

type LoadedMsg struct {
	Category string
	Entries  []logbookdto.DocumentOutput
	Err      error
}

type entryItem struct {
	doc logbookdto.DocumentOutput
}

func (i entryItem) Title() string {
	if v, ok := i.doc.Fields["date"]; ok {
		return fmt.Sprint(v)
	}
	if v, ok := i.doc.Fields["timestamp"]; ok {
		return fmt.Sprint(v)
	}
	return i.doc.CreatedAt.Format("2006-01-02 15:04")
}

func (i entryItem) Description() string { return Summary(i.doc) }
func (i entryItem) FilterValue() string { return i.Title() + " " + i.Description() }

// Summary is a one-line description of a stored document.
func Summary(doc logbookdto.DocumentOutput) string {
	f := doc.Fields
	switch doc.Category {
	case "mood":
		return strings.TrimSpace(fmt.Sprintf("%v/10 %v", value(f, "mood_score"), value(f, "mood_label")))
	case "sleep":
		return fmt.Sprintf("%v min, %v", value(f, "duration_minutes"), value(f, "quality"))
	case "exercise":
		return fmt.Sprintf("%v, %v min", value(f, "activity_type"), value(f, "duration_minutes"))
	default:
		return ""
	}
}

func value(fields map[string]any, key string) any {
	if v, ok := fields[key]; ok && v != nil {
		return v
	}
	return "?"
}

// Model lists the most recent documents of one category with a field preview.
type Model struct {
	port     EntriesPort
	category string
	list     list.Model
	preview  viewport.Model
	spinner  spinner.Model
	loading  bool
	err      error
	width    int
	height   int
}

func New(port EntriesPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, category: "mood", list: l, preview: vp, spinner: sp}
}

func (m Model) Category() string { return m.category }

// Load fetches the recent documents of category for userID.
func (m *Model) Load(userID, category string) tea.Cmd {
	m.category = category
	m.loading = true
	m.list.Title = "Entries: " + category
	port := m.port
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		if port == nil {
			return LoadedMsg{Category: category, Err: fmt.Errorf("entries are not available")}
		}
		docs, err := port.Recent(context.Background(), userID, category, listLimit)
		return LoadedMsg{Category: category, Entries: docs, Err: err}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		if msg.Category != m.category {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			m.list.Title = "Entries: " + msg.Category + " (" + msg.Err.Error() + ")"
			return m, m.list.SetItems(nil)
		}
		items := make([]list.Item, len(msg.Entries))
		for i, doc := range msg.Entries {
			items[i] = entryItem{doc: doc}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.preview.SetContent(m.renderSelected())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.preview.SetContent(m.renderSelected())
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading "+m.category+" entries…")
	}
	listW := m.width / 2
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(max(m.width-listW-2, 10)).
		Height(max(m.height-2, 1)).
		Render(m.preview.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width / 2
	m.list.SetSize(listW, m.height)
	m.preview.Width = max(m.width-listW-4, 10)
	m.preview.Height = max(m.height-4, 1)
}

func (m Model) renderSelected() string {
	item, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return theme.Muted.Render("No entries yet")
	}
	keys := make([]string, 0, len(item.doc.Fields))
	for k := range item.doc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(item.Title()) + "\n\n")
	for _, k := range keys {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-17s", k+":")) + fmt.Sprint(item.doc.Fields[k]) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("id: "+item.doc.ID))
	return sb.String()
}
