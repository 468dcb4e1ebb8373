package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	analyticsdto "wellness/internal/modules/analytics/dto"
	logbookdto "wellness/internal/modules/logbook/dto"
	"wellness/internal/ui/components"
	"wellness/internal/ui/theme"
	entriesview "wellness/internal/ui/views/entries"
	overviewview "wellness/internal/ui/views/overview"
	trendsview "wellness/internal/ui/views/trends"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type dashboardPort interface {
	SelectUser(ctx context.Context, userID string) (analyticsdto.ViewOutput, error)
	Refresh(ctx context.Context) (analyticsdto.ViewOutput, error)
	SetWindow(ctx context.Context, days int) (analyticsdto.ViewOutput, error)
}

type entriesPort interface {
	Recent(ctx context.Context, userID, category string, limit int) ([]logbookdto.DocumentOutput, error)
}

// noticeSource exposes the latest user-visible notice, if any.
type noticeSource interface {
	Last() string
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabOverview tabID = iota
	tabTrends
	tabEntries
	tabCount
)

var tabLabels = [tabCount]string{"Overview", "Trends", "Entries"}

// ─── async messages ───────────────────────────────────────────────────────────

type dashboardLoadedMsg struct {
	out analyticsdto.ViewOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Window7  key.Binding
	Window30 key.Binding
	Window90 key.Binding
	Refresh  key.Binding
	Category key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Window7:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "7 days")),
		Window30: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "30 days")),
		Window90: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "90 days")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next category")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Window7, k.Window30, k.Window90},
		{k.Tab, k.Refresh, k.Category},
		{k.Help, k.Palette, k.Quit},
	}
}

var windowKeys = map[string]int{"1": 7, "2": 30, "3": 90}

var categories = []string{"mood", "sleep", "exercise"}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the window control,
// the help overlay and the command palette; rendering is delegated to sub-views.
type Model struct {
	userID    string
	dashboard dashboardPort
	notices   noticeSource

	overView    overviewview.Model
	trendView   trendsview.Model
	entriesView entriesview.Model

	current   analyticsdto.ViewOutput
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(userID string, dashboard dashboardPort, entries entriesPort, notices noticeSource) Model {
	return Model{
		userID:      userID,
		dashboard:   dashboard,
		notices:     notices,
		overView:    overviewview.New(),
		trendView:   trendsview.New(),
		entriesView: entriesview.New(entries),
		activeTab:   tabOverview,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "loading " + userID,
	}
}

func (m Model) Init() tea.Cmd {
	return m.selectUserCmd(m.userID)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts key input while open.
	if _, isKey := msg.(tea.KeyMsg); isKey && m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case dashboardLoadedMsg:
		m.applyDashboard(msg.out, msg.err)
		return m, nil

	case entriesview.LoadedMsg:
		var cmd tea.Cmd
		m.entriesView, cmd = m.entriesView.Update(msg)
		return m, tea.Batch(append(cmds, cmd)...)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Command)

	case components.PaletteCancelMsg:
		m.status = m.readyStatus()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.activeTab == tabEntries && m.entriesView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			if m.activeTab == tabEntries {
				cmds = append(cmds, m.entriesView.Load(m.userID, m.entriesView.Category()))
			}
			return m, tea.Batch(cmds...)
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		case "r":
			m.status = "refreshing…"
			return m, m.refreshCmd()
		case "1", "2", "3":
			return m, m.setWindowCmd(windowKeys[msg.String()])
		case "c":
			if m.activeTab == tabEntries {
				return m, m.entriesView.Load(m.userID, nextCategory(m.entriesView.Category()))
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabOverview:
		m.overView, tabCmd = m.overView.Update(msg)
	case tabTrends:
		m.trendView, tabCmd = m.trendView.Update(msg)
	case tabEntries:
		m.entriesView, tabCmd = m.entriesView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabOverview:
		return m.overView.View()
	case tabTrends:
		return m.trendView.View()
	case tabEntries:
		return m.entriesView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	windows := make([]string, 0, len(m.current.SupportedWindows))
	for _, days := range m.current.SupportedWindows {
		label := fmt.Sprintf("%dd", days)
		if days == m.current.WindowDays {
			windows = append(windows, theme.Hot.Render("["+label+"]"))
		} else {
			windows = append(windows, theme.Muted.Render(" "+label+" "))
		}
	}
	bar := "wellness  " + strings.Join(parts, sep) + "   " + strings.Join(windows, "")
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := theme.Hot.Render("● "+m.userID) + "  " + m.status
	if m.current.State == "error-degraded" {
		left = theme.Warn.Render("● "+m.userID) + "  " + m.status
	}
	right := theme.Muted.Render("?:help  1/2/3:window  r:refresh  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(command components.PaletteCommand) (tea.Model, tea.Cmd) {
	switch command.Name {
	case "window":
		return m, m.setWindowCmd(command.Days)

	case "refresh":
		m.status = "refreshing…"
		return m, m.refreshCmd()

	case "user":
		m.userID = command.Arg
		m.status = "loading " + m.userID
		return m, m.selectUserCmd(m.userID)

	case "entries":
		category := command.Arg
		if category == "" {
			category = m.entriesView.Category()
		}
		m.activeTab = tabEntries
		return m, m.entriesView.Load(m.userID, category)

	case "overview":
		m.activeTab = tabOverview
	case "trends":
		m.activeTab = tabTrends
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) applyDashboard(out analyticsdto.ViewOutput, err error) {
	if out.UserID != "" && out.UserID != m.userID {
		return
	}
	m.current = out
	m.overView.SetView(out)
	m.trendView.SetView(out)
	if err != nil {
		m.status = err.Error()
		if notice := m.lastNotice(); notice != "" {
			m.status = notice
		}
		return
	}
	m.status = m.readyStatus()
}

func (m Model) readyStatus() string {
	if m.current.State == "" {
		return "ready"
	}
	return fmt.Sprintf("%s · last %d days", m.current.State, m.current.WindowDays)
}

func (m Model) lastNotice() string {
	if m.notices == nil {
		return ""
	}
	return m.notices.Last()
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.overView, _ = m.overView.Update(sz)
	m.trendView, _ = m.trendView.Update(sz)
	m.entriesView, _ = m.entriesView.Update(sz)
}

func nextCategory(current string) string {
	for i, c := range categories {
		if c == current {
			return categories[(i+1)%len(categories)]
		}
	}
	return categories[0]
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) selectUserCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.dashboard.SelectUser(context.Background(), userID)
		return dashboardLoadedMsg{out: out, err: err}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.dashboard.Refresh(context.Background())
		return dashboardLoadedMsg{out: out, err: err}
	}
}

func (m Model) setWindowCmd(days int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.dashboard.SetWindow(context.Background(), days)
		return dashboardLoadedMsg{out: out, err: err}
	}
}
