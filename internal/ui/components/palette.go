package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wellness/internal/ui/theme"
)

// PaletteCommand is a parsed and validated palette entry.
type PaletteCommand struct {
	Name string
	// Arg carries the user id or the entries category.
	Arg string
	// Days is set for the window command.
	Days int
}

// PaletteSubmitMsg is emitted when the user confirms a valid command.
type PaletteSubmitMsg struct{ Command PaletteCommand }

// PaletteCancelMsg is emitted on esc or an empty submit.
type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

type paletteCommandDef struct {
	name  string
	usage string
	parse func(arg string) (PaletteCommand, error)
}

var entryCategories = []string{"mood", "sleep", "exercise"}

var paletteCommands = []paletteCommandDef{
	{name: "window", usage: "window <days>", parse: func(arg string) (PaletteCommand, error) {
		days, err := strconv.Atoi(arg)
		if err != nil || days <= 0 {
			return PaletteCommand{}, fmt.Errorf("window needs a positive number of days")
		}
		return PaletteCommand{Name: "window", Days: days}, nil
	}},
	{name: "refresh", usage: "refresh", parse: bare("refresh")},
	{name: "user", usage: "user <id>", parse: func(arg string) (PaletteCommand, error) {
		if arg == "" || strings.ContainsAny(arg, " \t") {
			return PaletteCommand{}, fmt.Errorf("user needs a single id")
		}
		return PaletteCommand{Name: "user", Arg: arg}, nil
	}},
	{name: "entries", usage: "entries [mood|sleep|exercise]", parse: func(arg string) (PaletteCommand, error) {
		arg = strings.ToLower(arg)
		if arg == "" {
			return PaletteCommand{Name: "entries"}, nil
		}
		for _, c := range entryCategories {
			if c == arg {
				return PaletteCommand{Name: "entries", Arg: arg}, nil
			}
		}
		return PaletteCommand{}, fmt.Errorf("entries category must be one of %s", strings.Join(entryCategories, ", "))
	}},
	{name: "overview", usage: "overview", parse: bare("overview")},
	{name: "trends", usage: "trends", parse: bare("trends")},
}

func bare(name string) func(string) (PaletteCommand, error) {
	return func(arg string) (PaletteCommand, error) {
		if arg != "" {
			return PaletteCommand{}, fmt.Errorf("%s takes no argument", name)
		}
		return PaletteCommand{Name: name}, nil
	}
}

// ParseCommand validates a palette line such as "window 7".
func ParseCommand(input string) (PaletteCommand, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(input), " ")
	name = strings.ToLower(name)
	arg = strings.TrimSpace(arg)
	for _, def := range paletteCommands {
		if def.name == name {
			return def.parse(arg)
		}
	}
	return PaletteCommand{}, fmt.Errorf("unknown command: %s", name)
}

// Palette is a command-palette overlay backed by bubbles/textinput. Invalid
// input keeps the palette open with the error shown under the prompt.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
	err     string
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "window 7, user <id>, entries sleep…"
	ti.CharLimit = 128
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette with an empty prompt and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.err = ""
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return p.close(), func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			line := strings.TrimSpace(p.input.Value())
			if line == "" {
				return p.close(), func() tea.Msg { return PaletteCancelMsg{} }
			}
			command, err := ParseCommand(line)
			if err != nil {
				p.err = err.Error()
				return p, nil
			}
			return p.close(), func() tea.Msg { return PaletteSubmitMsg{Command: command} }
		case "tab":
			if matches := p.matching(); len(matches) == 1 && !strings.Contains(p.input.Value(), " ") {
				p.input.SetValue(matches[0].name + " ")
				p.input.CursorEnd()
			}
			return p, nil
		}
		p.err = ""
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) close() Palette {
	p.visible = false
	p.err = ""
	p.input.Blur()
	return p
}

// matching lists the commands whose name starts with the typed word.
func (p Palette) matching() []paletteCommandDef {
	word, _, _ := strings.Cut(strings.ToLower(strings.TrimLeft(p.input.Value(), " ")), " ")
	var out []paletteCommandDef
	for _, def := range paletteCommands {
		if strings.HasPrefix(def.name, word) || strings.HasPrefix(word, def.name) {
			out = append(out, def)
		}
	}
	return out
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command Palette") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if p.err != "" {
		sb.WriteString(theme.Warn.Render("  "+p.err) + "\n")
	}
	if matches := p.matching(); len(matches) > 0 {
		sb.WriteString("\n")
		for _, def := range matches {
			sb.WriteString(hintStyle.Render("  "+def.usage) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
