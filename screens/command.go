package screens

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tabset/core"
)

var (
	paletteTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	paletteDescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Keys     []string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}

func (i CommandOption) Description() string {
	if len(i.Keys) == 0 {
		return i.Desc
	}
	keys := strings.Join(i.Keys, "/")
	if i.Desc == "" {
		return keys
	}
	return i.Desc + " · " + keys
}

func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// commandDelegate dims disabled commands unless they are selected.
type commandDelegate struct {
	list.DefaultDelegate
}

func newCommandDelegate() commandDelegate {
	d := list.NewDefaultDelegate()
	accent := lipgloss.Color("#a6e3a1")
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(accent).BorderForeground(accent)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.Foreground(lipgloss.Color("#a6adc8")).BorderForeground(accent)
	return commandDelegate{DefaultDelegate: d}
}

func (d commandDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if it, ok := item.(CommandOption); ok && it.Disabled && index != m.Index() {
		dimmed := d.DefaultDelegate
		dimmed.Styles.NormalTitle = dimmed.Styles.DimmedTitle
		dimmed.Styles.NormalDesc = dimmed.Styles.DimmedDesc
		dimmed.Render(w, m, index, item)
		return
	}
	d.DefaultDelegate.Render(w, m, index, item)
}

type CommandScreen struct {
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
}

// NewCommandPalette builds the palette over the model's command registry for
// the given scope.
func NewCommandPalette(m *core.Model, scope string) *CommandScreen {
	reg := m.CommandRegistry()
	return NewCommandScreen(scope, func(query string) []CommandOption {
		results := reg.Search(query, scope, m)
		out := make([]CommandOption, 0, len(results))
		for _, r := range results {
			out = append(out, CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Keys: r.Keys, Disabled: r.Disabled, Reason: r.Reason})
		}
		return out
	}, func(id string) tea.Msg {
		return core.CommandExecuteMsg{CommandID: id}
	})
}

func NewCommandScreen(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, newCommandDelegate(), 64, 14)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetStatusBarItemName("command", "commands")
	lst.DisableQuitKeybindings()
	s := &CommandScreen{scope: scope, search: search, onSelect: onSelect, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Command Palette" }
func (s *CommandScreen) Scope() string { return "screen:command" }

func (s *CommandScreen) Options() []CommandOption {
	items := s.list.Items()
	out := make([]CommandOption, 0, len(items))
	for _, it := range items {
		if opt, ok := it.(CommandOption); ok {
			out = append(out, opt)
		}
	}
	return out
}

// Selected is the highlighted command, if any.
func (s *CommandScreen) Selected() (CommandOption, bool) {
	it, ok := s.list.SelectedItem().(CommandOption)
	return it, ok
}

// Update types into the search field and moves the list cursor. Keys go to
// one or the other, never both, so typing "j" or "q" only edits the query.
func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return s, nil, true
		case "up", "ctrl+p":
			s.list.CursorUp()
			return s, nil, false
		case "down", "ctrl+n":
			s.list.CursorDown()
			return s, nil, false
		case "pgup":
			s.list.PrevPage()
			return s, nil, false
		case "pgdown":
			s.list.NextPage()
			return s, nil, false
		case "enter":
			it, ok := s.Selected()
			if !ok {
				return s, nil, true
			}
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			if s.onSelect != nil {
				return s, func() tea.Msg { return s.onSelect(it.ID) }, true
			}
			return s, nil, true
		}
	}
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.refresh()
	}
	return s, cmd, false
}

func (s *CommandScreen) refresh() {
	items := s.search(strings.TrimSpace(s.input.Value()))
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	s.list.ResetSelected()
	_ = s.list.SetItems(ls)
}

// View keeps the title and search field on top and gives the list the rest.
// The list pages so the selected command is always drawn.
func (s *CommandScreen) View(width, height int) string {
	s.input.Width = max(10, width-len(s.input.Prompt)-1)
	s.list.SetSize(width, max(3, height-2))
	header := paletteTitleStyle.Render("Command Palette") + " " + paletteDescStyle.Render(s.scope)
	return lipgloss.JoinVertical(lipgloss.Left, core.TrimToWidth(header, width), s.input.View(), s.list.View())
}
