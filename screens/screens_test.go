package screens

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabset/core"
	"github.com/jask/tabset/tabs"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestTabPickerSelectsFilteredTab(t *testing.T) {
	s := NewTabPicker([]core.PickerItem{
		{ID: "general", Label: "General"},
		{ID: "advanced", Label: "Advanced"},
	})
	for _, r := range "adv" {
		if _, _, pop := s.Update(runes(string(r))); pop {
			t.Fatalf("typing should not close the picker")
		}
	}
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("enter should pop with a command")
	}
	msg, ok := cmd().(core.ShowTabMsg)
	if !ok || msg.Name != "advanced" {
		t.Fatalf("msg = %#v", msg)
	}
}

func TestTabPickerIgnoresDisabledTab(t *testing.T) {
	s := NewTabPicker([]core.PickerItem{{ID: "off", Label: "Off", Disabled: true}})
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if pop || cmd != nil {
		t.Fatalf("disabled tab must not be selectable")
	}
	if _, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc}); !pop {
		t.Fatalf("esc should close")
	}
}

func TestTabPickerViewListsTabs(t *testing.T) {
	s := NewTabPicker([]core.PickerItem{{ID: "general", Label: "General", Meta: "general · active"}})
	view := s.View(40, 10)
	if !strings.Contains(view, "Go to tab") || !strings.Contains(view, "General") {
		t.Fatalf("view = %q", view)
	}
}

func TestCommandPaletteFiltersAndMoves(t *testing.T) {
	s := NewCommandScreen(core.ScopePanel, func(q string) []CommandOption {
		all := []CommandOption{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta", Disabled: true, Reason: "off"}}
		var out []CommandOption
		for _, o := range all {
			if strings.Contains(strings.ToLower(o.Name), q) {
				out = append(out, o)
			}
		}
		return out
	}, func(id string) tea.Msg { return id })
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("enter on a disabled command should pop with its reason")
	}
	if msg := cmd().(core.StatusMsg); msg.Text != "off" {
		t.Fatalf("status = %q", msg.Text)
	}

	s = NewCommandScreen(core.ScopePanel, func(q string) []CommandOption {
		if q == "" {
			return []CommandOption{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}}
		}
		return []CommandOption{{ID: "b", Name: "Beta"}}
	}, func(id string) tea.Msg { return id })
	s.Update(runes("b"))
	if got := s.Options(); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("options = %+v", got)
	}
	if view := s.View(50, 10); !strings.Contains(view, "Beta") {
		t.Fatalf("view = %q", view)
	}
}

func TestCommandPaletteExecutesThroughModel(t *testing.T) {
	g := tabs.New()
	reg := core.NewCommandRegistry([]core.Command{
		{ID: "toggle-activation", Name: "Toggle activation", Scopes: []string{core.ScopePanel}},
		{ID: "strip-only", Name: "Strip only", Scopes: []string{core.ScopeStrip}},
	})
	m := core.NewModel("t", g, core.NewKeyRegistry(nil), reg, nil)
	s := NewCommandPalette(&m, core.ScopePanel)
	if got := len(s.Options()); got != 1 {
		t.Fatalf("palette items = %d, want 1", got)
	}
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("enter should pop with a command")
	}
	if msg, ok := cmd().(core.CommandExecuteMsg); !ok || msg.CommandID != "toggle-activation" {
		t.Fatalf("msg = %#v", msg)
	}
}

func TestTabPickerPagesToTheCursor(t *testing.T) {
	items := make([]core.PickerItem, 30)
	for i := range items {
		items[i] = core.PickerItem{ID: fmt.Sprintf("tab-%d", i), Label: fmt.Sprintf("Tab %02d", i)}
	}
	s := NewTabPicker(items)
	for range 25 {
		s.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	view := s.View(60, 20)
	if !strings.Contains(view, "Tab 25") {
		t.Fatalf("selected row missing from view:\n%s", view)
	}
	if strings.Contains(view, "Tab 00") {
		t.Fatalf("first page should be paged out:\n%s", view)
	}
	if got := len(strings.Split(view, "\n")); got > 20 {
		t.Fatalf("view has %d lines, want at most 20", got)
	}

	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("enter should pop with a command")
	}
	if msg := cmd().(core.ShowTabMsg); msg.Name != "tab-25" {
		t.Fatalf("msg = %#v", msg)
	}
}

func TestCommandPalettePagesToTheSelection(t *testing.T) {
	opts := make([]CommandOption, 12)
	for i := range opts {
		opts[i] = CommandOption{ID: fmt.Sprintf("cmd-%02d", i), Name: fmt.Sprintf("Command %02d", i)}
	}
	s := NewCommandScreen(core.ScopePanel, func(string) []CommandOption { return opts }, func(id string) tea.Msg { return id })
	for range 10 {
		s.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	view := s.View(60, 8)
	if !strings.Contains(view, "Command 10") {
		t.Fatalf("selected command missing from an 8-row palette:\n%s", view)
	}
	if strings.Contains(view, "Command 00") {
		t.Fatalf("first page should be paged out:\n%s", view)
	}

	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("enter should pop with a command")
	}
	if got := cmd(); got != "cmd-10" {
		t.Fatalf("selected = %v", got)
	}
}

func TestCommandPaletteTypingNeverMovesTheList(t *testing.T) {
	var queries []string
	s := NewCommandScreen(core.ScopePanel, func(q string) []CommandOption {
		queries = append(queries, q)
		return []CommandOption{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}}
	}, func(id string) tea.Msg { return id })
	s.Update(runes("j"))
	if it, ok := s.Selected(); !ok || it.ID != "a" {
		t.Fatalf("selected = %+v", it)
	}
	if _, _, pop := s.Update(runes("q")); pop {
		t.Fatalf("q should type, not close")
	}
	if got := queries[len(queries)-1]; got != "jq" {
		t.Fatalf("query = %q", got)
	}
}
