package tabs

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the strip's bindings. Which arrow pair moves focus depends on
// placement: left/right for top and bottom, up/down for start and end.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Down     key.Binding
	Up       key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
	Close    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next tab")),
		Prev:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev tab")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next tab")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev tab")),
		First:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first tab")),
		Last:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last tab")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select")),
		Close:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "close tab")),
	}
}

func (g *Group) KeyMap() KeyMap { return g.keys }

// ShortHelp lists the bindings that apply to the current placement and
// activation mode.
func (g *Group) ShortHelp() []key.Binding {
	out := []key.Binding{g.keys.Prev, g.keys.Next}
	if !g.placement.Horizontal() {
		out = []key.Binding{g.keys.Up, g.keys.Down}
	}
	out = append(out, g.keys.First, g.keys.Last)
	if g.activation == ActivationManual {
		out = append(out, g.keys.Activate)
	}
	return append(out, g.keys.Close)
}

// Focus gives the strip keyboard focus. Focus lands on the active tab.
func (g *Group) Focus() {
	g.focused = true
	if g.focusTab == nil {
		g.focusTab = g.ActiveTab()
	}
	g.applyActive()
}

func (g *Group) Blur() {
	g.focused = false
	g.applyActive()
}

func (g *Group) Focused() bool { return g.focused }

// FocusedTab is the tab that holds, or would hold, keyboard focus.
func (g *Group) FocusedTab() *Tab {
	if g.focusTab != nil {
		return g.focusTab
	}
	return g.ActiveTab()
}

// HandleKey applies strip navigation. It reports whether msg was one of the
// strip's keys; keys are ignored while the strip is not focused.
func (g *Group) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !g.focused {
		return false, nil
	}
	horizontal := g.placement.Horizontal()
	switch {
	case horizontal && key.Matches(msg, g.keys.Next), !horizontal && key.Matches(msg, g.keys.Down):
		return true, g.focusNeighbor(1)
	case horizontal && key.Matches(msg, g.keys.Prev), !horizontal && key.Matches(msg, g.keys.Up):
		return true, g.focusNeighbor(-1)
	case key.Matches(msg, g.keys.First):
		return true, g.focusOn(g.firstEnabled())
	case key.Matches(msg, g.keys.Last):
		return true, g.focusOn(g.lastEnabled())
	case key.Matches(msg, g.keys.Activate):
		if t := g.FocusedTab(); t != nil && !t.disabled {
			return true, g.show(t.panel, SourceKeyboard)
		}
		return true, nil
	case key.Matches(msg, g.keys.Close):
		if t := g.FocusedTab(); t != nil {
			return true, t.RequestClose()
		}
		return true, nil
	}
	return false, nil
}

// focusNeighbor moves focus delta steps through enabled tabs, wrapping at
// both ends.
func (g *Group) focusNeighbor(delta int) tea.Cmd {
	n := len(g.tabs)
	if n == 0 {
		return nil
	}
	idx := -1
	if cur := g.FocusedTab(); cur != nil {
		for i, t := range g.tabs {
			if t == cur {
				idx = i
				break
			}
		}
	}
	if idx < 0 && delta < 0 {
		idx = n
	}
	for step := 1; step <= n; step++ {
		i := ((idx+delta*step)%n + n) % n
		if !g.tabs[i].disabled {
			return g.focusOn(g.tabs[i])
		}
	}
	return nil
}

// focusOn moves keyboard focus to t. Under auto activation it also selects,
// and focus returns to where it was if a listener cancels the selection.
func (g *Group) focusOn(t *Tab) tea.Cmd {
	if t == nil || t.disabled {
		return nil
	}
	prev := g.focusTab
	g.focusTab = t
	g.applyActive()
	if g.activation == ActivationAuto && t.panel != g.activeName {
		cmd := g.show(t.panel, SourceKeyboard)
		if g.activeName != t.panel {
			// Vetoed. Focus stays with the selection.
			if prev != nil && g.tabIndex[prev.panel] != prev {
				prev = nil
			}
			g.focusTab = prev
			g.applyActive()
		}
		return cmd
	}
	return g.scrollTabIntoView(t)
}
