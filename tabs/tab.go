package tabs

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Signal is what a Tab reports to the group that owns it.
type Signal int

const (
	SignalSelect Signal = iota
	SignalClose
	SignalChanged
)

// TabObserver is notified when a tab is clicked, asked to close, or has one
// of its declared properties changed.
type TabObserver func(t *Tab, sig Signal) tea.Cmd

// Tab is one header entry. It names the panel it controls; only the owning
// Group writes its active state.
type Tab struct {
	id       string
	panel    string
	label    string
	disabled bool
	closable bool
	active   bool
	focused  bool
	controls string

	attrs     map[string]string
	observers observers[TabObserver]
}

type TabOption func(*Tab)

func TabID(id string) TabOption {
	return func(t *Tab) {
		if id = strings.TrimSpace(id); id != "" {
			t.id = id
		}
	}
}

func TabDisabled(v bool) TabOption { return func(t *Tab) { t.disabled = v } }

func TabClosable(v bool) TabOption { return func(t *Tab) { t.closable = v } }

func NewTab(panel, label string, opts ...TabOption) *Tab {
	t := &Tab{panel: panel, label: label}
	for _, opt := range opts {
		opt(t)
	}
	if t.id == "" {
		t.id = "tab-" + uuid.NewString()
	}
	t.syncAttributes()
	return t
}

func (t *Tab) ID() string       { return t.id }
func (t *Tab) Panel() string    { return t.panel }
func (t *Tab) Label() string    { return t.label }
func (t *Tab) Disabled() bool   { return t.disabled }
func (t *Tab) Closable() bool   { return t.closable }
func (t *Tab) Active() bool     { return t.active }
func (t *Tab) Focused() bool    { return t.focused }
func (t *Tab) Controls() string { return t.controls }

// TabDescriptor is a read-only snapshot of a tab's selection state.
type TabDescriptor struct {
	PanelName string
	Disabled  bool
	Active    bool
	Focusable bool
}

// Descriptor reports the tab's current state. Only enabled tabs are focusable.
func (t *Tab) Descriptor() TabDescriptor {
	return TabDescriptor{
		PanelName: t.panel,
		Disabled:  t.disabled,
		Active:    t.active,
		Focusable: !t.disabled,
	}
}

func (t *Tab) SetLabel(label string) tea.Cmd {
	if t.label == label {
		return nil
	}
	t.label = label
	return t.notify(SignalChanged)
}

func (t *Tab) SetPanel(panel string) tea.Cmd {
	if t.panel == panel {
		return nil
	}
	t.panel = panel
	return t.notify(SignalChanged)
}

func (t *Tab) SetDisabled(v bool) tea.Cmd {
	if t.disabled == v {
		return nil
	}
	t.disabled = v
	t.syncAttributes()
	return t.notify(SignalChanged)
}

func (t *Tab) SetClosable(v bool) tea.Cmd {
	if t.closable == v {
		return nil
	}
	t.closable = v
	return t.notify(SignalChanged)
}

// Click is a pointer activation. Disabled tabs ignore it.
func (t *Tab) Click() tea.Cmd {
	if t.disabled {
		return nil
	}
	return t.notify(SignalSelect)
}

// RequestClose asks the owning group to announce a close request. It does
// nothing for tabs that are disabled or not closable.
func (t *Tab) RequestClose() tea.Cmd {
	if t.disabled || !t.closable {
		return nil
	}
	return t.notify(SignalClose)
}

// Attr returns one accessibility attribute, e.g. "aria-selected".
func (t *Tab) Attr(name string) (string, bool) {
	v, ok := t.attrs[name]
	return v, ok
}

func (t *Tab) Attributes() map[string]string {
	out := make(map[string]string, len(t.attrs))
	for k, v := range t.attrs {
		out[k] = v
	}
	return out
}

// Observe registers fn and returns a func that removes it.
func (t *Tab) Observe(fn TabObserver) func() {
	if fn == nil {
		return func() {}
	}
	return t.observers.add(fn)
}

func (t *Tab) setActive(v bool) {
	t.active = v
	t.syncAttributes()
}

func (t *Tab) setFocused(v bool) { t.focused = v }

func (t *Tab) setControls(id string) {
	t.controls = id
	t.syncAttributes()
}

func (t *Tab) notify(sig Signal) tea.Cmd {
	var cmds []tea.Cmd
	for _, fn := range t.observers.snapshot() {
		cmds = append(cmds, fn(t, sig))
	}
	return tea.Batch(cmds...)
}

func (t *Tab) syncAttributes() {
	tabindex := -1
	if t.active {
		tabindex = 0
	}
	t.attrs = map[string]string{
		"id":            t.id,
		"role":          "tab",
		"aria-selected": strconv.FormatBool(t.active),
		"aria-disabled": strconv.FormatBool(t.disabled),
		"tabindex":      strconv.Itoa(tabindex),
	}
	if t.controls != "" {
		t.attrs["aria-controls"] = t.controls
	}
}
