package tabs

import tea "github.com/charmbracelet/bubbletea"

type EventKind int

const (
	EventBeforeHide EventKind = iota
	EventBeforeShow
	EventHide
	EventShow
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventBeforeHide:
		return "tab-before-hide"
	case EventBeforeShow:
		return "tab-before-show"
	case EventHide:
		return "tab-hide"
	case EventShow:
		return "tab-show"
	case EventClose:
		return "tab-close"
	default:
		return "tab-unknown"
	}
}

// Cancelable reports whether listeners may veto the transition.
func (k EventKind) Cancelable() bool {
	return k == EventBeforeHide || k == EventBeforeShow
}

// Source is what triggered a selection.
type Source int

const (
	SourceAPI Source = iota
	SourcePointer
	SourceKeyboard
)

func (s Source) String() string {
	switch s {
	case SourcePointer:
		return "pointer"
	case SourceKeyboard:
		return "keyboard"
	default:
		return "api"
	}
}

// Event is delivered to listeners registered with Group.On.
type Event struct {
	Kind   EventKind
	Group  string
	Name   string
	Source Source

	prevented bool
}

// PreventDefault vetoes a before-hide or before-show transition. It has no
// effect on other kinds.
func (e *Event) PreventDefault() {
	if e.Kind.Cancelable() {
		e.prevented = true
	}
}

func (e *Event) DefaultPrevented() bool { return e.prevented }

type Listener func(*Event)

// ShowMsg confirms that Name became the visible panel.
type ShowMsg struct {
	Group string
	Name  string
}

// HideMsg confirms that Name stopped being the visible panel.
type HideMsg struct {
	Group string
	Name  string
}

// CloseMsg relays a close request from a closable tab. The group does not
// remove anything on its own.
type CloseMsg struct {
	Group string
	Name  string
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
