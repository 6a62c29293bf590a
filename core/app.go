package core

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tabset/tabs"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// SelectionStore persists what a tab group showed and closed.
type SelectionStore interface {
	SaveSelection(ctx context.Context, groupID, panel string) error
	SaveClosed(ctx context.Context, groupID, panel string) error
}

const (
	ScopeStrip = "strip"
	ScopePanel = "panel"
	// ScopeScreens matches the scope of every overlay screen.
	ScopeScreens = "screen:*"

	screenScopePrefix = "screen:"
)

type Model struct {
	width     int
	height    int
	title     string
	group     *tabs.Group
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	store     SelectionStore
	status    string
	statusErr bool
	quitting  bool

	Zones            *zone.Manager
	Logger           *log.Logger
	OpenCommandModal func(m *Model, scope string) Screen
	OpenTabPicker    func(m *Model) Screen
}

func NewModel(title string, group *tabs.Group, keys *KeyRegistry, commands *CommandRegistry, store SelectionStore) Model {
	return Model{
		title:    title,
		group:    group,
		keys:     keys,
		commands: commands,
		store:    store,
		status:   "Ready",
		width:    100,
		height:   32,
		Logger:   log.New(io.Discard),
	}
}

func (m Model) Init() tea.Cmd {
	if m.group == nil {
		return nil
	}
	return tea.Batch(m.group.Init(), m.group.Resize(m.bodySize()))
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.group != nil && m.group.Focused() {
		return ScopeStrip
	}
	return ScopePanel
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s, m.group)
}

func (m *Model) Group() *tabs.Group { return m.group }

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) KeyRegistry() *KeyRegistry {
	return m.keys
}

// bodySize is the area left for the tab group below the header and status
// bars and above the footer.
func (m Model) bodySize() (int, int) {
	return max(0, m.width), max(0, m.height-3)
}

// ToggleStripFocus moves keyboard focus between the tab strip and the panel.
func (m *Model) ToggleStripFocus() {
	if m.group == nil {
		return
	}
	if m.group.Focused() {
		m.group.Blur()
		m.SetStatus("Panel focused")
		return
	}
	m.group.Focus()
	m.SetStatus("Tab strip focused")
}
