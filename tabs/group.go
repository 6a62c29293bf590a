package tabs

import (
	"io"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tabset/icons"
	"github.com/jask/tabset/internal/scroll"
)

// Group coordinates a set of tabs and panels. It is the only writer of their
// active state: at most one tab and at most one panel are active, and both
// carry the group's active name.
type Group struct {
	id string

	tabs       []*Tab
	panels     []*Panel
	tabIndex   map[string]*Tab
	panelIndex map[string]*Panel
	unobserve  map[any]func()

	activeName string
	pending    *transition
	seq        uint64

	activation       Activation
	placement        Placement
	noScrollControls bool

	focused  bool
	focusTab *Tab

	attached      bool
	width, height int

	behavior      scroll.Behavior
	frameInterval time.Duration
	scroll        *scroll.Controller
	measure       *scroll.Coalescer
	animate       *scroll.Coalescer
	geometry      geometry
	buttons       bool

	listeners map[EventKind]*observers[Listener]

	keys        KeyMap
	styles      Styles
	icons       *icons.Registry
	iconLibrary string
	zones       *zone.Manager
	logger      *log.Logger
}

func New(opts ...Option) *Group {
	g := &Group{
		id:          "tab-group-" + uuid.NewString(),
		tabIndex:    map[string]*Tab{},
		panelIndex:  map[string]*Panel{},
		unobserve:   map[any]func(){},
		listeners:   map[EventKind]*observers[Listener]{},
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		icons:       icons.Default(),
		iconLibrary: icons.DefaultLibrary,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With("group", g.id)
	g.scroll = scroll.NewController(g.behavior)
	g.measure = scroll.NewCoalescer(g.id, scroll.FrameMeasure, g.frameInterval)
	g.animate = scroll.NewCoalescer(g.id, scroll.FrameAnimate, g.frameInterval)
	return g
}

func (g *Group) ID() string { return g.id }

// Init attaches the group: it seeds the active selection and schedules the
// first geometry measurement.
func (g *Group) Init() tea.Cmd {
	g.attached = true
	g.reindex()
	if t, ok := g.tabIndex[g.activeName]; ok && t.disabled {
		g.activeName = ""
	}
	g.syncStructure()
	return g.measure.Request()
}

// Close detaches the group. Child observers, listeners and pending frames
// are released and any in-flight confirmation is dropped.
func (g *Group) Close() {
	g.attached = false
	for _, off := range g.unobserve {
		off()
	}
	clear(g.unobserve)
	for _, l := range g.listeners {
		l.clear()
	}
	g.measure.Cancel()
	g.animate.Cancel()
	g.pending = nil
	g.seq++
	g.tabs = nil
	g.panels = nil
	clear(g.tabIndex)
	clear(g.panelIndex)
	g.focusTab = nil
	g.scroll.Reset()
	g.buttons = false
	g.logger.Debug("group closed")
}

func (g *Group) Attached() bool { return g.attached }

// On registers a listener for kind and returns a func that removes it.
// Listeners run synchronously in registration order.
func (g *Group) On(kind EventKind, fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	set := g.listeners[kind]
	if set == nil {
		set = &observers[Listener]{}
		g.listeners[kind] = set
	}
	return set.add(fn)
}

func (g *Group) Tabs() []*Tab     { return slices.Clone(g.tabs) }
func (g *Group) Panels() []*Panel { return slices.Clone(g.panels) }

func (g *Group) AddTab(t *Tab) tea.Cmd {
	if t == nil || slices.Contains(g.tabs, t) {
		return nil
	}
	g.tabs = append(g.tabs, t)
	g.unobserve[t] = t.Observe(g.onTabSignal)
	return g.structureChanged()
}

func (g *Group) RemoveTab(t *Tab) tea.Cmd {
	i := slices.Index(g.tabs, t)
	if i < 0 {
		return nil
	}
	g.tabs = slices.Delete(g.tabs, i, i+1)
	if off, ok := g.unobserve[t]; ok {
		off()
		delete(g.unobserve, t)
	}
	t.setActive(false)
	t.setFocused(false)
	t.setControls("")
	return g.structureChanged()
}

func (g *Group) AddPanel(p *Panel) tea.Cmd {
	if p == nil || slices.Contains(g.panels, p) {
		return nil
	}
	g.panels = append(g.panels, p)
	g.unobserve[p] = p.Observe(g.onPanelRenamed)
	return g.structureChanged()
}

func (g *Group) RemovePanel(p *Panel) tea.Cmd {
	i := slices.Index(g.panels, p)
	if i < 0 {
		return nil
	}
	g.panels = slices.Delete(g.panels, i, i+1)
	if off, ok := g.unobserve[p]; ok {
		off()
		delete(g.unobserve, p)
	}
	p.setActive(false)
	p.setLabelledBy("")
	return g.structureChanged()
}

// Tab returns the tab registered for a panel name.
func (g *Group) Tab(name string) (*Tab, bool) {
	t, ok := g.tabIndex[name]
	return t, ok
}

func (g *Group) Panel(name string) (*Panel, bool) {
	p, ok := g.panelIndex[name]
	return p, ok
}

func (g *Group) ActiveName() string { return g.activeName }

func (g *Group) ActiveTab() *Tab { return g.tabIndex[g.activeName] }

func (g *Group) ActivePanel() *Panel { return g.panelIndex[g.activeName] }

func (g *Group) Activation() Activation          { return g.activation }
func (g *Group) SetActivation(a Activation)      { g.activation = a }
func (g *Group) Placement() Placement            { return g.placement }
func (g *Group) NoScrollControls() bool          { return g.noScrollControls }
func (g *Group) ScrollBehavior() scroll.Behavior { return g.scroll.Behavior() }

func (g *Group) SetScrollBehavior(b scroll.Behavior) {
	g.behavior = b
	g.scroll.SetBehavior(b)
}

// SetPlacement moves the strip to another edge; geometry is recomputed on the
// next frame.
func (g *Group) SetPlacement(p Placement) tea.Cmd {
	if g.placement == p {
		return nil
	}
	g.placement = p
	g.scroll.Reset()
	g.animate.Cancel()
	return g.requestMeasure()
}

func (g *Group) SetNoScrollControls(v bool) tea.Cmd {
	if g.noScrollControls == v {
		return nil
	}
	g.noScrollControls = v
	return g.requestMeasure()
}

// Resize records the cells available to the whole group. Bursts of resizes
// within a frame are coalesced into one recomputation.
func (g *Group) Resize(width, height int) tea.Cmd {
	if g.width == width && g.height == height {
		return nil
	}
	g.width, g.height = width, height
	return g.requestMeasure()
}

func (g *Group) Size() (int, int) { return g.width, g.height }

func (g *Group) onTabSignal(t *Tab, sig Signal) tea.Cmd {
	switch sig {
	case SignalSelect:
		return g.show(t.panel, SourcePointer)
	case SignalClose:
		return g.requestClose(t)
	case SignalChanged:
		return g.structureChanged()
	}
	return nil
}

func (g *Group) onPanelRenamed(*Panel) tea.Cmd {
	return g.structureChanged()
}

func (g *Group) structureChanged() tea.Cmd {
	g.syncStructure()
	return g.requestMeasure()
}

// syncStructure rebuilds the name indexes, drops a stale selection, seeds a
// default one, and pushes active and aria state to the children.
func (g *Group) syncStructure() {
	g.reindex()
	if g.attached && g.activeName != "" {
		if _, ok := g.tabIndex[g.activeName]; !ok {
			g.logger.Debug("active tab removed", "name", g.activeName)
			g.activeName = ""
		}
	}
	if g.focusTab != nil && !slices.Contains(g.tabs, g.focusTab) {
		g.focusTab = nil
	}
	if g.attached && g.activeName == "" {
		if first := g.firstEnabled(); first != nil {
			g.activeName = first.panel
		}
	}
	g.applyActive()
}

func (g *Group) reindex() {
	clear(g.tabIndex)
	for _, t := range g.tabs {
		if prev, ok := g.tabIndex[t.panel]; ok && prev != t {
			g.logger.Warn("duplicate tab for panel", "name", t.panel, "kept", t.id, "shadowed", prev.id)
		}
		g.tabIndex[t.panel] = t
	}
	clear(g.panelIndex)
	for _, p := range g.panels {
		if prev, ok := g.panelIndex[p.name]; ok && prev != p {
			g.logger.Warn("duplicate panel name", "name", p.name, "kept", p.id, "shadowed", prev.id)
		}
		g.panelIndex[p.name] = p
	}
}

func (g *Group) applyActive() {
	active := g.tabIndex[g.activeName]
	for _, t := range g.tabs {
		t.setActive(g.activeName != "" && t == active)
		controls := ""
		if p, ok := g.panelIndex[t.panel]; ok {
			controls = p.id
		}
		t.setControls(controls)
		t.setFocused(g.focused && t == g.focusTab)
	}
	shown := g.panelIndex[g.activeName]
	for _, p := range g.panels {
		p.setActive(g.activeName != "" && p == shown)
		labelledBy := ""
		if t, ok := g.tabIndex[p.name]; ok {
			labelledBy = t.id
		}
		p.setLabelledBy(labelledBy)
	}
}

func (g *Group) firstEnabled() *Tab {
	for _, t := range g.tabs {
		if !t.disabled {
			return t
		}
	}
	return nil
}

func (g *Group) lastEnabled() *Tab {
	for i := len(g.tabs) - 1; i >= 0; i-- {
		if !g.tabs[i].disabled {
			return g.tabs[i]
		}
	}
	return nil
}

func (g *Group) emit(kind EventKind, name string, source Source) *Event {
	ev := &Event{Kind: kind, Group: g.id, Name: name, Source: source}
	if set := g.listeners[kind]; set != nil {
		for _, fn := range set.snapshot() {
			fn(ev)
		}
	}
	return ev
}

func (g *Group) requestClose(t *Tab) tea.Cmd {
	g.logger.Debug("close requested", "name", t.panel)
	g.emit(EventClose, t.panel, SourcePointer)
	return msgCmd(CloseMsg{Group: g.id, Name: t.panel})
}
