package tabs

import (
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

type Phase int

const (
	Idle Phase = iota
	Transitioning
)

func (p Phase) String() string {
	if p == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// State is the observable selection state. Target is the name whose
// confirmation events are still pending while Transitioning.
type State struct {
	Phase  Phase
	Active string
	Target string
}

// transition is a selection change that has been applied but not yet
// confirmed. Later selections before the settle replace to and seq but keep
// from, so a burst of changes confirms once.
type transition struct {
	from   string
	to     string
	source Source
	seq    uint64
}

type settleMsg struct {
	group string
	seq   uint64
}

func (g *Group) State() State {
	if g.pending == nil {
		return State{Phase: Idle, Active: g.activeName}
	}
	return State{Phase: Transitioning, Active: g.activeName, Target: g.pending.to}
}

// Show selects the panel called name. Unknown, disabled and already active
// names are ignored. Cancelable before-hide and before-show events run
// synchronously; the returned command delivers the hide and show
// confirmations once the new state has been rendered.
func (g *Group) Show(name string) tea.Cmd {
	return g.show(name, SourceAPI)
}

func (g *Group) show(name string, source Source) tea.Cmd {
	t, ok := g.tabIndex[name]
	if !ok {
		g.logUnknown(name)
		return nil
	}
	if t.disabled {
		g.logger.Debug("show ignored: tab disabled", "name", name)
		return nil
	}
	if name == g.activeName {
		return nil
	}

	from := g.activeName
	if from != "" {
		if ev := g.emit(EventBeforeHide, from, source); ev.DefaultPrevented() {
			g.logger.Debug("show prevented", "event", EventBeforeHide, "name", from)
			return nil
		}
	}
	if ev := g.emit(EventBeforeShow, name, source); ev.DefaultPrevented() {
		g.logger.Debug("show prevented", "event", EventBeforeShow, "name", name)
		return nil
	}
	// A listener may have restructured the group.
	if t, ok = g.tabIndex[name]; !ok || t.disabled {
		return nil
	}

	g.activeName = name
	if source == SourceKeyboard {
		g.focusTab = t
	}
	g.applyActive()

	g.seq++
	if g.pending == nil {
		g.pending = &transition{from: from}
	}
	g.pending.to = name
	g.pending.source = source
	g.pending.seq = g.seq
	g.logger.Debug("tab selected", "from", from, "to", name, "source", source)

	id, seq := g.id, g.seq
	return func() tea.Msg { return settleMsg{group: id, seq: seq} }
}

// settle runs after the update that changed the selection has been rendered.
// Only the latest selection settles; superseded ones are dropped.
func (g *Group) settle(seq uint64) tea.Cmd {
	if g.pending == nil || g.pending.seq != seq {
		return nil
	}
	tr := *g.pending
	g.pending = nil
	if !g.attached || tr.to != g.activeName {
		return nil
	}

	scrollCmd := g.scrollActiveIntoView()
	if tr.from == tr.to {
		return scrollCmd
	}
	var confirm []tea.Cmd
	if tr.from != "" {
		g.emit(EventHide, tr.from, tr.source)
		confirm = append(confirm, msgCmd(HideMsg{Group: g.id, Name: tr.from}))
	}
	g.emit(EventShow, tr.to, tr.source)
	confirm = append(confirm, msgCmd(ShowMsg{Group: g.id, Name: tr.to}))
	return tea.Batch(scrollCmd, tea.Sequence(confirm...))
}

func (g *Group) logUnknown(name string) {
	if suggestion, ok := g.closestName(name); ok {
		g.logger.Debug("show ignored: unknown panel", "name", name, "closest", suggestion)
		return
	}
	g.logger.Debug("show ignored: unknown panel", "name", name)
}

// closestName finds the registered name nearest to name by edit distance,
// within half its length.
func (g *Group) closestName(name string) (string, bool) {
	best, bestDist := "", -1
	for _, t := range g.tabs {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(t.panel))
		if bestDist < 0 || d < bestDist {
			best, bestDist = t.panel, d
		}
	}
	if bestDist < 0 || bestDist > max(1, len(name)/2) {
		return "", false
	}
	return best, true
}
