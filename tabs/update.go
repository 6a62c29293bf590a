package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabset/internal/scroll"
)

// Update routes messages addressed to the group. Messages owned by other
// groups are ignored, so several groups can share one program.
func (g *Group) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case settleMsg:
		if msg.group != g.id {
			return nil
		}
		return g.settle(msg.seq)
	case scroll.FrameMsg:
		if msg.Owner != g.id {
			return nil
		}
		switch msg.Kind {
		case scroll.FrameMeasure:
			if g.measure.Accept(msg) {
				return g.recompute()
			}
		case scroll.FrameAnimate:
			if g.animate.Accept(msg) {
				return g.stepAnimation()
			}
		}
		return nil
	case tea.KeyMsg:
		_, cmd := g.HandleKey(msg)
		return cmd
	case tea.MouseMsg:
		return g.handleMouse(msg)
	}
	return nil
}

func (g *Group) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if g.zones == nil || !g.attached {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if g.zones.Get(g.zoneID("strip")).InBounds(msg) {
			return g.animateIf(g.scroll.ScrollBy(-wheelStep))
		}
		return nil
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if g.zones.Get(g.zoneID("strip")).InBounds(msg) {
			return g.animateIf(g.scroll.ScrollBy(wheelStep))
		}
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if g.buttons {
		if g.zones.Get(g.zoneID("scroll-backward")).InBounds(msg) {
			return g.ScrollBackward()
		}
		if g.zones.Get(g.zoneID("scroll-forward")).InBounds(msg) {
			return g.ScrollForward()
		}
	}
	for _, t := range g.tabs {
		if t.closable && g.zones.Get(g.zoneID("close:"+t.id)).InBounds(msg) {
			return t.RequestClose()
		}
		if g.zones.Get(g.zoneID("tab:"+t.id)).InBounds(msg) {
			return t.Click()
		}
	}
	return nil
}

func (g *Group) zoneID(part string) string {
	return g.id + ":" + part
}
