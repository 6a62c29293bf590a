package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabset/internal/scroll"
)

// scrollButtonWidth is the cells each scroll button takes, e.g. " ‹ ".
const scrollButtonWidth = 3

// wheelStep is how far one wheel notch scrolls the strip.
const wheelStep = 3

// span locates a tab along the strip axis.
type span struct {
	start  int
	extent int
}

// geometry is the strip layout captured by the last measurement.
type geometry struct {
	spans   map[*Tab]span
	content int
}

func (g *Group) measureStrip() geometry {
	geo := geometry{spans: make(map[*Tab]span, len(g.tabs))}
	pos := 0
	for _, t := range g.tabs {
		extent := 1
		if g.placement.Horizontal() {
			extent = g.cellWidth(t)
		}
		geo.spans[t] = span{start: pos, extent: extent}
		pos += extent
	}
	geo.content = pos
	return geo
}

// stripExtent is the room the strip has along its axis, scroll buttons
// included.
func (g *Group) stripExtent() int {
	if g.placement.Horizontal() {
		return g.width
	}
	return g.height
}

func (g *Group) requestMeasure() tea.Cmd {
	if !g.attached {
		return nil
	}
	return g.measure.Request()
}

// recompute runs once per frame after any number of resize or structure
// changes. It refreshes the scroll extents, decides scroll button
// visibility and keeps the active tab in view.
func (g *Group) recompute() tea.Cmd {
	extent := g.stripExtent()
	if !g.attached || g.width <= 0 || g.height <= 0 {
		g.logger.Debug("layout unavailable, measurement skipped", "width", g.width, "height", g.height)
		return nil
	}
	g.geometry = g.measureStrip()
	content := float64(g.geometry.content)
	buttons := g.placement.Horizontal() && !g.noScrollControls && content > float64(extent)+scroll.Epsilon
	viewport := extent
	if buttons {
		viewport -= 2 * scrollButtonWidth
	}
	if !g.scroll.Measure(content, float64(viewport)) {
		g.logger.Debug("strip too small to measure", "extent", extent)
		g.buttons = false
		return nil
	}
	if buttons != g.buttons {
		g.logger.Debug("scroll buttons toggled", "visible", buttons)
	}
	g.buttons = buttons
	return g.scrollActiveIntoView()
}

// ScrollButtonsVisible reports whether the strip draws its scroll buttons.
func (g *Group) ScrollButtonsVisible() bool { return g.buttons }

func (g *Group) CanScrollBackward() bool { return g.scroll.CanScrollBackward() }

func (g *Group) CanScrollForward() bool { return g.scroll.CanScrollForward() }

// ScrollOffset is the first visible cell of the strip.
func (g *Group) ScrollOffset() int { return g.scroll.Cell() }

// ScrollBackward scrolls the strip one viewport toward its start.
func (g *Group) ScrollBackward() tea.Cmd {
	return g.animateIf(g.scroll.ScrollBackward())
}

// ScrollForward scrolls the strip one viewport toward its end.
func (g *Group) ScrollForward() tea.Cmd {
	return g.animateIf(g.scroll.ScrollForward())
}

func (g *Group) scrollActiveIntoView() tea.Cmd {
	return g.scrollTabIntoView(g.ActiveTab())
}

func (g *Group) scrollTabIntoView(t *Tab) tea.Cmd {
	if t == nil || !g.scroll.Measured() {
		return nil
	}
	sp, ok := g.geometry.spans[t]
	if !ok {
		return nil
	}
	return g.animateIf(g.scroll.ScrollIntoView(float64(sp.start), float64(sp.extent)))
}

func (g *Group) animateIf(needed bool) tea.Cmd {
	if !needed {
		return nil
	}
	return g.animate.Request()
}

func (g *Group) stepAnimation() tea.Cmd {
	return g.animateIf(g.scroll.Step())
}
