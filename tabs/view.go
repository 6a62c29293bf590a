package tabs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tabset/icons"
	"github.com/jask/tabset/widgets"
)

type Styles struct {
	Tab                  lipgloss.Style
	ActiveTab            lipgloss.Style
	FocusedTab           lipgloss.Style
	DisabledTab          lipgloss.Style
	Indicator            lipgloss.Style
	Track                lipgloss.Style
	ScrollButton         lipgloss.Style
	ScrollButtonDisabled lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Tab:                  lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
		ActiveTab:            lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true),
		FocusedTab:           lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa")).Bold(true),
		DisabledTab:          lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70")),
		Indicator:            lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
		Track:                lipgloss.NewStyle().Foreground(lipgloss.Color("#313244")),
		ScrollButton:         lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")),
		ScrollButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70")),
	}
}

// segment is a clickable run of a tab cell.
type segment struct {
	zone  string
	text  string
	width int
}

// View draws the strip on its placement edge and the active panel in the
// remaining space.
func (g *Group) View() string {
	if g.width <= 0 || g.height <= 0 {
		return ""
	}
	body := widgets.Func(g.renderBody)
	var layout widgets.Widget
	switch g.placement {
	case PlacementBottom:
		layout = widgets.VStack{Widgets: []widgets.Widget{body, widgets.Func(g.renderHeader)}, Sizes: []int{0, 2}}
	case PlacementStart:
		layout = widgets.HStack{Widgets: []widgets.Widget{widgets.Func(g.renderColumn), body}, Sizes: []int{g.columnWidth(), 0}, Gap: 1}
	case PlacementEnd:
		layout = widgets.HStack{Widgets: []widgets.Widget{body, widgets.Func(g.renderColumn)}, Sizes: []int{0, g.columnWidth()}, Gap: 1}
	default:
		layout = widgets.VStack{Widgets: []widgets.Widget{widgets.Func(g.renderHeader), body}, Sizes: []int{2, 0}}
	}
	return widgets.FitCanvas(layout.Render(g.width, g.height), g.width, g.height)
}

func (g *Group) renderBody(width, height int) string {
	p := g.ActivePanel()
	if p == nil {
		return ""
	}
	return p.Render(width, height)
}

// renderHeader draws the horizontal strip and its indicator line. The
// indicator sits between the strip and the body.
func (g *Group) renderHeader(width, _ int) string {
	off := 0
	if g.scroll.Measured() {
		off = g.scroll.Cell()
	}
	viewport := width
	left, right, pad := "", "", ""
	if g.buttons {
		viewport -= 2 * scrollButtonWidth
		left = g.renderScrollButton("scroll-backward", icons.ChevronLeft, "<", g.scroll.CanScrollBackward())
		right = g.renderScrollButton("scroll-forward", icons.ChevronRight, ">", g.scroll.CanScrollForward())
		pad = strings.Repeat(" ", scrollButtonWidth)
	}
	if viewport <= 0 {
		return ""
	}
	strip := g.mark("strip", left+g.renderWindow(off, viewport)+right)
	indicator := pad + g.renderIndicator(off, viewport) + pad
	if g.placement == PlacementBottom {
		return indicator + "\n" + strip
	}
	return strip + "\n" + indicator
}

// renderWindow draws the tab cells visible in [off, off+viewport).
func (g *Group) renderWindow(off, viewport int) string {
	var b strings.Builder
	pos, used := 0, 0
	for _, t := range g.tabs {
		for _, s := range g.tabSegments(t) {
			a, e := max(pos, off), min(pos+s.width, off+viewport)
			if a < e {
				piece := s.text
				if a > pos || e < pos+s.width {
					piece = ansi.Cut(s.text, a-pos, e-pos)
				}
				b.WriteString(g.mark(s.zone, piece))
				used += e - a
			}
			pos += s.width
		}
	}
	if used < viewport {
		b.WriteString(strings.Repeat(" ", viewport-used))
	}
	return b.String()
}

func (g *Group) renderIndicator(off, viewport int) string {
	a, e := 0, 0
	if active := g.ActiveTab(); active != nil {
		if sp, ok := g.measureStrip().spans[active]; ok {
			a = min(max(sp.start-off, 0), viewport)
			e = min(max(sp.start+sp.extent-off, 0), viewport)
		}
	}
	return g.styles.Track.Render(strings.Repeat("─", a)) +
		g.styles.Indicator.Render(strings.Repeat("━", e-a)) +
		g.styles.Track.Render(strings.Repeat("─", viewport-e))
}

func (g *Group) renderScrollButton(zoneName, icon, fallback string, enabled bool) string {
	style := g.styles.ScrollButton
	if !enabled {
		style = g.styles.ScrollButtonDisabled
	}
	glyph := ansi.Truncate(g.icons.Glyph(g.iconLibrary, icon, fallback), scrollButtonWidth-2, "")
	text := " " + glyph + strings.Repeat(" ", scrollButtonWidth-1-ansi.StringWidth(glyph))
	return g.mark(zoneName, style.Render(text))
}

// columnWidth sizes the vertical strip to its widest cell, capped at a third
// of the group.
func (g *Group) columnWidth() int {
	widest := 0
	for _, t := range g.tabs {
		widest = max(widest, g.cellWidth(t))
	}
	limit := max(g.width/3, 4)
	return min(widest+1, limit)
}

// renderColumn draws the vertical strip, one tab per row, with the active
// marker on the edge facing the body.
func (g *Group) renderColumn(width, height int) string {
	off := 0
	if g.scroll.Measured() {
		off = g.scroll.Cell()
	}
	active := g.ActiveTab()
	rows := make([]string, 0, height)
	for i := off; i < len(g.tabs) && len(rows) < height; i++ {
		t := g.tabs[i]
		marker := " "
		if t == active {
			marker = g.styles.Indicator.Render("▌")
		}
		segs := g.tabSegments(t)
		closeWidth := 0
		if len(segs) > 1 {
			closeWidth = segs[1].width
		}
		labelWidth := max(width-1-closeWidth, 0)
		cell := g.mark(segs[0].zone, fitWidth(segs[0].text, labelWidth))
		if len(segs) > 1 && labelWidth > 0 {
			cell += g.mark(segs[1].zone, segs[1].text)
		}
		if g.placement == PlacementEnd {
			rows = append(rows, marker+cell)
		} else {
			rows = append(rows, cell+marker)
		}
	}
	return g.mark("strip", strings.Join(rows, "\n"))
}

func (g *Group) tabSegments(t *Tab) []segment {
	style := g.tabStyle(t)
	label := " " + t.label + " "
	segs := []segment{{zone: "tab:" + t.id, text: style.Render(label), width: ansi.StringWidth(label)}}
	if t.closable {
		closeText := g.icons.Glyph(g.iconLibrary, icons.Close, "x") + " "
		segs = append(segs, segment{zone: "close:" + t.id, text: style.Render(closeText), width: ansi.StringWidth(closeText)})
	}
	return segs
}

func (g *Group) cellWidth(t *Tab) int {
	w := ansi.StringWidth(" " + t.label + " ")
	if t.closable {
		w += ansi.StringWidth(g.icons.Glyph(g.iconLibrary, icons.Close, "x") + " ")
	}
	return w
}

func (g *Group) tabStyle(t *Tab) lipgloss.Style {
	switch {
	case t.disabled:
		return g.styles.DisabledTab
	case t.focused:
		return g.styles.FocusedTab
	case t.active:
		return g.styles.ActiveTab
	default:
		return g.styles.Tab
	}
}

func (g *Group) mark(id, s string) string {
	if g.zones == nil {
		return s
	}
	return g.zones.Mark(g.zoneID(id), s)
}

func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
