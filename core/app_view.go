package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tabset/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))

	var body string
	if m.group != nil && bodyHeight > 0 {
		body = m.group.View()
	}
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		popup := top.View(max(20, m.width-12), max(8, bodyHeight-4))
		body = widgets.RenderPopup(body, popup, m.width, bodyHeight)
	}
	body = widgets.FitHeight(body, bodyHeight)

	parts := []string{header, status}
	if bodyHeight > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, footer)
	view := widgets.FitHeight(strings.Join(parts, "\n"), max(1, m.height))
	view = appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
	if m.Zones != nil {
		return m.Zones.Scan(view)
	}
	return view
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(m.title)
	right := ""
	if m.group != nil {
		sep := headerSepStyle.Render(" │ ")
		info := []string{
			headerInfoStyle.Render("placement " + m.group.Placement().String()),
			headerInfoStyle.Render("activation " + m.group.Activation().String()),
		}
		if m.group.NoScrollControls() {
			info = append(info, headerInfoStyle.Render("scroll controls off"))
		}
		if m.group.Focused() {
			info = append(info, headerFocusStyle.Render("strip"))
		}
		right = strings.Join(info, sep)
	}
	leftW := ansi.StringWidth(left)
	right = ansi.Truncate(right, max(0, m.width-leftW-1), "")
	gap := max(1, m.width-leftW-ansi.StringWidth(right))
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}
