package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	paneBorderIdle    = lipgloss.Color("#6c7086")
	paneBorderFocused = lipgloss.Color("#a6e3a1")
	paneTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
)

// Pane draws rounded chrome with an inline title around a body widget.
type Pane struct {
	Title   string
	Body    Widget
	Focused bool
}

func (p Pane) Render(width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}
	border := paneBorderIdle
	if p.Focused {
		border = paneBorderFocused
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	innerHeight := height - 2

	titleText := ""
	if t := strings.TrimSpace(p.Title); t != "" {
		titleText = " " + ansi.Truncate(t, max(1, innerWidth-3), "…") + " "
	}
	leftDash := 0
	if titleText != "" && innerWidth > ansi.StringWidth(titleText) {
		leftDash = 1
	}
	rightDash := max(0, innerWidth-leftDash-ansi.StringWidth(titleText))

	v := borderStyle.Render("│")
	rows := make([]string, 0, height)
	rows = append(rows, borderStyle.Render("╭"+strings.Repeat("─", leftDash))+
		paneTitleStyle.Render(titleText)+
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮"))

	body := ""
	if p.Body != nil && contentWidth > 0 {
		body = p.Body.Render(contentWidth, innerHeight)
	}
	for _, line := range splitToLines(body, innerHeight) {
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
