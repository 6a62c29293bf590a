package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup draws popup as a bordered card centered over base.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Render(popup)
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card), height)
	out := make([]string, height)
	for i := range out {
		baseLine := padRight(baseLines[i], width)
		overlayLine := padRight(overlayLines[i], width)
		start, end, ok := overlayBounds(overlayLine, width)
		if !ok {
			out[i] = baseLine
			continue
		}
		left := ansi.Truncate(baseLine, start, "")
		segment := ansi.Cut(overlayLine, start, end)
		right := ansi.Cut(baseLine, end, width)
		out[i] = padRight(left+segment+right, width)
	}
	return strings.Join(out, "\n")
}

func overlayBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	lead := len(plain) - len(strings.TrimLeft(plain, " "))
	start = ansi.StringWidth(plain[:lead])
	end = ansi.StringWidth(trimmed)
	return start, end, start < end
}
