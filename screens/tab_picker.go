package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tabset/core"
	"github.com/jask/tabset/widgets"
)

var (
	pickerTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	pickerCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	pickerMetaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	pickerDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")).Strikethrough(true)
)

// TabPicker is a fuzzy finder over a group's tabs. Selecting an enabled tab
// emits core.ShowTabMsg.
type TabPicker struct {
	picker *core.Picker
	pages  paginator.Model
}

func NewTabPicker(items []core.PickerItem) *TabPicker {
	pages := paginator.New()
	pages.Type = paginator.Dots
	pages.ActiveDot = pickerCursorStyle.Render("•")
	pages.InactiveDot = pickerMetaStyle.Render("○")
	return &TabPicker{picker: core.NewPicker("Go to tab", items), pages: pages}
}

func (s *TabPicker) Title() string { return s.picker.Title() }
func (s *TabPicker) Scope() string { return "screen:picker" }

func (s *TabPicker) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	result := s.picker.HandleKey(keyMsg.String())
	switch result.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		return s, core.ShowTabCmd(result.Item.ID), true
	default:
		return s, nil, false
	}
}

func (s *TabPicker) View(width, height int) string {
	lines := []string{pickerTitleStyle.Render(s.picker.Title())}
	filter := s.picker.Query()
	if filter == "" {
		filter = pickerMetaStyle.Render("(type to filter)")
	}
	lines = append(lines, "Filter: "+filter, "")
	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  No tabs")
	}

	// Title, filter and spacer above; spacer, hint and page dots below.
	s.pages.PerPage = max(1, height-6)
	if s.pages.SetTotalPages(len(items)); len(items) == 0 {
		s.pages.TotalPages = 1
	}
	s.pages.Page = s.picker.Cursor() / s.pages.PerPage
	start, end := s.pages.GetSliceBounds(len(items))
	for idx := start; idx < end; idx++ {
		item := items[idx]
		prefix := "  "
		if idx == s.picker.Cursor() {
			prefix = pickerCursorStyle.Render("> ")
		}
		label := item.Label
		if item.Disabled {
			label = pickerDisabledStyle.Render(label)
		}
		if item.Meta != "" {
			label += " " + pickerMetaStyle.Render(item.Meta)
		}
		lines = append(lines, core.TrimToWidth(prefix+label, width))
	}
	lines = append(lines, "", pickerMetaStyle.Render("Enter show. Esc cancel."))
	if s.pages.TotalPages > 1 {
		lines = append(lines, "  "+s.pages.View())
	}
	return widgets.FitHeight(strings.Join(lines, "\n"), max(6, min(height, len(lines))))
}
