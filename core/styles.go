package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorMantle).
			Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerInfoStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorMantle)
	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)
	headerFocusStyle = lipgloss.NewStyle().
				Foreground(colorPeach).
				Background(colorMantle).
				Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
