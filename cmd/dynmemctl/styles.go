package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	accentColor  = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	grewStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// paint renders s in style unless colors are disabled.
func paint(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}
