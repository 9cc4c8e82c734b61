package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/twquant/warroom/internal/types"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))

	// Taiwan market convention: red marks gains, green marks losses.
	upStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	downStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// FormatChange colors a change value by direction and adds the arrow marker.
func FormatChange(value string, direction types.QuoteDirection) string {
	switch direction {
	case types.QuoteDirectionUp:
		return upStyle.Render("▲ " + value)
	case types.QuoteDirectionDown:
		return downStyle.Render("▼ " + value)
	default:
		return value
	}
}
