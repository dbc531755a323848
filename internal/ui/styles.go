package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskqueue/taskqueue-go/models"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)
)

// StatusStyle returns the style used to render a task status.
func StatusStyle(status models.TaskStatus) lipgloss.Style {
	switch status {
	case models.StatusCompleted, models.StatusFinalized:
		return StyleSuccess
	case models.StatusFailed:
		return StyleError
	case models.StatusCancelled:
		return StyleWarning
	case models.StatusRunning:
		return StyleTitle
	default:
		return StyleSubtle
	}
}
