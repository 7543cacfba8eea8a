package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Selected lipgloss.Color
}{
	Primary:  lipgloss.Color("#6C5CE7"), // Purple
	Muted:    lipgloss.Color("#636E72"), // Gray
	Error:    lipgloss.Color("#D63031"), // Red
	Success:  lipgloss.Color("#00B894"), // Green
	Warning:  lipgloss.Color("#FDCB6E"), // Yellow
	Selected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary)

	elapsedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Success)

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning)

	selectedStyle = lipgloss.NewStyle().
			Foreground(Colors.Selected)

	mutedStyle = lipgloss.NewStyle().
			Foreground(Colors.Muted)

	errorStyle = lipgloss.NewStyle().
			Foreground(Colors.Error)
)
