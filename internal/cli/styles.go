package cli

import "github.com/charmbracelet/lipgloss"

// Styles for the list commands. Kept here so every command renders the same
// way.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	FinishedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	PendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)
