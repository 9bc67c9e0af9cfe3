// Package styles defines the lipgloss styles shared by CLI output
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Title renders board and column headings
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	// ColumnHeader renders a column name with its card count
	ColumnHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	// CardLine renders one card row on a board listing
	CardLine = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	// Subtle renders ids and timestamps
	Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Success renders confirmation messages
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// Error renders failure messages
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
