package tui

import "github.com/charmbracelet/lipgloss"

var (
	// HeaderStyle styles the title and column header rows.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	statusStyles = map[string]lipgloss.Style{
		"ok":            lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"found":         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"probing":       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"missing":       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"not found":     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"indeterminate": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"pending":       lipgloss.NewStyle().Faint(true),
	}
)

// StatusStyle returns the lipgloss style for the given status string.
func StatusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
