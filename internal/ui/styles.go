package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Accent is used for ids, paths and other values the user may want
	// to copy.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7"))

	// Muted is used for secondary information and hints.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold is used for table headers and emphasis.
	Bold = lipgloss.NewStyle().Bold(true)

	// Err is used for error messages.
	Err = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E")).Bold(true)
)

// Hint renders secondary text such as "[y/N]" markers.
func Hint(s string) string {
	return Muted.Render(s)
}
