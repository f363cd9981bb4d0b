package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - active nav item, borders
	ColorDanger    = "196" // Red - errors
	ColorSuccess   = "78"  // Green - success status
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used across pages and the modal.
var Styles = struct {
	Title     lipgloss.Style // Bold accent - page titles
	Box       lipgloss.Style // Modal box (highlight border)
	Active    lipgloss.Style // Active nav item
	Inactive  lipgloss.Style // Inactive nav items
	Muted     lipgloss.Style // Dimmed text
	Normal    lipgloss.Style // Normal text
	Hint      lipgloss.Style // Help/hint text
	Success   lipgloss.Style // Success status line
	Danger    lipgloss.Style // Error status line
	Label     lipgloss.Style // Form field labels
	Button    lipgloss.Style // Submit button, idle
	ButtonOff lipgloss.Style // Submit button, disabled
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Active: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)).
		Underline(true),
	Inactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Danger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	ButtonOff: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
}
