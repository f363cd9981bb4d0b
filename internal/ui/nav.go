package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderNav draws the nav bar with the active page's indicator. During a
// page transition the whole bar renders dimmed.
func renderNav(active PageID, transitioning bool) string {
	items := make([]string, 0, len(pageOrder))
	for _, p := range pageOrder {
		label := p.Title()
		style := Styles.Inactive
		if p == active {
			label = "• " + label
			style = Styles.Active
		}
		if transitioning {
			style = Styles.Muted
		}
		items = append(items, style.Render(label))
	}
	return strings.Join(items, "   ")
}

// centerOn places content in the middle of the window.
func centerOn(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
