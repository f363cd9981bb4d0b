package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/site"
)

// HomeView is the landing page: name, tagline, and a pointer at the nav.
type HomeView struct {
	site *site.Site
}

var _ View = (*HomeView)(nil)

// NewHomeView creates the landing page view.
func NewHomeView(s *site.Site) *HomeView {
	return &HomeView{site: s}
}

// Init implements View.
func (v *HomeView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	return v, nil
}

// View implements View.
func (v *HomeView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(v.site.Title) + "\n\n")
	b.WriteString(Styles.Normal.Render(v.site.Tagline) + "\n\n")
	b.WriteString(Styles.Hint.Render(v.site.Profile.Role+" — "+v.site.Profile.Location) + "\n")
	return b.String()
}
