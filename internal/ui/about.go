package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/site"
)

// AboutView shows the bio and external profile links.
type AboutView struct {
	site *site.Site
}

var _ View = (*AboutView)(nil)

// NewAboutView creates the about page view.
func NewAboutView(s *site.Site) *AboutView {
	return &AboutView{site: s}
}

// Init implements View.
func (v *AboutView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *AboutView) Update(msg tea.Msg) (View, tea.Cmd) {
	return v, nil
}

// View implements View.
func (v *AboutView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("About") + "\n\n")
	b.WriteString(Styles.Normal.Render(strings.TrimSpace(v.site.Profile.Bio)) + "\n\n")
	for _, l := range v.site.Links {
		b.WriteString(Styles.Label.Render(l.Label+": ") + Styles.Muted.Render(l.URL) + "\n")
	}
	return b.String()
}
