package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/site"
)

// ContactView is the contact page. Enter opens the message form modal.
type ContactView struct {
	site *site.Site
}

var _ View = (*ContactView)(nil)

// NewContactView creates the contact page view.
func NewContactView(s *site.Site) *ContactView {
	return &ContactView{site: s}
}

// Init implements View.
func (v *ContactView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ContactView) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return v, func() tea.Msg { return ShowContactFormMsg{} }
	}
	return v, nil
}

// View implements View.
func (v *ContactView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Contact") + "\n\n")
	b.WriteString(Styles.Normal.Render("Want to talk? Send me a message.") + "\n\n")
	b.WriteString(Styles.Label.Render("Email: ") + Styles.Muted.Render(v.site.Profile.Email) + "\n\n")
	b.WriteString(Styles.Hint.Render("enter: open message form") + "\n")
	return b.String()
}
