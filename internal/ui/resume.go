package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"folio/internal/site"
)

// ResumeView renders the markdown resume in a scrollable viewport.
type ResumeView struct {
	site      *site.Site
	vp        viewport.Model
	width     int
	rendered  bool
	renderErr error
}

var _ View = (*ResumeView)(nil)

// NewResumeView creates the resume page view.
func NewResumeView(s *site.Site) *ResumeView {
	return &ResumeView{site: s, vp: viewport.New(80, 20)}
}

// Init implements View.
func (v *ResumeView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ResumeView) Update(msg tea.Msg) (View, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.width = size.Width
		v.vp.Width = size.Width
		v.vp.Height = size.Height - 6 // nav, title, and footer rows
		if v.vp.Height < 3 {
			v.vp.Height = 3
		}
		v.render()
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// render converts the embedded markdown through glamour at the current width.
func (v *ResumeView) render() {
	width := v.width
	if width <= 0 || width > 100 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		v.renderErr = err
		return
	}
	out, err := r.Render(v.site.ResumeMarkdown)
	if err != nil {
		v.renderErr = err
		return
	}
	v.vp.SetContent(out)
	v.rendered = true
	v.renderErr = nil
}

// View implements View.
func (v *ResumeView) View() string {
	if !v.rendered {
		v.render()
	}
	if v.renderErr != nil {
		return Styles.Danger.Render(fmt.Sprintf("could not render resume: %v", v.renderErr))
	}
	footer := Styles.Hint.Render("↑/↓ scroll — PDF: " + v.site.Assets.ResumePDF)
	return Styles.Title.Render("Resume") + "\n" + v.vp.View() + "\n" + footer
}
