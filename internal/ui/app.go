package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/site"
)

// pageTransitionDelay is the fixed page-switch transition window. The nav
// bar renders dimmed until it elapses.
const pageTransitionDelay = 300 * time.Millisecond

// AppModel is the root model: one active page out of four, plus an overlay
// stack that hosts the contact form modal.
type AppModel struct {
	Site *site.Site

	Active  PageID
	Home    *HomeView
	About   *AboutView
	Resume  *ResumeView
	Contact *ContactView

	Overlays  OverlayStack
	Submitter Submitter

	keys keyMap
	help help.Model

	transitioning bool
	width, height int
}

// NewAppModel creates the root application model.
func NewAppModel(s *site.Site, submitter Submitter) *AppModel {
	return &AppModel{
		Site:      s,
		Active:    PageHome,
		Home:      NewHomeView(s),
		About:     NewAboutView(s),
		Resume:    NewResumeView(s),
		Contact:   NewContactView(s),
		Submitter: submitter,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentPage().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		// Every page keeps its own layout state, so all of them get the size.
		var cmds []tea.Cmd
		for _, p := range pageOrder {
			v, cmd := a.pageView(p).Update(msg)
			a.setPageView(p, v)
			cmds = append(cmds, cmd)
		}
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case transitionDoneMsg:
		a.transitioning = false
		return a, nil

	case PageChangeMsg:
		return a, a.setActive(msg.ID)

	case ShowContactFormMsg:
		if a.contactFormOpen() {
			return a, nil
		}
		modal := NewContactFormModal(a.Submitter)
		a.Overlays.Push(modal)
		return a, modal.Init()

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case tea.MouseMsg:
		// A click outside the modal box dismisses it, like clicking the
		// page behind the overlay.
		if a.Overlays.Len() > 0 && msg.Action == tea.MouseActionPress {
			if top := a.Overlays.Peek(); top != nil && !a.withinCenteredBox(top.View(), msg.X, msg.Y) {
				a.Overlays.Pop()
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		// An open overlay owns key input until dismissed.
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.NextPage):
			return a, a.setActive(a.neighborPage(1))
		case key.Matches(msg, a.keys.PrevPage):
			return a, a.setActive(a.neighborPage(-1))
		case key.Matches(msg, a.keys.Home):
			return a, a.setActive(PageHome)
		case key.Matches(msg, a.keys.About):
			return a, a.setActive(PageAbout)
		case key.Matches(msg, a.keys.Resume):
			return a, a.setActive(PageResume)
		case key.Matches(msg, a.keys.Contact):
			return a, a.setActive(PageContact)
		}
	}

	// Everything else goes to the overlay if open, otherwise the active page.
	// A SubmitResultMsg arriving after the modal was dismissed lands here
	// with an empty stack and is dropped, which is exactly the "only if
	// still open" rule.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	v, cmd := a.currentPage().Update(msg)
	a.setPageView(a.Active, v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top := a.Overlays.Peek(); top != nil {
		return centerOn(a.width, a.height, top.View())
	}
	nav := renderNav(a.Active, a.transitioning)
	body := a.currentPage().View()
	footer := a.help.View(a.keys)
	return lipgloss.NewStyle().Padding(1, 2).Render(nav + "\n\n" + body + "\n" + footer)
}

// setActive switches the active page and starts the transition window.
// Unknown or already-active pages are a silent no-op.
func (a *AppModel) setActive(p PageID) tea.Cmd {
	if !p.known() || p == a.Active {
		return nil
	}
	a.Active = p
	a.transitioning = true
	return tea.Tick(pageTransitionDelay, func(time.Time) tea.Msg {
		return transitionDoneMsg{}
	})
}

// neighborPage returns the page delta steps away in nav order, wrapping.
func (a *AppModel) neighborPage(delta int) PageID {
	idx := 0
	for i, p := range pageOrder {
		if p == a.Active {
			idx = i
			break
		}
	}
	n := len(pageOrder)
	return pageOrder[((idx+delta)%n+n)%n]
}

// contactFormOpen reports whether the contact form modal is on top.
func (a *AppModel) contactFormOpen() bool {
	_, ok := a.Overlays.Peek().(*ContactFormModal)
	return ok
}

// withinCenteredBox reports whether the terminal cell (x, y) falls inside
// content when placed at the center of the window.
func (a *AppModel) withinCenteredBox(content string, x, y int) bool {
	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	x0 := (a.width - w) / 2
	y0 := (a.height - h) / 2
	return x >= x0 && x < x0+w && y >= y0 && y < y0+h
}

func (a *AppModel) currentPage() View {
	return a.pageView(a.Active)
}

func (a *AppModel) pageView(p PageID) View {
	switch p {
	case PageAbout:
		return a.About
	case PageResume:
		return a.Resume
	case PageContact:
		return a.Contact
	default:
		return a.Home
	}
}

func (a *AppModel) setPageView(p PageID, v View) {
	switch p {
	case PageHome:
		if h, ok := v.(*HomeView); ok {
			a.Home = h
		}
	case PageAbout:
		if ab, ok := v.(*AboutView); ok {
			a.About = ab
		}
	case PageResume:
		if r, ok := v.(*ResumeView); ok {
			a.Resume = r
		}
	case PageContact:
		if c, ok := v.(*ContactView); ok {
			a.Contact = c
		}
	}
}
