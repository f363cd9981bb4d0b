package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/site"
)

// keyMsg builds a tea.KeyMsg for the given key name.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testSite() *site.Site {
	return &site.Site{
		Title:   "Pete Hollis",
		Tagline: "Software engineer.",
		Profile: site.Profile{
			Name:     "Pete Hollis",
			Role:     "Software Engineer",
			Location: "Portland, OR",
			Email:    "pete@example.com",
			Bio:      "Bio text.",
		},
		Assets:         site.Assets{ResumePDF: "pete-resume.pdf"},
		RelayURL:       "http://relay.invalid",
		ResumeMarkdown: "# Resume\n\nSome experience.\n",
	}
}

func newTestApp() (*AppModel, *appModelAdapter) {
	a := NewAppModel(testSite(), &stubSubmitter{})
	a.width, a.height = 100, 40
	return a, &appModelAdapter{AppModel: a}
}

func TestPageSwitch_ActivatesRequestedPage(t *testing.T) {
	a, adapter := newTestApp()

	_, cmd := adapter.Update(PageChangeMsg{ID: PageAbout})
	if a.Active != PageAbout {
		t.Fatalf("expected active page %v, got %v", PageAbout, a.Active)
	}
	if !a.transitioning {
		t.Error("expected transition flag set after page switch")
	}
	if cmd == nil {
		t.Error("expected transition timer cmd after page switch")
	}

	adapter.Update(transitionDoneMsg{})
	if a.transitioning {
		t.Error("expected transition flag cleared after transitionDoneMsg")
	}
}

func TestPageSwitch_UnknownPageIsNoOp(t *testing.T) {
	a, adapter := newTestApp()

	_, cmd := adapter.Update(PageChangeMsg{ID: PageID(42)})
	if a.Active != PageHome {
		t.Errorf("expected active page unchanged, got %v", a.Active)
	}
	if a.transitioning {
		t.Error("unknown page must not start a transition")
	}
	if cmd != nil {
		t.Error("unknown page must not produce a cmd")
	}
}

func TestPageSwitch_SamePageIsNoOp(t *testing.T) {
	a, adapter := newTestApp()

	_, cmd := adapter.Update(PageChangeMsg{ID: PageHome})
	if cmd != nil {
		t.Error("switching to the already-active page must not produce a cmd")
	}
	if a.transitioning {
		t.Error("switching to the already-active page must not start a transition")
	}
}

func TestContactForm_OpensOnlyOnce(t *testing.T) {
	a, adapter := newTestApp()

	adapter.Update(ShowContactFormMsg{})
	if a.Overlays.Len() != 1 {
		t.Fatalf("expected 1 overlay after opening form, got %d", a.Overlays.Len())
	}
	first, ok := a.Overlays.Peek().(*ContactFormModal)
	if !ok {
		t.Fatalf("expected ContactFormModal on overlay, got %T", a.Overlays.Peek())
	}

	// Opening again without closing must not stack a second form.
	adapter.Update(ShowContactFormMsg{})
	if a.Overlays.Len() != 1 {
		t.Fatalf("expected 1 overlay after reopening, got %d", a.Overlays.Len())
	}
	if a.Overlays.Peek() != View(first) {
		t.Error("reopening must keep the original modal instance")
	}

	// A single Esc closes it; there is no second registered handler to fire.
	_, cmd := adapter.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("expected dismiss cmd from esc")
	}
	adapter.Update(cmd())
	if a.Overlays.Len() != 0 {
		t.Fatalf("expected 0 overlays after esc, got %d", a.Overlays.Len())
	}
}

func TestContactForm_EscWhenClosedIsNoOp(t *testing.T) {
	a, adapter := newTestApp()

	_, cmd := adapter.Update(keyMsg("esc"))
	if a.Overlays.Len() != 0 {
		t.Error("esc with no modal open must not create overlays")
	}
	if cmd != nil {
		if _, ok := cmd().(DismissModalMsg); ok {
			t.Error("esc with no modal open must not dismiss anything")
		}
	}
	// A stray dismiss with an empty stack is also harmless.
	adapter.Update(DismissModalMsg{})
	if a.Overlays.Len() != 0 {
		t.Error("dismiss with empty stack must stay empty")
	}
}

func TestContactForm_OutsideClickDismisses(t *testing.T) {
	a, adapter := newTestApp()
	adapter.Update(ShowContactFormMsg{})

	click := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	adapter.Update(click)
	if a.Overlays.Len() != 0 {
		t.Fatalf("expected modal dismissed by outside click, got %d overlays", a.Overlays.Len())
	}

	// Clicking with the modal closed is a no-op.
	adapter.Update(click)
	if a.Overlays.Len() != 0 {
		t.Error("click with no modal open must not create overlays")
	}
}

func TestContactForm_InsideClickKeepsModal(t *testing.T) {
	a, adapter := newTestApp()
	adapter.Update(ShowContactFormMsg{})

	click := tea.MouseMsg{X: a.width / 2, Y: a.height / 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	adapter.Update(click)
	if a.Overlays.Len() != 1 {
		t.Fatalf("expected modal to stay open on inside click, got %d overlays", a.Overlays.Len())
	}
}

func TestContactForm_OwnsKeysWhileOpen(t *testing.T) {
	a, adapter := newTestApp()
	adapter.Update(ShowContactFormMsg{})
	modal := a.Overlays.Peek().(*ContactFormModal)

	// "q" quits the app when no modal is open; with the form open it has to
	// land in the focused name field instead.
	_, cmd := adapter.Update(keyMsg("q"))
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("q while modal open must not quit the app")
		}
	}
	if got := modal.name.Value(); got != "q" {
		t.Errorf("expected name field to receive the key, got %q", got)
	}
}

func TestContactPage_EnterOpensForm(t *testing.T) {
	a, adapter := newTestApp()
	adapter.Update(PageChangeMsg{ID: PageContact})

	_, cmd := adapter.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected cmd from enter on contact page")
	}
	adapter.Update(cmd())
	if a.Overlays.Len() != 1 {
		t.Fatalf("expected contact form opened, got %d overlays", a.Overlays.Len())
	}
}

func TestNav_NeighborWraps(t *testing.T) {
	a, _ := newTestApp()

	if got := a.neighborPage(-1); got != PageContact {
		t.Errorf("expected prev from home to wrap to contact, got %v", got)
	}
	a.Active = PageContact
	if got := a.neighborPage(1); got != PageHome {
		t.Errorf("expected next from contact to wrap to home, got %v", got)
	}
}
