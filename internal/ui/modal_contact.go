package ui

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/relay"
)

// autoCloseDelay is how long the success message stays visible before the
// modal closes itself.
const autoCloseDelay = 2 * time.Second

// Submitter sends a contact-form submission. *relay.Client implements it.
type Submitter interface {
	Submit(ctx context.Context, sub relay.Submission) error
}

type formState int

const (
	formEditing formState = iota
	formSending
	formSent
	formFailed
)

// Focus slots, top to bottom.
const (
	focusName = iota
	focusEmail
	focusMessage
	focusSubmit
	focusSlots
)

// modalSeq distinguishes modal instances so a stale auto-close timer from a
// dismissed modal cannot close a freshly opened one.
var modalSeq atomic.Int64

// ContactFormModal hosts the contact form: three required fields, a submit
// control, and the sending/sent/failed status line.
type ContactFormModal struct {
	id        int
	submitter Submitter

	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int

	state   formState
	status  string
	spinner spinner.Model
}

var _ View = (*ContactFormModal)(nil)

// NewContactFormModal creates the form with the name field focused.
func NewContactFormModal(submitter Submitter) *ContactFormModal {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Width = 40

	message := textarea.New()
	message.Placeholder = "What's on your mind?"
	message.SetWidth(44)
	message.SetHeight(5)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &ContactFormModal{
		id:        int(modalSeq.Add(1)),
		submitter: submitter,
		name:      name,
		email:     email,
		message:   message,
		focus:     focusName,
		state:     formEditing,
		spinner:   sp,
	}
}

// Init implements View.
func (m *ContactFormModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *ContactFormModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state == formSending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case SubmitResultMsg:
		if msg.ModalID != m.id || m.state != formSending {
			return m, nil
		}
		if msg.Err != nil {
			// Fields are kept so the user can resubmit as-is.
			m.state = formFailed
			m.status = relay.FailureMessage
			return m, nil
		}
		m.state = formSent
		m.status = relay.SuccessMessage
		m.name.SetValue("")
		m.email.SetValue("")
		m.message.SetValue("")
		id := m.id
		return m, tea.Tick(autoCloseDelay, func(time.Time) tea.Msg {
			return autoCloseMsg{ModalID: id}
		})

	case autoCloseMsg:
		if msg.ModalID == m.id && m.state == formSent {
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "tab":
			m.setFocus((m.focus + 1) % focusSlots)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + focusSlots - 1) % focusSlots)
			return m, nil
		case "enter":
			switch m.focus {
			case focusName, focusEmail:
				m.setFocus(m.focus + 1)
				return m, nil
			case focusSubmit:
				return m, m.submit()
			}
			// Enter inside the message area inserts a newline; fall through.
		}
		return m, m.updateFocused(msg)
	}

	return m, m.updateFocused(msg)
}

// submit validates and kicks off the relay call. While a call is in flight
// further submits are ignored, so a second activation cannot double-send.
func (m *ContactFormModal) submit() tea.Cmd {
	if m.state == formSending {
		return nil
	}
	sub := relay.Submission{
		Name:    m.name.Value(),
		Email:   m.email.Value(),
		Message: m.message.Value(),
	}
	if err := sub.Validate(); err != nil {
		m.state = formEditing
		m.status = validationHint(err)
		return nil
	}
	m.state = formSending
	m.status = ""
	id := m.id
	submitter := m.submitter
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return SubmitResultMsg{ModalID: id, Err: submitter.Submit(context.Background(), sub)}
		},
	)
}

// validationHint turns a validation error into the inline hint shown under
// the form.
func validationHint(err error) string {
	return strings.TrimPrefix(err.Error(), relay.ErrInvalid.Error()+": ")
}

// setFocus moves focus to the given slot, blurring everything else.
func (m *ContactFormModal) setFocus(slot int) {
	m.focus = slot
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
	switch slot {
	case focusName:
		m.name.Focus()
	case focusEmail:
		m.email.Focus()
	case focusMessage:
		m.message.Focus()
	}
}

// updateFocused routes a message to whichever field has focus.
func (m *ContactFormModal) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
	case focusMessage:
		m.message, cmd = m.message.Update(msg)
	}
	return cmd
}

// View implements View.
func (m *ContactFormModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Send a message") + "\n\n")
	b.WriteString(Styles.Label.Render("Name") + "\n" + m.name.View() + "\n\n")
	b.WriteString(Styles.Label.Render("Email") + "\n" + m.email.View() + "\n\n")
	b.WriteString(Styles.Label.Render("Message") + "\n" + m.message.View() + "\n\n")

	switch m.state {
	case formSending:
		b.WriteString(Styles.ButtonOff.Render("Sending…") + " " + m.spinner.View())
	default:
		button := Styles.Button
		if m.focus != focusSubmit {
			button = Styles.ButtonOff
		}
		b.WriteString(button.Render("Send message"))
	}

	if m.status != "" {
		style := Styles.Danger
		if m.state == formSent {
			style = Styles.Success
		}
		b.WriteString("\n\n" + style.Render(m.status))
	}

	b.WriteString("\n\n" + Styles.Hint.Render("tab: next field  enter: send  esc: close"))
	return Styles.Box.Render(b.String())
}
