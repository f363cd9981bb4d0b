package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"folio/internal/relay"
)

// stubSubmitter records submissions and returns a canned result.
type stubSubmitter struct {
	err   error
	calls int
	last  relay.Submission
}

func (s *stubSubmitter) Submit(ctx context.Context, sub relay.Submission) error {
	s.calls++
	s.last = sub
	return s.err
}

// collectMsgs executes a cmd, flattening batches into the produced msgs.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// fill populates the form with the example valid input.
func fill(m *ContactFormModal) {
	m.name.SetValue("Test User")
	m.email.SetValue("test@example.com")
	m.message.SetValue("Hello")
}

// pressSend focuses the submit control and activates it, returning the cmd.
func pressSend(m *ContactFormModal) tea.Cmd {
	m.setFocus(focusSubmit)
	_, cmd := m.Update(keyMsg("enter"))
	return cmd
}

// deliverResult runs the submit cmd and feeds the resulting SubmitResultMsg
// back into the modal, returning the follow-up cmd.
func deliverResult(t *testing.T, m *ContactFormModal, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		if res, ok := msg.(SubmitResultMsg); ok {
			_, next := m.Update(res)
			return next
		}
	}
	t.Fatal("submit cmd produced no SubmitResultMsg")
	return nil
}

func TestSubmit_SuccessClearsFieldsAndAutoCloses(t *testing.T) {
	stub := &stubSubmitter{}
	m := NewContactFormModal(stub)
	fill(m)

	cmd := pressSend(m)
	if m.state != formSending {
		t.Fatalf("expected sending state, got %v", m.state)
	}

	next := deliverResult(t, m, cmd)
	if stub.calls != 1 {
		t.Fatalf("expected 1 relay call, got %d", stub.calls)
	}
	if stub.last != (relay.Submission{Name: "Test User", Email: "test@example.com", Message: "Hello"}) {
		t.Errorf("unexpected submission payload: %+v", stub.last)
	}
	if m.state != formSent {
		t.Fatalf("expected sent state, got %v", m.state)
	}
	if m.status != relay.SuccessMessage {
		t.Errorf("expected success text %q, got %q", relay.SuccessMessage, m.status)
	}
	if m.name.Value() != "" || m.email.Value() != "" || m.message.Value() != "" {
		t.Error("expected fields cleared after success")
	}
	if next == nil {
		t.Fatal("expected auto-close timer after success")
	}

	// The timer fires: the modal asks to be dismissed.
	_, closeCmd := m.Update(autoCloseMsg{ModalID: m.id})
	if closeCmd == nil {
		t.Fatal("expected dismiss cmd from auto-close")
	}
	if _, ok := closeCmd().(DismissModalMsg); !ok {
		t.Error("expected DismissModalMsg from auto-close")
	}
}

func TestSubmit_FailureKeepsFields(t *testing.T) {
	stub := &stubSubmitter{err: &relay.StatusError{Code: http.StatusInternalServerError}}
	m := NewContactFormModal(stub)
	fill(m)

	cmd := pressSend(m)
	deliverResult(t, m, cmd)

	if m.state != formFailed {
		t.Fatalf("expected failed state, got %v", m.state)
	}
	if m.status != relay.FailureMessage {
		t.Errorf("expected error text %q, got %q", relay.FailureMessage, m.status)
	}
	if m.name.Value() != "Test User" || m.email.Value() != "test@example.com" || m.message.Value() != "Hello" {
		t.Error("expected fields retained after failure")
	}

	// Failure never auto-closes.
	_, closeCmd := m.Update(autoCloseMsg{ModalID: m.id})
	if closeCmd != nil {
		t.Error("expected no auto-close after failure")
	}

	// The form is resubmittable as-is.
	if cmd := pressSend(m); cmd == nil {
		t.Error("expected resubmission to start a new attempt")
	}
}

func TestSubmit_MissingFieldNeverCallsRelay(t *testing.T) {
	stub := &stubSubmitter{}
	m := NewContactFormModal(stub)
	m.name.SetValue("Test User")
	m.message.SetValue("Hello")
	// Email left empty.

	cmd := pressSend(m)
	if cmd != nil {
		t.Error("expected no cmd for invalid input")
	}
	if stub.calls != 0 {
		t.Errorf("expected no relay call for invalid input, got %d", stub.calls)
	}
	if m.state != formEditing {
		t.Errorf("expected form to stay editable, got %v", m.state)
	}
	if m.status == "" {
		t.Error("expected an inline validation hint")
	}
}

func TestSubmit_InFlightGuard(t *testing.T) {
	stub := &stubSubmitter{}
	m := NewContactFormModal(stub)
	fill(m)
	m.state = formSending

	if cmd := m.submit(); cmd != nil {
		t.Error("expected submit to be ignored while a request is in flight")
	}
	if stub.calls != 0 {
		t.Errorf("expected no relay call while in flight, got %d", stub.calls)
	}
}

func TestSubmit_StaleResultIgnored(t *testing.T) {
	m := NewContactFormModal(&stubSubmitter{})
	fill(m)
	m.state = formSending

	m.Update(SubmitResultMsg{ModalID: m.id - 1, Err: nil})
	if m.state != formSending {
		t.Error("result for a different modal instance must be ignored")
	}

	// Stale auto-close from a previous modal likewise does nothing.
	_, cmd := m.Update(autoCloseMsg{ModalID: m.id - 1})
	if cmd != nil {
		t.Error("stale auto-close must be ignored")
	}
}

func TestSubmit_ThroughRelayClient(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := relay.NewClient(srv.URL, zerolog.Nop())

	m := NewContactFormModal(client)
	fill(m)
	deliverResult(t, m, pressSend(m))
	if m.status != relay.SuccessMessage {
		t.Errorf("expected success text via real client, got %q", m.status)
	}

	status = http.StatusInternalServerError
	m2 := NewContactFormModal(client)
	fill(m2)
	deliverResult(t, m2, pressSend(m2))
	if m2.status != relay.FailureMessage {
		t.Errorf("expected failure text via real client, got %q", m2.status)
	}
}
