package ui

// PageChangeMsg requests switching the active page. Unknown IDs are ignored.
type PageChangeMsg struct {
	ID PageID
}

// ShowContactFormMsg opens the contact form modal. A no-op if the form is
// already open.
type ShowContactFormMsg struct{}

// DismissModalMsg closes the topmost overlay.
type DismissModalMsg struct{}

// SubmitResultMsg carries the outcome of a form-relay attempt back to the
// contact form. Err is nil on success; a *relay.StatusError for a rejected
// submission; any other error for a transport failure.
type SubmitResultMsg struct {
	ModalID int
	Err     error
}

// autoCloseMsg fires after the post-success delay and closes the contact
// modal if it is still the one that submitted.
type autoCloseMsg struct {
	ModalID int
}

// transitionDoneMsg clears the page-transition flag after the fixed delay.
type transitionDoneMsg struct{}
