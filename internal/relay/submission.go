package relay

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalid is wrapped by all validation failures, so callers can
// distinguish "never sent" from "sent and failed".
var ErrInvalid = errors.New("invalid submission")

// emailPattern is the basic shape check browsers apply to input[type=email]:
// something, an @, something, a dot, something. Not RFC 5322 and doesn't
// try to be.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Submission is the ephemeral contact-form payload. It is read at submit
// time and discarded once the relay call resolves.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Validate fails fast on empty required fields or a malformed email.
func (s Submission) Validate() error {
	for field, value := range map[string]string{
		"name":    s.Name,
		"email":   s.Email,
		"message": s.Message,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalid, field)
		}
	}
	if !emailPattern.MatchString(strings.TrimSpace(s.Email)) {
		return fmt.Errorf("%w: email address is malformed", ErrInvalid)
	}
	return nil
}
