package session

import (
	"errors"
	"strings"

	"adminbuddy/internal/letter"
)

// ErrBusy means a generation request arrived while another model call was
// in flight. Requests are rejected, not queued; at most one call is
// outstanding per session.
var ErrBusy = errors.New("a generation is already in progress")

// ValidationError carries the per-field problems that kept a generation
// from starting. The session stays in Idle; no model call is made.
type ValidationError struct {
	Fields letter.FieldErrors
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range []letter.Field{letter.FieldSubject, letter.FieldRecipient, letter.FieldBody} {
		if m, ok := e.Fields[f]; ok {
			msgs = append(msgs, string(f)+": "+m)
		}
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}
