package letter

import (
	"strings"
	"unicode/utf8"
)

// Field identifies a form field in validation results.
type Field string

const (
	FieldSubject   Field = "subject"
	FieldRecipient Field = "recipient"
	FieldBody      Field = "body"
)

// fieldOrder is the on-screen order, used to pick the field that receives
// focus after a failed validation.
var fieldOrder = []Field{FieldSubject, FieldRecipient, FieldBody}

// MinBodyLength is the minimum trimmed length of the description, in runes.
const MinBodyLength = 10

// Validation messages. These double as i18n message keys; a field with no
// problem is absent from the result.
const (
	MsgSubjectRequired   = "subject required"
	MsgRecipientRequired = "recipient required"
	MsgBodyTooShort      = "description too short"
)

// FieldErrors maps an invalid field to its message. An empty map means the
// input is valid; a field is never present with an empty message.
type FieldErrors map[Field]string

// First returns the first invalid field in on-screen order, so callers can
// move focus to it. Returns "" when there are no errors.
func (e FieldErrors) First() Field {
	for _, f := range fieldOrder {
		if _, ok := e[f]; ok {
			return f
		}
	}
	return ""
}

// Validate checks the three generation inputs. It flags exactly the stated
// rules and nothing else: empty subject, empty recipient, and a description
// shorter than MinBodyLength runes after trimming.
func Validate(subject, recipient, body string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(subject) == "" {
		errs[FieldSubject] = MsgSubjectRequired
	}
	if strings.TrimSpace(recipient) == "" {
		errs[FieldRecipient] = MsgRecipientRequired
	}
	if utf8.RuneCountInString(strings.TrimSpace(body)) < MinBodyLength {
		errs[FieldBody] = MsgBodyTooShort
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
