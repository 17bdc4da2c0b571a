package letter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		subject   string
		recipient string
		body      string
		want      FieldErrors
	}{
		{
			name:      "all valid",
			subject:   "Ansøgning",
			recipient: "Borgerservice",
			body:      "Jeg skriver fordi jeg har brug for hjælp.",
			want:      nil,
		},
		{
			name:      "everything missing",
			subject:   "",
			recipient: "",
			body:      "",
			want: FieldErrors{
				FieldSubject:   MsgSubjectRequired,
				FieldRecipient: MsgRecipientRequired,
				FieldBody:      MsgBodyTooShort,
			},
		},
		{
			name:      "whitespace only counts as missing",
			subject:   "   ",
			recipient: "\t",
			body:      "  short  ",
			want: FieldErrors{
				FieldSubject:   MsgSubjectRequired,
				FieldRecipient: MsgRecipientRequired,
				FieldBody:      MsgBodyTooShort,
			},
		},
		{
			name:      "body exactly at the minimum",
			subject:   "Emne",
			recipient: "Kommunen",
			body:      "1234567890",
			want:      nil,
		},
		{
			name:      "body one rune short",
			subject:   "Emne",
			recipient: "Kommunen",
			body:      "123456789",
			want:      FieldErrors{FieldBody: MsgBodyTooShort},
		},
		{
			name:      "multibyte runes counted as runes not bytes",
			subject:   "Заява",
			recipient: "Комуна",
			body:      "дуже довгий опис", // 16 runes
			want:      nil,
		},
		{
			name:      "only the broken field is flagged",
			subject:   "",
			recipient: "Borgerservice",
			body:      "En helt almindelig beskrivelse af sagen.",
			want:      FieldErrors{FieldSubject: MsgSubjectRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.subject, tt.recipient, tt.body)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldErrorsFirst(t *testing.T) {
	assert.Equal(t, FieldSubject, FieldErrors{
		FieldBody:    MsgBodyTooShort,
		FieldSubject: MsgSubjectRequired,
	}.First())
	assert.Equal(t, FieldRecipient, FieldErrors{
		FieldRecipient: MsgRecipientRequired,
		FieldBody:      MsgBodyTooShort,
	}.First())
	assert.Equal(t, Field(""), FieldErrors{}.First())
}
