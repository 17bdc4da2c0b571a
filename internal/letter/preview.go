package letter

import "strings"

// Preview builds a deterministic letter directly from the draft fields and
// the profile, without involving the model. It is the offline "test"
// generation path and always succeeds; missing fields fall back to neutral
// placeholders so the result is still a complete letter.
func Preview(d Draft, profile Profile) string {
	subject := strings.TrimSpace(d.Subject)
	if subject == "" {
		subject = NoSubjectFallback
	}

	recipient := strings.TrimSpace(d.Recipient)
	if recipient == "" {
		recipient = DefaultRecipient
	}

	body := strings.TrimSpace(d.Body)
	if body == "" {
		body = "(beskrivelse…)"
	}

	closing := Valediction
	if d.Tone == ToneFriendly {
		closing = ValedictionWarm
	}

	var b strings.Builder
	b.WriteString(SubjectLabel + " " + subject + "\n\n")
	b.WriteString("Kære " + recipient + ",\n\n")
	b.WriteString(body + "\n\n")
	b.WriteString(closing + "\n")
	b.WriteString(strings.Join(signatureLines(profile), "\n"))
	return b.String()
}
