package letter

import (
	"regexp"
	"strings"
)

// Canonical pieces of a Danish letter. The prompt instructs the model to use
// exactly these; Normalize repairs output that does not.
const (
	SubjectLabel      = "Emne:"
	NamePlaceholder   = "[Dit navn]"
	Valediction       = "Med venlig hilsen"
	ValedictionWarm   = "De bedste hilsner"
	NoSubjectFallback = "(uden emne)"
	DefaultRecipient  = "modtager"
)

// roleLabels are chat-transcript prefixes some models echo in front of the
// letter. Any line starting with one of these is dropped.
var roleLabels = []string{"assistant:", "user:"}

// scaffoldLabels are the field labels used inside the prompt itself. A line
// starting with one of these is prompt leakage, not letter content.
// Vendors differ in transcript formatting, so NormalizeOptions can extend
// the set; this default covers the labels our own prompt uses.
var scaffoldLabels = []string{"subject:", "recipient:", "body:", "modtager:"}

// valedictions are closing phrases accepted as "the letter already ends
// properly". Checked case-insensitively.
var valedictions = []string{
	"venlig hilsen", // covers "Med venlig hilsen" too
	"de bedste hilsner",
	"mange hilsner",
}

var subjectLinePattern = regexp.MustCompile(`(?i)^\s*emne\s*:`)

// NormalizeOptions tunes the cleanup pass. The zero value gives the
// canonical behavior.
type NormalizeOptions struct {
	// ExtraLabels are additional line prefixes (lower-case, with trailing
	// colon) stripped alongside the built-in scaffold labels.
	ExtraLabels []string
}

// Normalize cleans raw model output into the canonical letter shape and
// merges the sender profile into the signature block. It is deterministic,
// performs no I/O, and is idempotent on already-canonical text.
//
// The step order matters; each step guards against a specific model failure
// mode: echoed chat transcripts, leaked prompt scaffolding, a missing
// subject line, and a missing closing.
func Normalize(raw, fallbackSubject string, profile Profile) string {
	return NormalizeWith(raw, fallbackSubject, profile, NormalizeOptions{})
}

// NormalizeWith is Normalize with an adjustable strip-label set.
func NormalizeWith(raw, fallbackSubject string, profile Profile, opts NormalizeOptions) string {
	drop := make([]string, 0, len(roleLabels)+len(scaffoldLabels)+len(opts.ExtraLabels))
	drop = append(drop, roleLabels...)
	drop = append(drop, scaffoldLabels...)
	drop = append(drop, opts.ExtraLabels...)

	// 1+2. Drop role-label and scaffold-label lines.
	kept := make([]string, 0, 16)
	for _, line := range strings.Split(raw, "\n") {
		if startsWithAny(line, drop) {
			continue
		}
		kept = append(kept, line)
	}

	// 3. Trim surrounding whitespace.
	text := strings.TrimSpace(strings.Join(kept, "\n"))

	// 4. Guarantee a subject line.
	if !subjectLinePattern.MatchString(text) {
		subject := strings.TrimSpace(fallbackSubject)
		if subject == "" {
			subject = NoSubjectFallback
		}
		text = SubjectLabel + " " + subject + "\n\n" + text
		text = strings.TrimSpace(text)
	}

	// 5. Guarantee a closing valediction and a signature placeholder.
	if !containsValediction(text) {
		text += "\n\n" + Valediction + "\n" + NamePlaceholder
	}

	// 6+7. Merge the profile into the signature block. The placeholder line
	// marks where the signature starts; everything after it is signature
	// material and is rebuilt, which keeps the pass idempotent when the
	// name is not configured.
	if idx := strings.LastIndex(text, NamePlaceholder); idx >= 0 {
		text = strings.TrimRight(text[:idx], " \t") + strings.Join(signatureLines(profile), "\n")
	}

	return text
}

// signatureLines renders the signature block: the sender name (or the
// placeholder when none is configured, so the user can see it is missing),
// then any of phone, email and address that are set, one per line.
func signatureLines(p Profile) []string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = NamePlaceholder
	}
	lines := []string{name}
	for _, extra := range []string{p.Phone, p.Email, p.Address} {
		if v := strings.TrimSpace(extra); v != "" {
			lines = append(lines, v)
		}
	}
	return lines
}

func startsWithAny(line string, prefixes []string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	for _, p := range prefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

func containsValediction(text string) bool {
	lower := strings.ToLower(text)
	for _, v := range valedictions {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}
