// Package prompt assembles the instruction payload for the local model.
//
// The split is deliberate: the rules live in the system instructions, which
// the model runtime can cache and reuse across calls, while the user
// instructions carry only data, so user input is never interpreted as
// instructions.
package prompt

import (
	"fmt"
	"strings"

	"adminbuddy/internal/letter"
)

// Params are the inputs to Build. ScenarioTitle is optional; when set it is
// added as a one-line annotation so the model knows the letter's occasion.
type Params struct {
	Tone          letter.Tone
	Language      letter.Language
	ScenarioTitle string
	Subject       string
	Recipient     string
	Body          string
}

// Prompt is the assembled payload: fixed rules and per-request data.
type Prompt struct {
	System string
	User   string
}

// toneDirective returns the Danish phrasing for each tone. Unknown tones
// fall back to neutral.
func toneDirective(t letter.Tone) string {
	switch t {
	case letter.ToneFormal:
		return "formelt og kortfattet"
	case letter.ToneFriendly:
		return "venligt og imødekommende"
	default:
		return "neutralt og professionelt"
	}
}

// Build assembles the system and user instructions for one generation.
//
// The system instructions pin the exact output shape (subject line,
// salutation, 2–5 short paragraphs, valediction, signature placeholder) and
// forbid the model from echoing role labels or the literal field-label
// words used below, so prompt scaffolding cannot leak into the letter.
func Build(p Params) Prompt {
	system := strings.Join([]string{
		"Du er en assistent, der skriver officielle breve på DANSK.",
		fmt.Sprintf("Skriv %s. Brug KUN oplysninger fra brugerens input.", toneDirective(p.Tone)),
		"SVAR KUN med selve brevet – ingen forklaringer, ingen roller (Assistant/User), ingen markdown.",
		"FORMAT (præcis linjestruktur):",
		letter.SubjectLabel + " (kort emne)",
		"Kære [modtager],",
		"(2–5 korte afsnit med klare sætninger)",
		letter.Valediction,
		letter.NamePlaceholder,
		"Forbudt at bruge 'Subject:', 'Recipient:', 'Body:' osv.",
	}, "\n")

	lines := make([]string, 0, 8)
	if p.Language == letter.LanguageDanish {
		lines = append(lines, "Input language: da.")
	} else {
		lines = append(lines, fmt.Sprintf(
			"Input language: %s. Hvis input ikke er på dansk, oversæt men bevar betydning.", p.Language))
	}
	if title := strings.TrimSpace(p.ScenarioTitle); title != "" {
		lines = append(lines, "Scenarie: "+title)
	}
	lines = append(lines,
		"Subject: "+p.Subject,
		"Recipient: "+p.Recipient,
		"Body:",
		p.Body,
		"Returnér KUN det endelige brev i formatet ovenfor.",
	)

	return Prompt{System: system, User: strings.Join(lines, "\n")}
}
