// Package letter holds the domain model and the pure functions of the
// drafting pipeline: validation, output normalization and the offline
// preview template. Nothing in this package performs I/O.
package letter

import (
	"strings"
	"time"
)

// Language is the language of the user's input. The generated letter is
// always Danish; the model translates when the input is something else.
type Language string

const (
	LanguageUkrainian Language = "uk"
	LanguageEnglish   Language = "en"
	LanguageDanish    Language = "da"
)

// Languages returns the supported input languages in display order.
func Languages() []Language {
	return []Language{LanguageUkrainian, LanguageEnglish, LanguageDanish}
}

// Valid reports whether l is one of the supported input languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageUkrainian, LanguageEnglish, LanguageDanish:
		return true
	}
	return false
}

// Tone selects the register of the generated letter. The values are the
// Danish words shown to the user.
type Tone string

const (
	ToneFormal   Tone = "formel"
	ToneNeutral  Tone = "neutral"
	ToneFriendly Tone = "venlig"
)

// Tones returns the supported tones in display order.
func Tones() []Tone {
	return []Tone{ToneFormal, ToneNeutral, ToneFriendly}
}

// Valid reports whether t is a known tone.
func (t Tone) Valid() bool {
	switch t {
	case ToneFormal, ToneNeutral, ToneFriendly:
		return true
	}
	return false
}

// ScenarioCustom is the scenario key for a free-form letter without a preset.
const ScenarioCustom = "custom"

// Draft is the working letter request and its last result.
type Draft struct {
	Language  Language   `json:"language"`
	Tone      Tone       `json:"tone"`
	Scenario  string     `json:"scenario"`
	Subject   string     `json:"subject"`
	Recipient string     `json:"recipient"`
	Body      string     `json:"body"`
	Output    string     `json:"output"`
	SavedAt   *time.Time `json:"saved_at,omitempty"`
}

// NewDraft returns a draft with session-start defaults.
func NewDraft() Draft {
	return Draft{
		Language: LanguageUkrainian,
		Tone:     ToneFormal,
		Scenario: ScenarioCustom,
	}
}

// Empty reports whether the draft carries no user content. Empty drafts are
// never persisted so a reload cannot wipe out a prior session's state.
func (d Draft) Empty() bool {
	return strings.TrimSpace(d.Subject) == "" &&
		strings.TrimSpace(d.Recipient) == "" &&
		strings.TrimSpace(d.Body) == "" &&
		strings.TrimSpace(d.Output) == ""
}

// Profile is the sender identity used to build the signature block.
// All fields are optional; missing ones are simply left out of the letter.
type Profile struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Empty reports whether no profile field is set.
func (p Profile) Empty() bool {
	return strings.TrimSpace(p.Name) == "" &&
		strings.TrimSpace(p.Phone) == "" &&
		strings.TrimSpace(p.Email) == "" &&
		strings.TrimSpace(p.Address) == ""
}

// HistoryItem is an immutable snapshot of one completed letter.
type HistoryItem struct {
	ID        string    `json:"id"`
	Language  Language  `json:"language"`
	Tone      Tone      `json:"tone"`
	Scenario  string    `json:"scenario"`
	Subject   string    `json:"subject"`
	Recipient string    `json:"recipient"`
	Body      string    `json:"body"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot copies the draft's fields into a history item. The ID and
// timestamp are assigned by the history store when the item is added.
func Snapshot(d Draft) HistoryItem {
	return HistoryItem{
		Language:  d.Language,
		Tone:      d.Tone,
		Scenario:  d.Scenario,
		Subject:   d.Subject,
		Recipient: d.Recipient,
		Body:      d.Body,
		Output:    d.Output,
	}
}

// Restore converts a history item back into a draft.
func Restore(it HistoryItem) Draft {
	return Draft{
		Language:  it.Language,
		Tone:      it.Tone,
		Scenario:  it.Scenario,
		Subject:   it.Subject,
		Recipient: it.Recipient,
		Body:      it.Body,
		Output:    it.Output,
	}
}
