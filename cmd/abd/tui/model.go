// Package tui is the interactive generator: a two-pane form-and-preview
// interface over the drafting session.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"adminbuddy/cmd/abd/ui"
	"adminbuddy/internal/engine"
	"adminbuddy/internal/i18n"
	"adminbuddy/internal/letter"
	"adminbuddy/internal/session"
)

// viewMode determines which page is active.
type viewMode int

const (
	formView viewMode = iota
	historyView
	profileView
)

// focusArea is the focused form element, cycled with tab.
type focusArea int

const (
	focusLanguage focusArea = iota
	focusTone
	focusScenario
	focusSubject
	focusRecipient
	focusBody
	focusCount
)

// Messages delivered from outside the update loop.
type (
	// engineStatusMsg arrives from the session's status watcher.
	engineStatusMsg struct{ status engine.Status }
	// generateDoneMsg carries a finished letter.
	generateDoneMsg struct{ output string }
	// generateFailedMsg carries any generation error.
	generateFailedMsg struct{ err error }
)

// historyItem adapts a letter.HistoryItem to bubbles/list.
type historyItem struct {
	item letter.HistoryItem
}

func (h historyItem) Title() string { return h.item.Subject }
func (h historyItem) Description() string {
	return h.item.CreatedAt.Format("2006-01-02 15:04") + " · " + h.item.Recipient
}
func (h historyItem) FilterValue() string { return h.item.Subject + " " + h.item.Recipient }

// Model is the bubbletea model for the generator.
type Model struct {
	sess   *session.Session
	loc    *goi18n.Localizer
	styles ui.Styles

	width  int
	height int
	mode   viewMode
	focus  focusArea

	// Selector positions.
	langIdx     int
	toneIdx     int
	scenarioIdx int
	scenarios   []string // ScenarioCustom first, then preset keys

	subject   textinput.Model
	recipient textinput.Model
	body      textarea.Model
	preview   viewport.Model

	load progress.Model
	spin spinner.Model

	status    engine.Status
	busy      bool
	notice    string
	noticeErr bool
	fieldErrs letter.FieldErrors

	historyList list.Model

	profileInputs []textinput.Model
	profileFocus  int

	ready bool
}

// New builds the model from the session's current draft and profile.
func New(sess *session.Session, loc *goi18n.Localizer) Model {
	styles := ui.DefaultStyles()
	d := sess.Draft()

	subject := textinput.New()
	subject.CharLimit = 200
	subject.SetValue(d.Subject)

	recipient := textinput.New()
	recipient.CharLimit = 200
	recipient.SetValue(d.Recipient)

	body := textarea.New()
	body.CharLimit = 4000
	body.SetValue(d.Body)
	body.ShowLineNumbers = false

	preview := viewport.New(0, 0)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	scenarios := []string{letter.ScenarioCustom}
	for _, p := range letter.Presets() {
		scenarios = append(scenarios, p.Key)
	}

	hl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	hl.Title = i18n.T(loc, "history_title")
	hl.SetShowHelp(false)
	hl.SetFilteringEnabled(false)

	profileInputs := make([]textinput.Model, 4)
	p := sess.Profile()
	for i, v := range []string{p.Name, p.Phone, p.Email, p.Address} {
		in := textinput.New()
		in.CharLimit = 200
		in.SetValue(v)
		profileInputs[i] = in
	}

	m := Model{
		sess:          sess,
		loc:           loc,
		styles:        styles,
		focus:         focusSubject,
		langIdx:       indexOfLanguage(d.Language),
		toneIdx:       indexOfTone(d.Tone),
		scenarioIdx:   indexOfString(scenarios, d.Scenario),
		scenarios:     scenarios,
		subject:       subject,
		recipient:     recipient,
		body:          body,
		preview:       preview,
		load:          progress.New(progress.WithDefaultGradient()),
		spin:          sp,
		status:        sess.EngineStatus(),
		historyList:   hl,
		profileInputs: profileInputs,
	}
	m.applyFocus()
	if d.Output != "" {
		m.preview.SetContent(d.Output)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

// Run starts the interactive program and wires the session's status
// watcher into it. It blocks until the user quits.
func Run(sess *session.Session, loc *goi18n.Localizer) error {
	p := tea.NewProgram(New(sess, loc), tea.WithAltScreen())

	token := sess.Subscribe(func(st engine.Status) {
		p.Send(engineStatusMsg{status: st})
	})
	defer sess.Unsubscribe(token)

	_, err := p.Run()
	return err
}

func indexOfLanguage(l letter.Language) int {
	for i, v := range letter.Languages() {
		if v == l {
			return i
		}
	}
	return 0
}

func indexOfTone(t letter.Tone) int {
	for i, v := range letter.Tones() {
		if v == t {
			return i
		}
	}
	return 0
}

func indexOfString(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return 0
}
