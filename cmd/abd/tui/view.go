package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"adminbuddy/internal/i18n"
	"adminbuddy/internal/letter"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	switch m.mode {
	case historyView:
		return m.viewHistory()
	case profileView:
		return m.viewProfile()
	default:
		return m.viewForm()
	}
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(i18n.T(m.loc, "app_title")))
	b.WriteString("  ")
	b.WriteString(m.engineLine())
	b.WriteString("\n\n")

	form := lipgloss.JoinVertical(lipgloss.Left,
		m.selectorLine(focusLanguage, "field_language", languageName(letter.Languages()[m.langIdx])),
		m.selectorLine(focusTone, "field_tone", toneName(letter.Tones()[m.toneIdx])),
		m.selectorLine(focusScenario, "field_scenario", m.scenarioName()),
		"",
		m.inputLine(focusSubject, "field_subject", m.subject.View(), letter.FieldSubject),
		m.inputLine(focusRecipient, "field_recipient", m.recipient.View(), letter.FieldRecipient),
		m.inputLine(focusBody, "field_body", m.body.View(), letter.FieldBody),
	)

	previewBody := m.preview.View()
	if strings.TrimSpace(m.sess.Draft().Output) == "" {
		previewBody = m.styles.Muted.Render(i18n.T(m.loc, "preview_empty"))
	}
	preview := m.styles.Panel.Width(m.preview.Width).Render(previewBody)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", preview))
	b.WriteString("\n")
	b.WriteString(m.noticeLine())
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(m.historyList.View())
	b.WriteString("\n")
	if len(m.historyList.Items()) == 0 {
		b.WriteString(m.styles.Muted.Render(i18n.T(m.loc, "history_empty")))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("enter: open · d: delete · c: clear all · esc: back"))
	return b.String()
}

func (m Model) viewProfile() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(i18n.T(m.loc, "profile_title")))
	b.WriteString("\n\n")
	labels := []string{"profile_name", "profile_phone", "profile_email", "profile_address"}
	for i, key := range labels {
		style := m.styles.Label
		if i == m.profileFocus {
			style = m.styles.LabelFocus
		}
		b.WriteString(style.Render(i18n.T(m.loc, key)))
		b.WriteString("\n")
		b.WriteString(m.profileInputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.noticeLine())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab: next · ctrl+s: save · esc: back"))
	return b.String()
}

// engineLine renders the runtime status next to the title: a progress bar
// while the model loads, the spinner while a letter is produced.
func (m Model) engineLine() string {
	if m.busy {
		return m.spin.View() + " " + m.styles.Warning.Render(i18n.T(m.loc, "generating"))
	}
	switch {
	case m.status.Ready:
		return m.styles.Success.Render(i18n.T(m.loc, "model_ready"))
	case m.status.Message == "runtime unreachable":
		return m.styles.FieldError.Render(i18n.T(m.loc, "runtime_unreachable"))
	default:
		return fmt.Sprintf("%s %s",
			m.styles.Warning.Render(i18n.T(m.loc, "model_loading")),
			m.load.ViewAs(m.status.Progress))
	}
}

func (m Model) selectorLine(area focusArea, labelKey, value string) string {
	label := m.styles.Label
	if m.focus == area {
		label = m.styles.LabelFocus
	}
	return label.Render(i18n.T(m.loc, labelKey)) + " " +
		m.styles.Selector.Render("◂ "+value+" ▸")
}

func (m Model) inputLine(area focusArea, labelKey, input string, field letter.Field) string {
	label := m.styles.Label
	if m.focus == area {
		label = m.styles.LabelFocus
	}
	line := label.Render(i18n.T(m.loc, labelKey)) + "\n" + input
	if msg, ok := m.fieldErrs[field]; ok {
		line += "\n" + m.styles.FieldError.Render(validationText(m.loc, msg))
	}
	return line
}

func (m Model) noticeLine() string {
	if m.notice == "" {
		return m.styles.Muted.Render(i18n.T(m.loc, "local_note"))
	}
	if m.noticeErr {
		return m.styles.FieldError.Render(m.notice)
	}
	return m.styles.Notice.Render(m.notice)
}

func (m Model) helpLine() string {
	parts := []string{
		"ctrl+g: " + i18n.T(m.loc, "action_generate"),
		"ctrl+t: " + i18n.T(m.loc, "action_generate_test"),
		"ctrl+y: " + i18n.T(m.loc, "action_copy"),
		"ctrl+e/ctrl+b: " + i18n.T(m.loc, "action_export"),
		"ctrl+s: " + i18n.T(m.loc, "action_save_history"),
		"ctrl+o: " + i18n.T(m.loc, "action_history"),
		"ctrl+p: " + i18n.T(m.loc, "action_profile"),
		"ctrl+l: " + i18n.T(m.loc, "action_clear"),
		"ctrl+c: " + i18n.T(m.loc, "action_quit"),
	}
	return m.styles.Help.Render(strings.Join(parts, " · "))
}

func (m Model) scenarioName() string {
	key := m.scenarios[m.scenarioIdx]
	if p, ok := letter.PresetByKey(key); ok {
		return p.Title
	}
	return i18n.T(m.loc, "scenario_custom")
}

func languageName(l letter.Language) string {
	switch l {
	case letter.LanguageUkrainian:
		return "Українська"
	case letter.LanguageEnglish:
		return "English"
	case letter.LanguageDanish:
		return "Dansk"
	}
	return string(l)
}

func toneName(t letter.Tone) string {
	switch t {
	case letter.ToneFormal:
		return "Formel"
	case letter.ToneNeutral:
		return "Neutral"
	case letter.ToneFriendly:
		return "Venlig"
	}
	return string(t)
}

// validationText maps a validation message to its localized form.
func validationText(loc *goi18n.Localizer, msg string) string {
	switch msg {
	case letter.MsgSubjectRequired:
		return i18n.T(loc, "error_subject_required")
	case letter.MsgRecipientRequired:
		return i18n.T(loc, "error_recipient_required")
	case letter.MsgBodyTooShort:
		return i18n.T(loc, "error_body_too_short")
	}
	return msg
}
