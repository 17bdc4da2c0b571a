package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"adminbuddy/internal/engine"
	"adminbuddy/internal/export"
	"adminbuddy/internal/i18n"
	"adminbuddy/internal/letter"
	"adminbuddy/internal/session"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.ready = true
		return m, nil

	case engineStatusMsg:
		m.status = msg.status
		return m, nil

	case generateDoneMsg:
		m.busy = false
		m.notice = ""
		m.preview.SetContent(msg.output)
		m.preview.GotoTop()
		return m, nil

	case generateFailedMsg:
		m.busy = false
		m.handleGenerateError(msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case historyView:
			return m.updateHistory(msg)
		case profileView:
			return m.updateProfile(msg)
		default:
			return m.updateForm(msg)
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.focus = (m.focus + 1) % focusCount
		m.applyFocus()
		return m, nil

	case "shift+tab":
		m.focus = (m.focus + focusCount - 1) % focusCount
		m.applyFocus()
		return m, nil

	case "ctrl+g":
		return m.startGenerate()

	case "ctrl+t":
		out := m.sess.GenerateTest()
		m.preview.SetContent(out)
		m.preview.GotoTop()
		m.fieldErrs = nil
		m.notice = ""
		return m, nil

	case "ctrl+y":
		return m.copyOutput()

	case "ctrl+s":
		if _, ok := m.sess.SaveToHistory(); ok {
			m.setNotice(i18n.T(m.loc, "notice_saved_history"), false)
		} else {
			m.setNotice(i18n.T(m.loc, "notice_nothing_to_save"), true)
		}
		return m, nil

	case "ctrl+e":
		return m.exportOutput("letter.docx", export.DocxFile)

	case "ctrl+b":
		return m.exportOutput("letter.pdf", export.PDFFile)

	case "ctrl+l":
		m.sess.ClearDraft()
		m.syncFromDraft()
		m.preview.SetContent("")
		m.fieldErrs = nil
		m.setNotice(i18n.T(m.loc, "notice_draft_cleared"), false)
		return m, nil

	case "ctrl+o":
		m.reloadHistory()
		m.mode = historyView
		return m, nil

	case "ctrl+p":
		m.syncProfileInputs()
		m.mode = profileView
		m.profileFocus = 0
		m.applyProfileFocus()
		return m, nil
	}

	// Selector fields react to left/right; text fields consume the rest.
	switch m.focus {
	case focusLanguage:
		if delta, ok := selectorDelta(msg); ok {
			langs := letter.Languages()
			m.langIdx = wrap(m.langIdx+delta, len(langs))
			m.sess.SetLanguage(langs[m.langIdx])
		}
		return m, nil

	case focusTone:
		if delta, ok := selectorDelta(msg); ok {
			tones := letter.Tones()
			m.toneIdx = wrap(m.toneIdx+delta, len(tones))
			m.sess.SetTone(tones[m.toneIdx])
		}
		return m, nil

	case focusScenario:
		if delta, ok := selectorDelta(msg); ok {
			m.scenarioIdx = wrap(m.scenarioIdx+delta, len(m.scenarios))
			m.sess.SetScenario(m.scenarios[m.scenarioIdx])
			// A preset may adjust tone, subject and the body hint.
			m.syncFromDraft()
		}
		return m, nil

	case focusSubject:
		var cmd tea.Cmd
		m.subject, cmd = m.subject.Update(msg)
		m.sess.SetSubject(m.subject.Value())
		delete(m.fieldErrs, letter.FieldSubject)
		return m, cmd

	case focusRecipient:
		var cmd tea.Cmd
		m.recipient, cmd = m.recipient.Update(msg)
		m.sess.SetRecipient(m.recipient.Value())
		delete(m.fieldErrs, letter.FieldRecipient)
		return m, cmd

	case focusBody:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		m.sess.SetBody(m.body.Value())
		delete(m.fieldErrs, letter.FieldBody)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = formView
		return m, nil

	case "enter":
		if it, ok := m.historyList.SelectedItem().(historyItem); ok {
			if m.sess.LoadFromHistory(it.item.ID) {
				m.syncFromDraft()
				m.preview.SetContent(m.sess.Draft().Output)
				m.preview.GotoTop()
				m.fieldErrs = nil
				m.notice = ""
				m.mode = formView
			}
		}
		return m, nil

	case "d":
		if it, ok := m.historyList.SelectedItem().(historyItem); ok {
			m.sess.DeleteHistory(it.item.ID)
			m.reloadHistory()
		}
		return m, nil

	case "c":
		m.sess.ClearHistory()
		m.reloadHistory()
		return m, nil
	}

	var cmd tea.Cmd
	m.historyList, cmd = m.historyList.Update(msg)
	return m, cmd
}

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = formView
		m.applyFocus()
		return m, nil

	case "tab", "enter":
		m.profileFocus = (m.profileFocus + 1) % len(m.profileInputs)
		m.applyProfileFocus()
		return m, nil

	case "shift+tab":
		m.profileFocus = (m.profileFocus + len(m.profileInputs) - 1) % len(m.profileInputs)
		m.applyProfileFocus()
		return m, nil

	case "ctrl+s":
		m.sess.SaveProfile()
		m.setNotice(i18n.T(m.loc, "notice_profile_saved"), false)
		return m, nil
	}

	var cmd tea.Cmd
	m.profileInputs[m.profileFocus], cmd = m.profileInputs[m.profileFocus].Update(msg)
	m.sess.SetProfile(letter.Profile{
		Name:    m.profileInputs[0].Value(),
		Phone:   m.profileInputs[1].Value(),
		Email:   m.profileInputs[2].Value(),
		Address: m.profileInputs[3].Value(),
	})
	return m, cmd
}

// startGenerate launches the model call as a background command so typing
// stays responsive while the letter is produced.
func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	if m.busy {
		m.setNotice(i18n.T(m.loc, "notice_busy"), true)
		return m, nil
	}
	m.busy = true
	m.notice = ""
	sess := m.sess
	generate := func() tea.Msg {
		out, err := sess.Generate(context.Background())
		if err != nil {
			return generateFailedMsg{err: err}
		}
		return generateDoneMsg{output: out}
	}
	return m, tea.Batch(m.spin.Tick, generate)
}

func (m *Model) handleGenerateError(err error) {
	var vErr *session.ValidationError
	switch {
	case errors.As(err, &vErr):
		m.fieldErrs = vErr.Fields
		m.focusFirstInvalid()
		m.notice = ""
	case errors.Is(err, engine.ErrNoAccelerator):
		m.setNotice(i18n.T(m.loc, "notice_no_accelerator"), true)
	case errors.Is(err, engine.ErrNotReady):
		m.setNotice(i18n.T(m.loc, "notice_model_not_ready"), true)
	case errors.Is(err, session.ErrBusy):
		m.setNotice(i18n.T(m.loc, "notice_busy"), true)
	default:
		m.setNotice(i18n.TWithData(m.loc, "notice_generation_failed",
			map[string]any{"Reason": err.Error()}), true)
	}
}

func (m Model) copyOutput() (tea.Model, tea.Cmd) {
	out := m.sess.Draft().Output
	if out == "" {
		m.setNotice(i18n.T(m.loc, "notice_nothing_to_save"), true)
		return m, nil
	}
	if err := export.Clipboard(out); err != nil {
		m.setNotice(err.Error(), true)
		return m, nil
	}
	m.setNotice(i18n.T(m.loc, "notice_copied"), false)
	return m, nil
}

func (m Model) exportOutput(path string, write func(text, path string) error) (tea.Model, tea.Cmd) {
	out := m.sess.Draft().Output
	if out == "" {
		m.setNotice(i18n.T(m.loc, "notice_nothing_to_save"), true)
		return m, nil
	}
	if err := write(out, path); err != nil {
		m.setNotice(err.Error(), true)
		return m, nil
	}
	m.setNotice(i18n.TWithData(m.loc, "notice_exported", map[string]any{"Path": path}), false)
	return m, nil
}

// ---------------------------------------------------------------------------
// Focus and sync helpers

func (m *Model) applyFocus() {
	m.subject.Blur()
	m.recipient.Blur()
	m.body.Blur()
	switch m.focus {
	case focusSubject:
		m.subject.Focus()
	case focusRecipient:
		m.recipient.Focus()
	case focusBody:
		m.body.Focus()
	}
}

func (m *Model) applyProfileFocus() {
	for i := range m.profileInputs {
		if i == m.profileFocus {
			m.profileInputs[i].Focus()
		} else {
			m.profileInputs[i].Blur()
		}
	}
}

func (m *Model) focusFirstInvalid() {
	switch m.fieldErrs.First() {
	case letter.FieldSubject:
		m.focus = focusSubject
	case letter.FieldRecipient:
		m.focus = focusRecipient
	case letter.FieldBody:
		m.focus = focusBody
	}
	m.applyFocus()
}

// syncFromDraft refreshes every widget from the session's draft, e.g.
// after a preset selection, a history load or a clear.
func (m *Model) syncFromDraft() {
	d := m.sess.Draft()
	m.langIdx = indexOfLanguage(d.Language)
	m.toneIdx = indexOfTone(d.Tone)
	m.scenarioIdx = indexOfString(m.scenarios, d.Scenario)
	m.subject.SetValue(d.Subject)
	m.recipient.SetValue(d.Recipient)
	m.body.SetValue(d.Body)
	if p, ok := letter.PresetByKey(d.Scenario); ok {
		m.body.Placeholder = p.BodyHint
	} else {
		m.body.Placeholder = ""
	}
}

func (m *Model) syncProfileInputs() {
	p := m.sess.Profile()
	for i, v := range []string{p.Name, p.Phone, p.Email, p.Address} {
		m.profileInputs[i].SetValue(v)
	}
}

func (m *Model) reloadHistory() {
	items := m.sess.HistoryItems()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, historyItem{item: it})
	}
	m.historyList.SetItems(li)
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m *Model) layout() {
	formWidth := m.width/2 - 4
	if formWidth < 30 {
		formWidth = 30
	}
	m.subject.Width = formWidth - 4
	m.recipient.Width = formWidth - 4
	m.body.SetWidth(formWidth - 2)
	m.body.SetHeight(max(6, m.height-18))

	previewWidth := m.width - formWidth - 8
	if previewWidth < 30 {
		previewWidth = 30
	}
	m.preview.Width = previewWidth
	m.preview.Height = max(6, m.height-8)

	m.historyList.SetSize(m.width-4, m.height-4)
}

func selectorDelta(msg tea.KeyMsg) (int, bool) {
	switch msg.String() {
	case "left":
		return -1, true
	case "right", "enter", " ":
		return 1, true
	}
	return 0, false
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
