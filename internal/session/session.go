// Package session owns the drafting lifecycle: the current draft and
// profile, the generation state machine, debounced draft autosave, and the
// engine status watcher. It is the stateful coordinator between the pure
// letter pipeline, the model engine and the stores.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"adminbuddy/internal/config"
	"adminbuddy/internal/engine"
	"adminbuddy/internal/letter"
	"adminbuddy/internal/prompt"
	"adminbuddy/internal/store"
)

// StatusListener receives engine status changes from the session's poller.
type StatusListener func(engine.Status)

// Session coordinates one user's drafting work. All mutation is serialized
// behind one mutex; the model call itself runs without the lock so field
// edits stay responsive while a generation is in flight.
type Session struct {
	cfg    *config.Config
	engine engine.Engine
	logger *zap.Logger

	drafts   *store.DraftStore
	profiles *store.ProfileStore
	history  *store.HistoryStore

	autosave *Debouncer

	mu         sync.Mutex
	draft      letter.Draft
	profile    letter.Profile
	state      State
	fieldErrs  letter.FieldErrors
	lastErr    string
	generating bool

	listeners map[int]StatusListener
	nextSub   int

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New creates a session, rehydrating the draft and profile from storage.
// Call Start to begin engine initialization and status polling, and Close
// on teardown.
func New(cfg *config.Config, eng engine.Engine, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	dir := cfg.Storage.DataDir
	drafts := store.NewDraftStore(dir, logger)
	profiles := store.NewProfileStore(dir, logger)
	history := store.NewHistoryStore(dir, cfg.Storage.HistoryLimit, logger)

	s := &Session{
		cfg:       cfg,
		engine:    eng,
		logger:    logger,
		drafts:    drafts,
		profiles:  profiles,
		history:   history,
		autosave:  NewDebouncer(cfg.GetAutosaveDelay()),
		draft:     drafts.Load(),
		profile:   profiles.Load(),
		state:     Idle,
		listeners: make(map[int]StatusListener),
		done:      make(chan struct{}),
	}
	return s
}

// Start kicks off engine initialization and the status poller. Engine
// loading is asynchronous; progress is observable through Subscribe.
func (s *Session) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.engine.Init(ctx); err != nil {
			s.logger.Warn("engine init interrupted", zap.Error(err))
		}
	}()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.pollStatus()
	}()
}

// Close stops the status poller and flushes any pending draft write. Safe
// to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
		s.autosave.Flush()
	})
}

// ---------------------------------------------------------------------------
// Engine status watcher

// Subscribe registers a listener for engine status changes and returns a
// token for Unsubscribe. The listener fires on the poller goroutine.
func (s *Session) Subscribe(fn StatusListener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	s.listeners[s.nextSub] = fn
	return s.nextSub
}

// Unsubscribe removes a listener. Unknown tokens are a no-op.
func (s *Session) Unsubscribe(token int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, token)
}

// EngineStatus reads the engine's current load status.
func (s *Session) EngineStatus() engine.Status {
	return s.engine.Status()
}

func (s *Session) pollStatus() {
	ticker := time.NewTicker(s.cfg.GetPollInterval())
	defer ticker.Stop()

	var last engine.Status
	seen := false
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			st := s.engine.Status()
			if seen && st == last {
				continue
			}
			last, seen = st, true
			s.notify(st)
		}
	}
}

func (s *Session) notify(st engine.Status) {
	s.mu.Lock()
	fns := make([]StatusListener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

// ---------------------------------------------------------------------------
// Draft editing

// SetLanguage updates the input language.
func (s *Session) SetLanguage(l letter.Language) { s.editDraft(func(d *letter.Draft) { d.Language = l }) }

// SetTone updates the tone.
func (s *Session) SetTone(t letter.Tone) { s.editDraft(func(d *letter.Draft) { d.Tone = t }) }

// SetSubject updates the subject line.
func (s *Session) SetSubject(v string) { s.editDraft(func(d *letter.Draft) { d.Subject = v }) }

// SetRecipient updates the recipient.
func (s *Session) SetRecipient(v string) { s.editDraft(func(d *letter.Draft) { d.Recipient = v }) }

// SetBody updates the free-text description.
func (s *Session) SetBody(v string) { s.editDraft(func(d *letter.Draft) { d.Body = v }) }

// SetOutput replaces the generated text, e.g. after a manual edit.
func (s *Session) SetOutput(v string) { s.editDraft(func(d *letter.Draft) { d.Output = v }) }

// SetScenario selects a scenario. A preset applies its default tone, and
// its default subject when the subject is still empty; "custom" changes
// nothing but the key.
func (s *Session) SetScenario(key string) {
	s.editDraft(func(d *letter.Draft) {
		d.Scenario = key
		if p, ok := letter.PresetByKey(key); ok {
			d.Tone = p.Tone
			if d.Subject == "" {
				d.Subject = p.Subject
			}
		}
	})
}

func (s *Session) editDraft(apply func(*letter.Draft)) {
	s.mu.Lock()
	apply(&s.draft)
	s.mu.Unlock()
	s.scheduleAutosave()
}

func (s *Session) scheduleAutosave() {
	s.autosave.Debounce(func() {
		s.mu.Lock()
		d := s.draft
		s.mu.Unlock()
		s.drafts.Save(d)
	})
}

// Draft returns a copy of the current draft.
func (s *Session) Draft() letter.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// ClearDraft resets all fields to defaults and removes the persisted
// draft. A pending autosave is cancelled first so it cannot resurrect the
// cleared state.
func (s *Session) ClearDraft() {
	s.autosave.Cancel()
	s.mu.Lock()
	s.draft = letter.NewDraft()
	s.state = Idle
	s.fieldErrs = nil
	s.lastErr = ""
	s.mu.Unlock()
	s.drafts.Remove()
}

// ---------------------------------------------------------------------------
// Profile

// Profile returns a copy of the sender profile.
func (s *Session) Profile() letter.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetProfile replaces the in-memory profile. It is NOT persisted until
// SaveProfile; the asymmetry with the autosaved draft is intentional.
func (s *Session) SetProfile(p letter.Profile) {
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
}

// SaveProfile persists the in-memory profile.
func (s *Session) SaveProfile() {
	s.mu.Lock()
	p := s.profile
	s.mu.Unlock()
	s.profiles.Save(p)
}

// ---------------------------------------------------------------------------
// Generation

// GenerateTest builds a deterministic letter from the current fields and
// signature without touching the model. It always succeeds and is
// available even when no accelerator or runtime is present.
func (s *Session) GenerateTest() string {
	s.mu.Lock()
	out := letter.Preview(s.draft, s.profile)
	s.draft.Output = out
	s.state = Ready
	s.fieldErrs = nil
	s.lastErr = ""
	s.mu.Unlock()

	s.scheduleAutosave()
	return out
}

// Generate runs the full pipeline: validate, gate on capability and
// readiness, call the model, normalize, and commit the result to the
// draft. All gates are checked synchronously before the model call, so the
// user never waits on a doomed request. A failure leaves the draft exactly
// as it was, prior output included.
func (s *Session) Generate(ctx context.Context) (string, error) {
	// Sampled before taking the lock; Status may do a short network probe.
	engineStatus := s.engine.Status()

	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return "", ErrBusy
	}

	s.state = Validating
	errs := letter.Validate(s.draft.Subject, s.draft.Recipient, s.draft.Body)
	if errs != nil {
		s.fieldErrs = errs
		s.state = Idle
		s.mu.Unlock()
		return "", &ValidationError{Fields: errs}
	}
	s.fieldErrs = nil

	if s.cfg.Engine.RequireAccelerator && !s.engine.Accelerated() {
		s.state = Failed
		s.lastErr = engine.ErrNoAccelerator.Error()
		s.mu.Unlock()
		return "", engine.ErrNoAccelerator
	}
	if !engineStatus.Ready {
		s.state = Failed
		s.lastErr = engine.ErrNotReady.Error()
		s.mu.Unlock()
		return "", engine.ErrNotReady
	}

	scenarioTitle := ""
	if p, ok := letter.PresetByKey(s.draft.Scenario); ok {
		scenarioTitle = p.Title
	}
	pr := prompt.Build(prompt.Params{
		Tone:          s.draft.Tone,
		Language:      s.draft.Language,
		ScenarioTitle: scenarioTitle,
		Subject:       s.draft.Subject,
		Recipient:     s.draft.Recipient,
		Body:          s.draft.Body,
	})
	fallbackSubject := s.draft.Subject

	s.generating = true
	s.state = AwaitingModel
	s.mu.Unlock()

	raw, err := s.engine.Complete(ctx, pr.System, pr.User)

	s.mu.Lock()
	s.generating = false
	if err != nil {
		s.state = Failed
		s.lastErr = err.Error()
		s.mu.Unlock()
		return "", fmt.Errorf("generation failed: %w", err)
	}

	s.state = Normalizing
	out := letter.Normalize(raw, fallbackSubject, s.profile)
	s.draft.Output = out
	s.state = Ready
	s.mu.Unlock()

	s.scheduleAutosave()
	s.logger.Info("letter generated", zap.Int("raw_len", len(raw)), zap.Int("out_len", len(out)))
	return out, nil
}

// ---------------------------------------------------------------------------
// History

// SaveToHistory snapshots the current draft into the history store. It is
// a no-op when there is no generated output yet.
func (s *Session) SaveToHistory() (letter.HistoryItem, bool) {
	s.mu.Lock()
	d := s.draft
	s.mu.Unlock()

	if d.Empty() || d.Output == "" {
		return letter.HistoryItem{}, false
	}
	item := s.history.Add(letter.Snapshot(d))
	s.logger.Debug("saved to history", zap.String("id", item.ID))
	return item, true
}

// LoadFromHistory replaces all draft fields with a stored snapshot. An
// unknown identifier is a silent no-op and returns false.
func (s *Session) LoadFromHistory(id string) bool {
	item, ok := s.history.Get(id)
	if !ok {
		return false
	}

	s.mu.Lock()
	s.draft = letter.Restore(item)
	s.state = Ready
	s.fieldErrs = nil
	s.lastErr = ""
	s.mu.Unlock()

	s.scheduleAutosave()
	return true
}

// HistoryItems lists stored letters, most recent first.
func (s *Session) HistoryItems() []letter.HistoryItem {
	return s.history.List()
}

// DeleteHistory removes one stored letter by identifier.
func (s *Session) DeleteHistory(id string) {
	s.history.Delete(id)
}

// ClearHistory removes all stored letters.
func (s *Session) ClearHistory() {
	s.history.Clear()
}

// ---------------------------------------------------------------------------
// Introspection

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FieldErrors returns the validation problems from the last generation
// attempt, or nil.
func (s *Session) FieldErrors() letter.FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fieldErrs
}

// LastError returns the human-readable message of the last failure, or "".
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
