package store

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"adminbuddy/internal/letter"
)

const draftFileName = "draft.json"

// DraftStore persists the in-progress letter for crash/reload recovery.
type DraftStore struct {
	path   string
	logger *zap.Logger
}

// NewDraftStore creates a draft store rooted at dir.
func NewDraftStore(dir string, logger *zap.Logger) *DraftStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DraftStore{path: filepath.Join(dir, draftFileName), logger: logger}
}

// Load returns the persisted draft, or a fresh default when nothing usable
// is stored.
func (s *DraftStore) Load() letter.Draft {
	d := letter.NewDraft()
	if !readJSON(s.path, &d, s.logger) {
		return letter.NewDraft()
	}
	return d
}

// Save persists the draft. An all-empty draft is never written, so a blank
// session cannot overwrite a prior session's state.
func (s *DraftStore) Save(d letter.Draft) {
	if d.Empty() {
		return
	}
	now := time.Now()
	d.SavedAt = &now
	writeJSON(s.path, d, s.logger)
}

// Remove deletes the persisted draft.
func (s *DraftStore) Remove() {
	removeFile(s.path, s.logger)
}
