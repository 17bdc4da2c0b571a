package store

import (
	"path/filepath"

	"go.uber.org/zap"

	"adminbuddy/internal/letter"
)

const profileFileName = "profile.json"

// ProfileStore persists the sender identity. Unlike the draft, the profile
// is written only on an explicit save action.
type ProfileStore struct {
	path   string
	logger *zap.Logger
}

// NewProfileStore creates a profile store rooted at dir.
func NewProfileStore(dir string, logger *zap.Logger) *ProfileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileStore{path: filepath.Join(dir, profileFileName), logger: logger}
}

// Load returns the persisted profile, or an all-empty one. Unknown fields
// in the stored file are ignored; missing fields stay empty.
func (s *ProfileStore) Load() letter.Profile {
	var p letter.Profile
	if !readJSON(s.path, &p, s.logger) {
		return letter.Profile{}
	}
	return p
}

// Save persists the profile.
func (s *ProfileStore) Save(p letter.Profile) {
	writeJSON(s.path, p, s.logger)
}

// Remove deletes the persisted profile.
func (s *ProfileStore) Remove() {
	removeFile(s.path, s.logger)
}
