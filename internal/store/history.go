package store

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adminbuddy/internal/letter"
)

const historyFileName = "history.json"

// DefaultHistoryLimit bounds the history when no limit is configured.
const DefaultHistoryLimit = 50

// HistoryStore persists a capped log of completed letters, most recent
// first. Overflow drops the oldest entries.
type HistoryStore struct {
	path   string
	limit  int
	logger *zap.Logger
}

// NewHistoryStore creates a history store rooted at dir.
func NewHistoryStore(dir string, limit int, logger *zap.Logger) *HistoryStore {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryStore{path: filepath.Join(dir, historyFileName), limit: limit, logger: logger}
}

// List returns the stored items, most recent first.
func (s *HistoryStore) List() []letter.HistoryItem {
	var items []letter.HistoryItem
	if !readJSON(s.path, &items, s.logger) {
		return nil
	}
	return items
}

// Get looks an item up by identifier.
func (s *HistoryStore) Get(id string) (letter.HistoryItem, bool) {
	for _, it := range s.List() {
		if it.ID == id {
			return it, true
		}
	}
	return letter.HistoryItem{}, false
}

// Add assigns the item a unique identifier and creation time, prepends it,
// and evicts the oldest entries beyond the cap. The completed item is
// returned.
func (s *HistoryStore) Add(item letter.HistoryItem) letter.HistoryItem {
	item.ID = uuid.NewString()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	items := append([]letter.HistoryItem{item}, s.List()...)
	if len(items) > s.limit {
		items = items[:s.limit]
	}
	writeJSON(s.path, items, s.logger)
	return item
}

// Delete removes one item by identifier. Unknown identifiers are a no-op.
func (s *HistoryStore) Delete(id string) {
	items := s.List()
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	if len(out) == len(items) {
		return
	}
	writeJSON(s.path, out, s.logger)
}

// Clear removes all history.
func (s *HistoryStore) Clear() {
	removeFile(s.path, s.logger)
}

// Limit returns the configured cap.
func (s *HistoryStore) Limit() int {
	return s.limit
}
