// Package store persists the draft, the sender profile and the letter
// history as JSON files in the data directory. Single files, human
// readable, portable.
//
// Persistence is a convenience, not a correctness requirement: reads fall
// back to defaults on any problem (including malformed content) and write
// failures are logged at debug level and otherwise swallowed. The
// in-memory session always wins.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// readJSON loads path into v. It returns false when the file is missing or
// unreadable or its content does not parse; v is then left untouched so the
// caller's default survives.
func readJSON(path string, v any, logger *zap.Logger) bool {
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug("store read failed", zap.String("path", path), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		logger.Debug("store content malformed, using defaults",
			zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// writeJSON writes v to path, creating the directory if needed. Failures
// are logged and swallowed.
func writeJSON(path string, v any, logger *zap.Logger) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Debug("store mkdir failed", zap.String("path", path), zap.Error(err))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Debug("store marshal failed", zap.String("path", path), zap.Error(err))
		return
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		logger.Debug("store write failed", zap.String("path", path), zap.Error(err))
	}
}

// removeFile deletes path; a missing file is fine.
func removeFile(path string, logger *zap.Logger) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Debug("store remove failed", zap.String("path", path), zap.Error(err))
	}
}
