package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminbuddy/internal/letter"
)

func TestDraftStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewDraftStore(dir, nil)

	d := letter.NewDraft()
	d.Subject = "Ansøgning"
	d.Recipient = "Borgerservice"
	d.Body = "Jeg har brug for hjælp."
	s.Save(d)

	got := NewDraftStore(dir, nil).Load()
	assert.Equal(t, "Ansøgning", got.Subject)
	assert.Equal(t, "Borgerservice", got.Recipient)
	assert.NotNil(t, got.SavedAt, "save stamps the draft")
}

func TestDraftStoreNeverPersistsEmptyDraft(t *testing.T) {
	dir := t.TempDir()
	s := NewDraftStore(dir, nil)

	d := letter.NewDraft()
	d.Subject = "Noget"
	s.Save(d)

	s.Save(letter.NewDraft())

	got := s.Load()
	assert.Equal(t, "Noget", got.Subject, "an empty save must not wipe stored state")
}

func TestDraftStoreMissingFileYieldsDefaults(t *testing.T) {
	got := NewDraftStore(t.TempDir(), nil).Load()
	assert.Equal(t, letter.NewDraft(), got)
}

func TestDraftStoreMalformedFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "draft.json"), []byte("{nope"), 0644))

	got := NewDraftStore(dir, nil).Load()
	assert.Equal(t, letter.NewDraft(), got)
}

func TestDraftStoreRemove(t *testing.T) {
	dir := t.TempDir()
	s := NewDraftStore(dir, nil)

	d := letter.NewDraft()
	d.Body = "indhold her"
	s.Save(d)
	s.Remove()

	assert.Equal(t, letter.NewDraft(), s.Load())
	s.Remove() // removing again is harmless
}

func TestProfileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewProfileStore(dir, nil)

	assert.True(t, s.Load().Empty())

	p := letter.Profile{Name: "Olena Petrenko", Email: "olena@example.dk"}
	s.Save(p)
	assert.Equal(t, p, NewProfileStore(dir, nil).Load())

	s.Remove()
	assert.True(t, s.Load().Empty())
}

func TestHistoryStoreAddAssignsIDAndPrepends(t *testing.T) {
	s := NewHistoryStore(t.TempDir(), 10, nil)

	first := s.Add(letter.HistoryItem{Subject: "første"})
	second := s.Add(letter.HistoryItem{Subject: "anden"})
	require.NotEmpty(t, first.ID)
	require.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	items := s.List()
	require.Len(t, items, 2)
	assert.Equal(t, "anden", items[0].Subject, "most recent first")
	assert.Equal(t, "første", items[1].Subject)
}

func TestHistoryStoreCapEvictsOldest(t *testing.T) {
	s := NewHistoryStore(t.TempDir(), 3, nil)

	for _, subject := range []string{"a", "b", "c", "d", "e"} {
		s.Add(letter.HistoryItem{Subject: subject})
	}

	items := s.List()
	require.Len(t, items, 3)
	assert.Equal(t, "e", items[0].Subject)
	assert.Equal(t, "c", items[2].Subject)
}

func TestHistoryStoreGetDeleteClear(t *testing.T) {
	s := NewHistoryStore(t.TempDir(), 10, nil)

	kept := s.Add(letter.HistoryItem{Subject: "beholdes"})
	gone := s.Add(letter.HistoryItem{Subject: "slettes"})

	got, ok := s.Get(kept.ID)
	require.True(t, ok)
	assert.Equal(t, "beholdes", got.Subject)

	_, ok = s.Get("no-such-id")
	assert.False(t, ok)

	s.Delete(gone.ID)
	s.Delete("no-such-id")
	require.Len(t, s.List(), 1)

	s.Clear()
	assert.Empty(t, s.List())
}

func TestHistoryStoreMalformedFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), []byte("not json"), 0644))

	s := NewHistoryStore(dir, 10, nil)
	assert.Empty(t, s.List())

	s.Add(letter.HistoryItem{Subject: "ny"})
	assert.Len(t, s.List(), 1)
}

func TestHistoryStoreLimitFallback(t *testing.T) {
	s := NewHistoryStore(t.TempDir(), 0, nil)
	assert.Equal(t, DefaultHistoryLimit, s.Limit())
}

func TestWriteFailureIsSwallowed(t *testing.T) {
	// A directory where the file should be makes the write fail; the
	// store must not panic or surface the error.
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "draft.json"), 0755))

	s := NewDraftStore(dir, nil)
	d := letter.NewDraft()
	d.Subject = "x"
	s.Save(d)

	assert.Equal(t, letter.NewDraft(), s.Load())
}
