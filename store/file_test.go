package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studylab/models"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.json")
	storage := NewFileStorage(path)

	_, ok, err := storage.Load()
	require.NoError(t, err)
	assert.False(t, ok, "fresh file reports absent")

	decks := []models.Deck{
		{ID: "default", Name: "My First Deck", Cards: []models.Flashcard{}},
		{ID: "abc", Name: "Waves", Cards: []models.Flashcard{{Front: "v = fλ", Back: "Wave speed"}}},
	}
	require.NoError(t, storage.Save(decks))

	loaded, ok, err := storage.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, decks, loaded)
}

func TestFileStorageCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	storage := NewFileStorage(path)
	_, _, err := storage.Load()
	require.Error(t, err)

	// Open treats the unreadable document as absent and seeds the default.
	s := Open(storage)
	decks := s.Decks()
	require.Len(t, decks, 1)
	assert.Equal(t, DefaultDeckID, decks[0].ID)

	loaded, ok, err := storage.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, decks, loaded, "seed overwrote the corrupt file")
}

func TestFileStorageSaveReplacesWholeDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.json")
	storage := NewFileStorage(path)

	require.NoError(t, storage.Save([]models.Deck{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}))
	require.NoError(t, storage.Save([]models.Deck{{ID: "a", Name: "A"}}))

	loaded, ok, err := storage.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, loaded, 1)
	assert.Equal(t, "a", loaded[0].ID)
}
