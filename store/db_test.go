package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studylab/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestDBStorageRoundTrip(t *testing.T) {
	db := openTestDB(t)
	storage, err := NewDBStorage(db)
	require.NoError(t, err)

	_, ok, err := storage.Load()
	require.NoError(t, err)
	assert.False(t, ok, "empty table reports absent")

	decks := []models.Deck{
		{ID: "default", Name: "My First Deck", Cards: []models.Flashcard{}},
		{ID: "xyz", Name: "Dynamics", Cards: []models.Flashcard{{Front: "F=ma", Back: "Newton's 2nd law"}}},
	}
	require.NoError(t, storage.Save(decks))

	loaded, ok, err := storage.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, decks, loaded)
}

func TestDBStorageUpsertsSingleRow(t *testing.T) {
	db := openTestDB(t)
	storage, err := NewDBStorage(db)
	require.NoError(t, err)

	require.NoError(t, storage.Save([]models.Deck{{ID: "a", Name: "A"}}))
	require.NoError(t, storage.Save([]models.Deck{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}))

	var count int64
	require.NoError(t, db.Model(&StorageEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "the whole document lives in one row")

	loaded, ok, err := storage.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, loaded, 2)
}

func TestDBStorageCorruptValue(t *testing.T) {
	db := openTestDB(t)
	storage, err := NewDBStorage(db)
	require.NoError(t, err)

	require.NoError(t, db.Create(&StorageEntry{Key: StorageKey, Value: "{broken"}).Error)

	_, _, err = storage.Load()
	require.Error(t, err)

	// The store recovers by seeding over the broken document.
	s := Open(storage)
	decks := s.Decks()
	require.Len(t, decks, 1)
	assert.Equal(t, DefaultDeckID, decks[0].ID)
}
