package store

import (
	"sync"

	"studylab/models"
)

// Storage is the durable backend for the deck store. Load reports ok=false
// when no document has ever been written. A Load error means the document
// exists but could not be read back; the Store treats that the same as
// absence. Save writes the whole deck list as one unit: after it returns the
// backend holds either the previous document or the new one, never a mix.
type Storage interface {
	Load() (decks []models.Deck, ok bool, err error)
	Save(decks []models.Deck) error
}

// MemoryStorage is an in-process Storage used by tests and throwaway setups.
type MemoryStorage struct {
	mu    sync.Mutex
	doc   []models.Deck
	saved bool

	// FailSaves makes every Save return an error, for exercising the
	// store's rollback path.
	FailSaves error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() ([]models.Deck, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return nil, false, nil
	}
	return cloneDecks(m.doc), true, nil
}

func (m *MemoryStorage) Save(decks []models.Deck) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves != nil {
		return m.FailSaves
	}
	m.doc = cloneDecks(decks)
	m.saved = true
	return nil
}

func cloneDecks(decks []models.Deck) []models.Deck {
	out := make([]models.Deck, len(decks))
	for i, d := range decks {
		out[i] = d.Clone()
	}
	return out
}
