package session

import (
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"studylab/models"
	"studylab/store"
)

// Manager holds the live sessions for the process, keyed by generated id.
// Sessions only ever live here; ending one simply drops it.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// StartFromDeck snapshots the deck's current cards into a new session.
func (m *Manager) StartFromDeck(st *store.Store, deckID string) (string, *Session, error) {
	deck, err := st.Deck(deckID)
	if err != nil {
		return "", nil, err
	}
	return m.StartFromCards(deck.Cards)
}

// StartFromCards starts a session over an arbitrary card sequence, typically
// one freshly generated by the tutor.
func (m *Manager) StartFromCards(cards []models.Flashcard) (string, *Session, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", nil, err
	}

	sess := New(cards)
	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()
	return id, sess, nil
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// End discards the session. Ending an unknown id is a no-op.
func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
