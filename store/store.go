package store

import (
	"log"
	"strings"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"studylab/models"
)

// DefaultDeckID is the id of the deck seeded into an empty store.
const DefaultDeckID = "default"

const defaultDeckName = "My First Deck"

// Store owns the durable collection of decks. Every mutation rewrites the
// whole document through the Storage backend and only updates the in-memory
// snapshot when the write succeeds, so memory and disk always agree on either
// the pre-mutation or post-mutation state.
type Store struct {
	mu      sync.Mutex
	storage Storage
	decks   []models.Deck

	// One-time confirmation tokens for pending deck deletions.
	deleteTokens map[string]string
}

// Open loads the persisted deck list from storage. A missing or unreadable
// document is not an error: the store falls back to a single seeded default
// deck and persists it, so callers always get a usable store.
func Open(storage Storage) *Store {
	s := &Store{
		storage:      storage,
		deleteTokens: make(map[string]string),
	}

	decks, ok, err := storage.Load()
	if err != nil {
		log.Printf("store: discarding unreadable deck document: %v", err)
		ok = false
	}
	if !ok {
		decks = []models.Deck{{ID: DefaultDeckID, Name: defaultDeckName, Cards: []models.Flashcard{}}}
		if err := storage.Save(decks); err != nil {
			log.Printf("store: could not persist seeded default deck: %v", err)
		}
	}

	s.decks = decks
	return s
}

// Decks returns a snapshot of all decks in creation order.
func (s *Store) Decks() []models.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDecks(s.decks)
}

// Deck returns a snapshot of one deck by id.
func (s *Store) Deck(id string) (models.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Deck{}, notFoundf("deck %q", id)
	}
	return s.decks[i].Clone(), nil
}

// CreateDeck appends a new empty deck and persists the store. The generated
// id is unique across every deck the store has ever created.
func (s *Store) CreateDeck(name string) (models.Deck, error) {
	if strings.TrimSpace(name) == "" {
		return models.Deck{}, validationf("deck name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := gonanoid.New()
	if err != nil {
		return models.Deck{}, err
	}

	deck := models.Deck{ID: id, Name: strings.TrimSpace(name), Cards: []models.Flashcard{}}
	next := append(cloneDecks(s.decks), deck)
	if err := s.storage.Save(next); err != nil {
		return models.Deck{}, err
	}
	s.decks = next
	return deck.Clone(), nil
}

// DeleteDeck removes the deck with the given id. Deleting an absent deck is
// a no-op, not an error.
func (s *Store) DeleteDeck(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteDeckLocked(id)
}

func (s *Store) deleteDeckLocked(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	next := cloneDecks(s.decks)
	next = append(next[:i], next[i+1:]...)
	if err := s.storage.Save(next); err != nil {
		return err
	}
	s.decks = next
	delete(s.deleteTokens, id)
	return nil
}

// RequestDeleteDeck issues a one-time confirmation token for deleting the
// deck. The destructive call itself only goes through ConfirmDeleteDeck with
// a live token, which keeps deletion an explicit two-step protocol.
func (s *Store) RequestDeleteDeck(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(id) < 0 {
		return "", notFoundf("deck %q", id)
	}
	token, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	s.deleteTokens[id] = token
	return token, nil
}

// ConfirmDeleteDeck deletes the deck if token matches the one issued by
// RequestDeleteDeck. The token is consumed either way.
func (s *Store) ConfirmDeleteDeck(id, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	issued, ok := s.deleteTokens[id]
	delete(s.deleteTokens, id)
	if !ok || token == "" || token != issued {
		return validationf("missing or stale delete confirmation for deck %q", id)
	}
	return s.deleteDeckLocked(id)
}

// AddCard appends a card to the deck's card list.
func (s *Store) AddCard(deckID, front, back string) error {
	front, back = strings.TrimSpace(front), strings.TrimSpace(back)
	if front == "" || back == "" {
		return validationf("card front and back are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(deckID)
	if i < 0 {
		return validationf("deck %q does not exist", deckID)
	}
	next := cloneDecks(s.decks)
	next[i].Cards = append(next[i].Cards, models.Flashcard{Front: front, Back: back})
	if err := s.storage.Save(next); err != nil {
		return err
	}
	s.decks = next
	return nil
}

// ReplaceCard overwrites the card at index in place. Every other card keeps
// its position and content.
func (s *Store) ReplaceCard(deckID string, index int, front, back string) error {
	front, back = strings.TrimSpace(front), strings.TrimSpace(back)
	if front == "" || back == "" {
		return validationf("card front and back are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(deckID)
	if i < 0 {
		return notFoundf("deck %q", deckID)
	}
	if index < 0 || index >= len(s.decks[i].Cards) {
		return notFoundf("card %d in deck %q", index, deckID)
	}
	next := cloneDecks(s.decks)
	next[i].Cards[index] = models.Flashcard{Front: front, Back: back}
	if err := s.storage.Save(next); err != nil {
		return err
	}
	s.decks = next
	return nil
}

// DeleteCard removes the card at index, shifting later cards down by one.
// An unknown deck or out-of-range index is a no-op.
func (s *Store) DeleteCard(deckID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(deckID)
	if i < 0 || index < 0 || index >= len(s.decks[i].Cards) {
		return nil
	}
	next := cloneDecks(s.decks)
	next[i].Cards = append(next[i].Cards[:index], next[i].Cards[index+1:]...)
	if err := s.storage.Save(next); err != nil {
		return err
	}
	s.decks = next
	return nil
}

// SaveCardToDeck appends card to the deck unless a card with the same front
// text is already there. The returned bool is true when the card was added
// and false when it was already present; "already present" is an answer, not
// an error, and leaves the store untouched.
func (s *Store) SaveCardToDeck(deckID string, card models.Flashcard) (bool, error) {
	card.Front, card.Back = strings.TrimSpace(card.Front), strings.TrimSpace(card.Back)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(deckID)
	if i < 0 {
		return false, notFoundf("deck %q", deckID)
	}
	for _, existing := range s.decks[i].Cards {
		if existing.Front == card.Front {
			return false, nil
		}
	}
	next := cloneDecks(s.decks)
	next[i].Cards = append(next[i].Cards, card)
	if err := s.storage.Save(next); err != nil {
		return false, err
	}
	s.decks = next
	return true, nil
}

// indexOf returns the position of the deck with the given id, or -1.
// Callers must hold s.mu.
func (s *Store) indexOf(id string) int {
	for i := range s.decks {
		if s.decks[i].ID == id {
			return i
		}
	}
	return -1
}
