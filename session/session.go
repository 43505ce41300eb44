// Package session drives sequential flashcard review: a snapshot of cards, a
// cursor, and a flip state. Sessions are ephemeral; nothing here is persisted
// and discarding a session loses nothing but the cursor.
package session

import (
	"studylab/models"
	"studylab/store"
)

// Session walks an immutable card sequence. Navigation past either end is a
// no-op rather than an error, so callers may invoke Next/Previous at the
// boundary safely; reaching the last card is the "session complete" signal,
// not a failure.
type Session struct {
	cards   []models.Flashcard
	index   int
	flipped bool
}

// New snapshots cards into a fresh session positioned at the first card,
// front side up. The snapshot is a copy: later changes to the source deck are
// not observed by the session.
func New(cards []models.Flashcard) *Session {
	snapshot := make([]models.Flashcard, len(cards))
	copy(snapshot, cards)
	return &Session{cards: snapshot}
}

// Empty reports whether the session has no cards at all.
func (s *Session) Empty() bool { return len(s.cards) == 0 }

func (s *Session) Len() int { return len(s.cards) }

func (s *Session) Index() int { return s.index }

func (s *Session) Flipped() bool { return s.flipped }

// Done reports whether the cursor sits on the last card.
func (s *Session) Done() bool {
	return len(s.cards) > 0 && s.index == len(s.cards)-1
}

// Current returns the card under the cursor. ok is false for an empty
// session.
func (s *Session) Current() (models.Flashcard, bool) {
	if s.Empty() {
		return models.Flashcard{}, false
	}
	return s.cards[s.index], true
}

// Flip toggles between front and back of the current card. Flipping twice
// lands back where it started.
func (s *Session) Flip() {
	if s.Empty() {
		return
	}
	s.flipped = !s.flipped
}

// Next advances to the following card, front side up. At the last card it
// does nothing.
func (s *Session) Next() {
	if s.index < len(s.cards)-1 {
		s.index++
		s.flipped = false
	}
}

// Previous moves back one card, front side up. At the first card it does
// nothing.
func (s *Session) Previous() {
	if s.index > 0 {
		s.index--
		s.flipped = false
	}
}

// SaveCurrent copies the card under the cursor into the given deck via the
// store's deduplicating save. It never changes session state. The bool mirrors
// store.SaveCardToDeck: false means the deck already had a card with the same
// front.
func (s *Session) SaveCurrent(st *store.Store, deckID string) (bool, error) {
	card, ok := s.Current()
	if !ok {
		return false, nil
	}
	return st.SaveCardToDeck(deckID, card)
}
