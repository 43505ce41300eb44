package models

// Flashcard is an individual flashcard. Cards carry no identifier of their
// own: within a deck a card is identified by its position, and two cards are
// considered the same card when their Front text is equal.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Deck is a named, ordered collection of flashcards. ID never changes once
// the deck is created. Card order is meaningful: it is the study order, and
// no store operation reorders cards as a side effect.
type Deck struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Cards []Flashcard `json:"cards"`
}

// Clone returns a deep copy of the deck so callers can hand out snapshots
// without aliasing the store's backing slices.
func (d Deck) Clone() Deck {
	out := d
	out.Cards = make([]Flashcard, len(d.Cards))
	copy(out.Cards, d.Cards)
	return out
}
