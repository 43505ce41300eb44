package handlers

import (
	"encoding/json"
	"net/http"

	"studylab/models"
	"studylab/session"
)

// sessionView is the wire shape of a session snapshot. Card is the card
// under the cursor; the client shows front or back according to Flipped.
type sessionView struct {
	ID      string            `json:"id"`
	Index   int               `json:"index"`
	Flipped bool              `json:"flipped"`
	Total   int               `json:"total"`
	Done    bool              `json:"done"`
	Card    *models.Flashcard `json:"card,omitempty"`
}

func viewOf(id string, s *session.Session) sessionView {
	view := sessionView{
		ID:      id,
		Index:   s.Index(),
		Flipped: s.Flipped(),
		Total:   s.Len(),
		Done:    s.Done(),
	}
	if card, ok := s.Current(); ok {
		view.Card = &card
	}
	return view
}

// StartSession opens a review session over either an existing deck's cards
// (deckId set) or an ad-hoc card list, typically one the tutor just
// generated.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		DeckID string             `json:"deckId"`
		Cards  []models.Flashcard `json:"cards"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}

	var (
		id   string
		sess *session.Session
		err  error
	)
	if requestData.DeckID != "" {
		id, sess, err = h.Sessions.StartFromDeck(h.Store, requestData.DeckID)
	} else {
		id, sess, err = h.Sessions.StartFromCards(requestData.Cards)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(id, sess))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sessionID")
	sess, ok := h.Sessions.Get(id)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(id, sess))
}

func (h *Handler) FlipSession(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, (*session.Session).Flip)
}

func (h *Handler) NextCard(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, (*session.Session).Next)
}

func (h *Handler) PreviousCard(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, (*session.Session).Previous)
}

func (h *Handler) sessionAction(w http.ResponseWriter, r *http.Request, action func(*session.Session)) {
	id := r.PathValue("sessionID")
	sess, ok := h.Sessions.Get(id)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	action(sess)
	writeJSON(w, http.StatusOK, viewOf(id, sess))
}

// SaveSessionCard copies the session's current card into a deck. Session
// state is untouched either way; saved=false means the deck already had it.
func (h *Handler) SaveSessionCard(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sessionID")
	sess, ok := h.Sessions.Get(id)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	var requestData struct {
		DeckID string `json:"deckId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}

	saved, err := sess.SaveCurrent(h.Store, requestData.DeckID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"saved": saved})
}

func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	h.Sessions.End(r.PathValue("sessionID"))
	w.WriteHeader(http.StatusNoContent)
}
