package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"studylab/models"
)

func (h *Handler) GetDecks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Decks())
}

func (h *Handler) GetDeckByID(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")

	deck, err := h.Store.Deck(deckID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deck)
}

func (h *Handler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Name string `json:"name"`
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}

	deck, err := h.Store.CreateDeck(requestData.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, deck)
}

// RequestDeleteDeck is step one of deck deletion: it hands back a one-time
// confirmation token. The DELETE itself only succeeds with that token in
// X-Confirm-Token, so a stray click can never destroy a deck.
func (h *Handler) RequestDeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")

	token, err := h.Store.RequestDeleteDeck(deckID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")
	token := r.Header.Get("X-Confirm-Token")

	if err := h.Store.ConfirmDeleteDeck(deckID, token); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddCard(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")

	var requestData struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}

	if err := h.Store.AddCard(deckID, requestData.Front, requestData.Back); err != nil {
		writeError(w, err)
		return
	}

	deck, err := h.Store.Deck(deckID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, deck)
}

func (h *Handler) ReplaceCard(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "Invalid card index", http.StatusBadRequest)
		return
	}

	var requestData struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}

	if err := h.Store.ReplaceCard(deckID, index, requestData.Front, requestData.Back); err != nil {
		writeError(w, err)
		return
	}

	deck, err := h.Store.Deck(deckID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deck)
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "Invalid card index", http.StatusBadRequest)
		return
	}

	if err := h.Store.DeleteCard(deckID, index); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveCardToDeck copies a card into a deck, skipping it when a card with the
// same front text is already there. The response reports which happened.
func (h *Handler) SaveCardToDeck(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")

	var card struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	}
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}

	saved, err := h.Store.SaveCardToDeck(deckID, models.Flashcard{Front: card.Front, Back: card.Back})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"saved": saved})
}
