package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"studylab/session"
	"studylab/store"
	"studylab/tutor"
)

// Handler carries the service's long-lived components into the HTTP layer.
type Handler struct {
	Store    *store.Store
	Sessions *session.Manager
	Tutor    *tutor.Client
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Encoding response failed:", err)
	}
}

// writeError maps the service error taxonomy onto HTTP statuses: invalid
// input is 400, missing decks/cards are 404, tutor failures are 502,
// anything else is 500.
func writeError(w http.ResponseWriter, err error) {
	var validation *store.ValidationError
	var notFound *store.NotFoundError
	var service *tutor.ServiceError

	switch {
	case errors.As(err, &validation):
		http.Error(w, validation.Reason, http.StatusBadRequest)
	case errors.As(err, &notFound):
		http.Error(w, notFound.Reason, http.StatusNotFound)
	case errors.As(err, &service):
		log.Println("Tutor service error:", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		log.Println("Internal error:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
