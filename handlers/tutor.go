package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"studylab/models"
)

const maxImageBytes = 10 << 20

// TutorChat streams one tutoring reply as server-sent events: a "data" event
// per text fragment, then "[DONE]". A failure after streaming has begun is
// reported as an "error" event since the status line is already gone.
func (h *Handler) TutorChat(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Message  string               `json:"message"`
		History  []models.ChatMessage `json:"history"`
		Image    string               `json:"image"`
		MimeType string               `json:"mimeType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}
	if requestData.Message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	var image []byte
	if requestData.Image != "" {
		decoded, err := base64.StdEncoding.DecodeString(requestData.Image)
		if err != nil {
			http.Error(w, "Image must be base64", http.StatusBadRequest)
			return
		}
		image = decoded
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	err := h.Tutor.StreamReply(r.Context(), requestData.Message, requestData.History, image, requestData.MimeType, func(chunk string) {
		payload, err := json.Marshal(map[string]string{"text": chunk})
		if err != nil {
			return
		}
		io.WriteString(w, "data: "+string(payload)+"\n\n")
		flusher.Flush()
	})
	if err != nil {
		log.Println("Tutor stream failed:", err)
		io.WriteString(w, "event: error\ndata: tutor request failed\n\n")
		flusher.Flush()
		return
	}

	io.WriteString(w, "data: [DONE]\n\n")
	flusher.Flush()
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Count int    `json:"count"`
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}
	if requestData.Topic == "" {
		http.Error(w, "Topic is required", http.StatusBadRequest)
		return
	}
	if requestData.Count <= 0 {
		requestData.Count = 5
	}

	questions, err := h.Tutor.GenerateQuiz(r.Context(), requestData.Count, requestData.Topic)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) GenerateSubjectiveQuiz(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Count int    `json:"count"`
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}
	if requestData.Topic == "" {
		http.Error(w, "Topic is required", http.StatusBadRequest)
		return
	}
	if requestData.Count <= 0 {
		requestData.Count = 5
	}

	questions, err := h.Tutor.GenerateSubjectiveQuiz(r.Context(), requestData.Count, requestData.Topic)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}
	if requestData.Topic == "" {
		http.Error(w, "Topic is required", http.StatusBadRequest)
		return
	}

	cards, err := h.Tutor.GenerateFlashcards(r.Context(), requestData.Topic)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *Handler) CondenseNotes(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}
	if requestData.Notes == "" {
		http.Error(w, "Notes text is required", http.StatusBadRequest)
		return
	}

	summary, err := h.Tutor.CondenseNotes(r.Context(), requestData.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

// AnalyzeImage accepts a multipart upload of a problem photo and returns the
// tutor's worked solution.
func (h *Handler) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		http.Error(w, "Could not parse upload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		http.Error(w, "Could not read upload", http.StatusInternalServerError)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	analysis, err := h.Tutor.AnalyzeImage(r.Context(), image, mimeType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}
