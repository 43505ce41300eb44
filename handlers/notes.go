package handlers

import (
	"net/http"
	"strconv"

	"studylab/notes"
)

func (h *Handler) GetSyllabus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, notes.Subjects())
}

func (h *Handler) GetChapters(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")
	semester, err := strconv.Atoi(r.PathValue("semester"))
	if err != nil {
		http.Error(w, "Invalid semester", http.StatusBadRequest)
		return
	}

	chapters := notes.ChaptersFor(subject, semester)
	if chapters == nil {
		http.Error(w, "Subject or semester not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, chapters)
}

func (h *Handler) GetChapter(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")
	semester, err := strconv.Atoi(r.PathValue("semester"))
	if err != nil {
		http.Error(w, "Invalid semester", http.StatusBadRequest)
		return
	}
	chapterID, err := strconv.Atoi(r.PathValue("chapterID"))
	if err != nil {
		http.Error(w, "Invalid chapter ID", http.StatusBadRequest)
		return
	}

	chapter, ok := notes.FindChapter(subject, semester, chapterID)
	if !ok {
		http.Error(w, "Chapter not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, chapter)
}
