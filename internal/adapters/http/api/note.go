package api

import (
	"net/http"
)

// NoteHandler serves the note resource.
type NoteHandler struct {
	deps Dependencies
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(deps Dependencies) *NoteHandler {
	return &NoteHandler{deps: deps}
}

// HandleGet handles GET /api/data/note/{id}.
func (h *NoteHandler) HandleGet(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, h.deps.ReadNote(r.Context(), r.PathValue("id")))
	return nil
}

// HandlePost handles POST /api/data/note/{id}. The body is never read.
func (h *NoteHandler) HandlePost(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, h.deps.PostNote(r.Context(), r.PathValue("id")))
	return nil
}
