package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"

	"github.com/okian/notes/internal/adapters/http/router"
	"github.com/okian/notes/internal/domain/note"
	"github.com/okian/notes/pkg/metrics"
)

// Error constants
var (
	ErrRender = errors.New("page render failed")
)

const pageNotesIndex = "notes_index"

// LinkSource provides the links listed on the notes index.
type LinkSource interface {
	IndexLinks() iter.Seq[note.Link]
}

// Register attaches the page routes to rt.
func Register(_ context.Context, rt *router.Router, src LinkSource) {
	if rt == nil {
		panic("router is nil")
	}
	if src == nil {
		panic("link source is nil")
	}
	rt.Get(note.IndexPath, NewIndexHandler(src).HandleIndex)
}

// IndexHandler serves the notes index page.
type IndexHandler struct {
	src LinkSource
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(src LinkSource) *IndexHandler {
	return &IndexHandler{src: src}
}

// HandleIndex handles GET /notes. The page is rendered to a buffer first so
// a failed render never leaves a partial page on the wire.
func (h *IndexHandler) HandleIndex(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := NotesIndex(h.src.IndexLinks()).Render(r.Context(), &buf); err != nil {
		metrics.RecordPageRenderError(pageNotesIndex)
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	metrics.RecordPageRender(pageNotesIndex)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
	return nil
}
