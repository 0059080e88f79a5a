// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/notes/internal/adapters/http/router"
	app "github.com/okian/notes/internal/app"
	"github.com/okian/notes/internal/domain/note"
	"github.com/okian/notes/pkg/logger"
)

// Route patterns.
const (
	PathNote    = "/api/data/note/{id}"
	PathAPIRoot = "/api/{$}"
	PathAPIBare = "/api"
	PathHealth  = "/healthz"
	PathMetrics = "/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ReadNote(ctx context.Context, id string) note.Ack
	PostNote(ctx context.Context, id string) note.Ack

	// APIRoot handles any request to the API root. It always returns an error.
	APIRoot(ctx context.Context, method string) error
}

// Server wires HTTP routes for the JSON API.
type Server struct {
	healthHandler *HealthHandler
	noteHandler   *NoteHandler
	rootHandler   *RootHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		noteHandler:   NewNoteHandler(deps),
		rootHandler:   NewRootHandler(deps),
	}
}

// NewRouter builds the router every adapter registers on: request ids and
// metrics on each route, JSON errors, and JSON 405 responses.
func NewRouter(log logger.Logger) *router.Router {
	if log == nil {
		log = logger.Nop()
	}
	return router.New(
		router.WithMiddleware(RequestIDMiddleware, MetricsMiddleware),
		router.WithErrorHandler(ErrorHandler(log)),
		router.WithMethodNotAllowed(handleMethodNotAllowed),
	)
}

// Register attaches the API routes to rt.
func (s *Server) Register(_ context.Context, rt *router.Router) {
	if rt == nil {
		panic("router is nil")
	}

	rt.Get(PathHealth, s.healthHandler.HandleHealth)
	rt.Get(PathNote, s.noteHandler.HandleGet)
	rt.Post(PathNote, s.noteHandler.HandlePost)
	rt.Any(PathAPIRoot, s.rootHandler.HandleAny)
	rt.Any(PathAPIBare, s.rootHandler.HandleAny)
}

// RegisterMetrics exposes the Prometheus registry at /metrics.
func (s *Server) RegisterMetrics(_ context.Context, rt *router.Router) {
	if rt == nil {
		panic("router is nil")
	}
	rt.HandleHTTP(http.MethodGet, PathMetrics, s.healthHandler.metrics)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes v as the complete body, without a trailing newline.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"code":"server_error","message":"encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// ErrorHandler returns the router error handler: it logs the failure and
// writes a JSON error with the status the error asks for (500 by default).
func ErrorHandler(log logger.Logger) router.ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		status := router.StatusOf(err)
		log.Error(r.Context(), "request failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("request_id", app.RequestID(r.Context())),
			logger.Int("status", status),
			logger.Error(err),
		)
		writeError(w, status, getErrorType(status), err)
	}
}

func handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
}
