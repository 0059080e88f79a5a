package api

import (
	"net/http"
)

// RootHandler serves the API root for every method.
type RootHandler struct {
	deps Dependencies
}

// NewRootHandler creates a new API root handler.
func NewRootHandler(deps Dependencies) *RootHandler {
	return &RootHandler{deps: deps}
}

// HandleAny handles any request to /api/. It writes nothing itself; the
// error from the dependency is serialized by the router's error handler.
func (h *RootHandler) HandleAny(_ http.ResponseWriter, r *http.Request) error {
	return h.deps.APIRoot(r.Context(), r.Method)
}
