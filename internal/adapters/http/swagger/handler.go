// Package swagger serves the embedded OpenAPI document.
package swagger

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/okian/notes/internal/adapters/http/router"
)

// Error constants.
var (
	ErrInvalidDocument = errors.New("invalid openapi document")
)

// PathOpenAPI is where the document is served.
const PathOpenAPI = "/openapi.yaml"

// Load parses and validates doc.
func Load(ctx context.Context, doc []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	t, err := loader.LoadFromData(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := t.Validate(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return t, nil
}

// Register validates the embedded document and serves it at /openapi.yaml.
// It panics if the router is nil or the document is invalid.
func Register(ctx context.Context, rt *router.Router) *openapi3.T {
	if rt == nil {
		panic("router is nil")
	}
	doc, err := Load(ctx, OpenAPI)
	if err != nil {
		panic(err)
	}

	rt.Get(PathOpenAPI, func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(OpenAPI)
		return nil
	})
	return doc
}
