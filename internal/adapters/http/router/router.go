// Package router maps (path pattern, method) pairs to handlers that return
// errors, with one designated error handler and one method-not-allowed handler.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// AnyMethod registers a catch-all handler that matches every method on a pattern.
const AnyMethod = "*"

// HandlerFunc handles a request. A non-nil error is passed to the router's
// error handler; the handler must not have written a response in that case.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler writes the response for a failed handler.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware wraps a routed handler. endpoint is the pattern the route was
// registered under.
type Middleware func(next http.HandlerFunc, endpoint string) http.HandlerFunc

// StatusCoder lets an error choose the status the default error handler writes.
type StatusCoder interface {
	StatusCode() int
}

// Route describes one registration.
type Route struct {
	Pattern string
	Method  string
}

// Router is an explicit route table backed by http.ServeMux for path matching.
// Method dispatch is done by the router so ServeMux never sees method-qualified patterns.
type Router struct {
	mux              *http.ServeMux
	patterns         map[string]*pathRoutes
	order            []Route
	middleware       []Middleware
	onError          ErrorHandler
	methodNotAllowed http.HandlerFunc
}

type pathRoutes struct {
	pattern string
	methods map[string]HandlerFunc
	any     HandlerFunc
}

// Option configures a Router.
type Option func(*Router)

// WithErrorHandler sets the handler for errors returned by routed handlers.
func WithErrorHandler(h ErrorHandler) Option {
	return func(rt *Router) {
		if h != nil {
			rt.onError = h
		}
	}
}

// WithMethodNotAllowed sets the handler used when a pattern matches but no
// handler is registered for the method. The Allow header is already set.
func WithMethodNotAllowed(h http.HandlerFunc) Option {
	return func(rt *Router) {
		if h != nil {
			rt.methodNotAllowed = h
		}
	}
}

// WithMiddleware appends middleware applied to every pattern, outermost first.
func WithMiddleware(mw ...Middleware) Option {
	return func(rt *Router) {
		rt.middleware = append(rt.middleware, mw...)
	}
}

// New creates an empty Router.
func New(opts ...Option) *Router {
	rt := &Router{
		mux:              http.NewServeMux(),
		patterns:         make(map[string]*pathRoutes),
		onError:          DefaultErrorHandler,
		methodNotAllowed: defaultMethodNotAllowed,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Handle registers h for method on pattern. Patterns use http.ServeMux syntax
// without a method prefix, e.g. "/api/data/note/{id}". Registering the same
// (pattern, method) twice panics.
func (rt *Router) Handle(method, pattern string, h HandlerFunc) {
	if h == nil {
		panic("router: nil handler for " + method + " " + pattern)
	}
	if strings.ContainsAny(pattern, " \t") {
		panic("router: pattern must not carry a method: " + pattern)
	}
	method = strings.ToUpper(method)

	pr, ok := rt.patterns[pattern]
	if !ok {
		pr = &pathRoutes{pattern: pattern, methods: make(map[string]HandlerFunc)}
		rt.patterns[pattern] = pr
		rt.mux.HandleFunc(pattern, rt.wrap(pr))
	}

	if method == AnyMethod {
		if pr.any != nil {
			panic(fmt.Sprintf("router: duplicate catch-all for %s", pattern))
		}
		pr.any = h
	} else {
		if _, dup := pr.methods[method]; dup {
			panic(fmt.Sprintf("router: duplicate route %s %s", method, pattern))
		}
		pr.methods[method] = h
	}
	rt.order = append(rt.order, Route{Pattern: pattern, Method: method})
}

// Get registers a GET handler.
func (rt *Router) Get(pattern string, h HandlerFunc) { rt.Handle(http.MethodGet, pattern, h) }

// Post registers a POST handler.
func (rt *Router) Post(pattern string, h HandlerFunc) { rt.Handle(http.MethodPost, pattern, h) }

// Any registers a catch-all handler for every method on pattern.
func (rt *Router) Any(pattern string, h HandlerFunc) { rt.Handle(AnyMethod, pattern, h) }

// HandleHTTP registers a plain http.Handler for method on pattern.
func (rt *Router) HandleHTTP(method, pattern string, h http.Handler) {
	rt.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request) error {
		h.ServeHTTP(w, r)
		return nil
	})
}

// Routes returns the registrations in the order they were made.
func (rt *Router) Routes() []Route {
	return slices.Clone(rt.order)
}

// ServeHTTP implements http.Handler.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

func (rt *Router) wrap(pr *pathRoutes) http.HandlerFunc {
	var h http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
		rt.dispatch(pr, w, r)
	}
	for i := len(rt.middleware) - 1; i >= 0; i-- {
		h = rt.middleware[i](h, pr.pattern)
	}
	return h
}

func (rt *Router) dispatch(pr *pathRoutes, w http.ResponseWriter, r *http.Request) {
	h, ok := pr.methods[r.Method]
	if !ok {
		h = pr.any
	}
	if h == nil {
		w.Header().Set("Allow", strings.Join(pr.allowed(), ", "))
		rt.methodNotAllowed(w, r)
		return
	}
	if err := h(w, r); err != nil {
		rt.onError(w, r, err)
	}
}

func (pr *pathRoutes) allowed() []string {
	methods := make([]string, 0, len(pr.methods))
	for m := range pr.methods {
		methods = append(methods, m)
	}
	slices.Sort(methods)
	return methods
}

// DefaultErrorHandler writes the error text with the status chosen by a
// StatusCoder in the chain, or 500.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, err.Error(), StatusOf(err))
}

// StatusOf returns the status an error asks for, or 500.
func StatusOf(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		if code := sc.StatusCode(); code >= http.StatusBadRequest {
			return code
		}
	}
	return http.StatusInternalServerError
}

func defaultMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
