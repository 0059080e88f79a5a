package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func ok(body string) HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) error {
		_, _ = w.Write([]byte(body))
		return nil
	}
}

func serve(rt http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	w := httptest.NewRecorder()
	rt.ServeHTTP(w, req)
	return w
}

func TestRouterDispatch(t *testing.T) {
	Convey("Given a router with method routes on a parameterized pattern", t, func() {
		rt := New()
		rt.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) error {
			_, _ = w.Write([]byte("get " + r.PathValue("id")))
			return nil
		})
		rt.Post("/items/{id}", ok("post"))

		Convey("When the method matches", func() {
			Convey("Then the registered handler runs", func() {
				So(serve(rt, http.MethodGet, "/items/42").Body.String(), ShouldEqual, "get 42")
				So(serve(rt, http.MethodPost, "/items/abc").Body.String(), ShouldEqual, "post")
			})
		})

		Convey("When the method has no handler", func() {
			w := serve(rt, http.MethodDelete, "/items/42")

			Convey("Then the router answers 405 with an Allow header", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
				So(w.Header().Get("Allow"), ShouldEqual, "GET, POST")
			})
		})

		Convey("When the path does not match any pattern", func() {
			Convey("Then the router answers 404", func() {
				So(serve(rt, http.MethodGet, "/other").Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("And the route table lists registrations in order", func() {
			So(rt.Routes(), ShouldResemble, []Route{
				{Pattern: "/items/{id}", Method: http.MethodGet},
				{Pattern: "/items/{id}", Method: http.MethodPost},
			})
		})
	})
}

func TestRouterCatchAll(t *testing.T) {
	Convey("Given a catch-all route", t, func() {
		rt := New()
		rt.Any("/api/{$}", ok("any"))
		rt.Get("/mixed", ok("get"))
		rt.Any("/mixed", ok("fallback"))

		Convey("Then every method reaches it", func() {
			for _, m := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
				So(serve(rt, m, "/api/").Body.String(), ShouldEqual, "any")
			}
		})

		Convey("And a specific method wins over the catch-all", func() {
			So(serve(rt, http.MethodGet, "/mixed").Body.String(), ShouldEqual, "get")
			So(serve(rt, http.MethodPut, "/mixed").Body.String(), ShouldEqual, "fallback")
		})
	})
}

func TestRouterErrors(t *testing.T) {
	Convey("Given handlers that fail", t, func() {
		Convey("When the default error handler is used", func() {
			rt := New()
			rt.Any("/boom", func(http.ResponseWriter, *http.Request) error { return errors.New("boom") })
			rt.Get("/teapot", func(http.ResponseWriter, *http.Request) error {
				return WithStatus(http.StatusTeapot, errors.New("short and stout"))
			})

			Convey("Then plain errors become 500", func() {
				w := serve(rt, http.MethodPost, "/boom")
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, "boom")
			})

			Convey("And status errors choose their status", func() {
				So(serve(rt, http.MethodGet, "/teapot").Code, ShouldEqual, http.StatusTeapot)
			})
		})

		Convey("When a custom error handler is configured", func() {
			var got error
			rt := New(WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
				got = err
				w.WriteHeader(http.StatusBadGateway)
			}))
			sentinel := errors.New("sentinel")
			rt.Any("/fail", func(http.ResponseWriter, *http.Request) error { return sentinel })

			w := serve(rt, http.MethodGet, "/fail")

			Convey("Then it receives the handler's error", func() {
				So(w.Code, ShouldEqual, http.StatusBadGateway)
				So(errors.Is(got, sentinel), ShouldBeTrue)
			})
		})
	})
}

func TestRouterMiddleware(t *testing.T) {
	Convey("Given middleware", t, func() {
		var calls []string
		mw := func(name string) Middleware {
			return func(next http.HandlerFunc, endpoint string) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					calls = append(calls, name+":"+endpoint)
					next(w, r)
				}
			}
		}
		rt := New(WithMiddleware(mw("outer"), mw("inner")))
		rt.Get("/x/{id}", ok("x"))

		Convey("When a routed request is served", func() {
			serve(rt, http.MethodGet, "/x/1")

			Convey("Then middleware runs outermost first with the pattern as endpoint", func() {
				So(calls, ShouldResemble, []string{"outer:/x/{id}", "inner:/x/{id}"})
			})
		})

		Convey("When the method is not allowed", func() {
			w := serve(rt, http.MethodDelete, "/x/1")

			Convey("Then middleware still observes the request", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
				So(len(calls), ShouldEqual, 2)
			})
		})
	})
}

func TestRouterRegistrationPanics(t *testing.T) {
	Convey("Given a router", t, func() {
		rt := New()
		rt.Get("/dup", ok(""))
		rt.Any("/dup", ok(""))

		So(func() { rt.Get("/dup", ok("")) }, ShouldPanic)
		So(func() { rt.Any("/dup", ok("")) }, ShouldPanic)
		So(func() { rt.Get("/nil", nil) }, ShouldPanic)
		So(func() { rt.Handle(http.MethodGet, "GET /with-method", ok("")) }, ShouldPanic)
	})
}

func TestStatusOf(t *testing.T) {
	Convey("Given errors", t, func() {
		So(StatusOf(errors.New("x")), ShouldEqual, http.StatusInternalServerError)
		So(StatusOf(WithStatus(http.StatusNotFound, nil)), ShouldEqual, http.StatusNotFound)
		So(StatusOf(WithStatus(http.StatusOK, nil)), ShouldEqual, http.StatusInternalServerError)
		So(WithStatus(http.StatusNotFound, nil).Error(), ShouldEqual, "Not Found")
	})
}
