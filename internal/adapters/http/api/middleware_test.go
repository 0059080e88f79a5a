package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	app "github.com/okian/notes/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGetErrorType(t *testing.T) {
	Convey("Given status codes", t, func() {
		So(getErrorType(500), ShouldEqual, "server_error")
		So(getErrorType(503), ShouldEqual, "server_error")
		So(getErrorType(429), ShouldEqual, "rate_limit")
		So(getErrorType(405), ShouldEqual, "method_not_allowed")
		So(getErrorType(404), ShouldEqual, "not_found")
		So(getErrorType(400), ShouldEqual, "client_error")
		So(getErrorType(200), ShouldEqual, "unknown")

		So(getErrorSeverity(500), ShouldEqual, "high")
		So(getErrorSeverity(404), ShouldEqual, "medium")
		So(getErrorSeverity(200), ShouldEqual, "low")
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	Convey("Given the request id middleware", t, func() {
		var seen string
		h := RequestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
			seen = app.RequestID(r.Context())
		}, "/x")

		Convey("When no id is sent", func() {
			w := httptest.NewRecorder()
			h(w, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

			Convey("Then a uuid is assigned", func() {
				So(len(seen), ShouldEqual, 36)
				So(w.Header().Get(HeaderRequestID), ShouldEqual, seen)
			})
		})

		Convey("When an oversized id is sent", func() {
			req := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
			req.Header.Set(HeaderRequestID, strings.Repeat("a", maxRequestIDLen+1))
			h(httptest.NewRecorder(), req)

			Convey("Then it is replaced", func() {
				So(len(seen), ShouldEqual, 36)
			})
		})
	})
}

func TestResponseWriter(t *testing.T) {
	Convey("Given a wrapped writer", t, func() {
		rec := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

		Convey("When writing without an explicit header", func() {
			_, err := rw.Write([]byte("x"))

			Convey("Then the status stays 200", func() {
				So(err, ShouldBeNil)
				So(rw.statusCode, ShouldEqual, http.StatusOK)
				So(rw.Unwrap(), ShouldEqual, rec)
			})
		})

		Convey("When the header is written", func() {
			rw.WriteHeader(http.StatusMethodNotAllowed)

			Convey("Then the status is captured", func() {
				So(rw.statusCode, ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})
}
