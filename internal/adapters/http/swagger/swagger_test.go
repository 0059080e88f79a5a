package swagger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/notes/internal/adapters/http/router"
	"github.com/smartystreets/goconvey/convey"
)

func TestSwaggerHandler(t *testing.T) {
	convey.Convey("Given a router", t, func() {
		ctx := context.Background()
		rt := router.New()

		convey.Convey("When registering the document", func() {
			doc := Register(ctx, rt)

			convey.Convey("Then the parsed document describes the note resource", func() {
				convey.So(doc, convey.ShouldNotBeNil)
				convey.So(doc.Paths.Find("/api/data/note/{id}"), convey.ShouldNotBeNil)
				convey.So(doc.Paths.Find("/notes"), convey.ShouldNotBeNil)
			})

			convey.Convey("And it should serve /openapi.yaml", func() {
				req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", http.NoBody)
				w := httptest.NewRecorder()
				rt.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "application/yaml; charset=utf-8")
				convey.So(w.Body.Bytes(), convey.ShouldResemble, OpenAPI)
			})
		})
	})
}

func TestLoad(t *testing.T) {
	convey.Convey("Given documents", t, func() {
		ctx := context.Background()

		convey.Convey("When the document is not YAML", func() {
			_, err := Load(ctx, []byte("openapi: [unterminated"))
			convey.So(errors.Is(err, ErrInvalidDocument), convey.ShouldBeTrue)
		})

		convey.Convey("When the document lacks required fields", func() {
			_, err := Load(ctx, []byte("openapi: 3.0.3\npaths: {}\n"))
			convey.So(errors.Is(err, ErrInvalidDocument), convey.ShouldBeTrue)
		})
	})
}

func TestSwaggerHandlerWithNilRouter(t *testing.T) {
	convey.Convey("Given a nil router", t, func() {
		convey.So(func() { Register(context.Background(), nil) }, convey.ShouldPanic)
	})
}
