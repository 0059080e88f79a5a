package probe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/okian/notes/internal/adapters/http/api"
	"github.com/okian/notes/internal/adapters/http/site"
	app "github.com/okian/notes/internal/app"
	"github.com/okian/notes/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func newService() *httptest.Server {
	ctx := context.Background()
	svc := app.New()
	rt := api.NewRouter(logger.Nop())
	api.NewServer(svc).Register(ctx, rt)
	site.Register(ctx, rt, svc)
	return httptest.NewServer(rt)
}

func testConfig(url string) *Config {
	return &Config{
		BaseURL: url + "/",
		IDs:     3,
		Workers: 4,
		Timeout: 5 * time.Second,
		Logger:  logger.Nop(),
	}
}

func TestRunAgainstService(t *testing.T) {
	Convey("Given a running notes service", t, func() {
		srv := newService()
		defer srv.Close()

		Convey("When the probe runs", func() {
			err := Run(context.Background(), testConfig(srv.URL))

			Convey("Then every check passes", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestRunDetectsFailures(t *testing.T) {
	Convey("Given a service whose API root succeeds", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("{}")) })
		mux.HandleFunc("/api/", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("fine")) })
		srv := httptest.NewServer(mux)
		defer srv.Close()

		Convey("When the probe runs", func() {
			err := Run(context.Background(), testConfig(srv.URL))

			Convey("Then it reports the failed checks", func() {
				So(errors.Is(err, ErrChecksFailed), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "get api root")
				So(err.Error(), ShouldContainSubstring, "notes index")
			})
		})
	})

	Convey("Given an unhealthy service", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		err := Run(context.Background(), testConfig(srv.URL))
		So(errors.Is(err, ErrUnhealthy), ShouldBeTrue)
	})

	Convey("Given an invalid config", t, func() {
		cfg := testConfig("http://localhost")
		cfg.Workers = 0
		So(errors.Is(Run(context.Background(), cfg), ErrInvalidConfig), ShouldBeTrue)
	})
}

func TestBuildChecks(t *testing.T) {
	Convey("Given two numeric ids", t, func() {
		checks := buildChecks(2)

		Convey("Then each numeric and uuid id gets get, post and delete checks plus four root checks", func() {
			So(len(checks), ShouldEqual, 2*2*3+4)
			So(checks[0].Path, ShouldEqual, "/api/data/note/0")
			So(checks[0].WantBody, ShouldEqual, `{"message":"ok"}`)
			So(checks[2].WantStatus, ShouldEqual, http.StatusMethodNotAllowed)
			So(checks[len(checks)-1].WantStatus, ShouldEqual, 0)
		})
	})
}

func TestVerifyResponse(t *testing.T) {
	Convey("Given expectations", t, func() {
		exact := Check{Name: "get", WantStatus: 200, WantBody: `{"message":"ok"}`}
		failing := Check{Name: "root"}

		So(verifyResponse(exact, 200, `{"message":"ok"}`), ShouldBeNil)
		So(errors.Is(verifyResponse(exact, 200, `{"message":"ok"}`+"\n"), ErrUnexpected), ShouldBeTrue)
		So(errors.Is(verifyResponse(exact, 500, ""), ErrUnexpected), ShouldBeTrue)
		So(verifyResponse(failing, 500, ""), ShouldBeNil)
		So(verifyResponse(failing, 404, ""), ShouldBeNil)
		So(errors.Is(verifyResponse(failing, 204, ""), ErrUnexpected), ShouldBeTrue)
	})
}

func TestVerifyIndex(t *testing.T) {
	Convey("Given rendered index pages", t, func() {
		var b strings.Builder
		b.WriteString("<ul>")
		for i := range 15 {
			b.WriteString(`<li><a href="/notes/`)
			b.WriteString(strconv.Itoa(i))
			b.WriteString(`">Note `)
			b.WriteString(strconv.Itoa(i))
			b.WriteString(`</a></li>`)
		}
		b.WriteString("</ul>")
		page := b.String()

		So(verifyIndex(page, page), ShouldBeNil)
		So(errors.Is(verifyIndex(page, page+" "), ErrIndexMismatch), ShouldBeTrue)

		short := strings.Replace(page, `<li><a href="/notes/14">Note 14</a></li>`, "", 1)
		So(errors.Is(verifyIndex(short, short), ErrIndexMismatch), ShouldBeTrue)

		swapped := strings.Replace(page, `href="/notes/3"`, `href="/notes/4"`, 1)
		So(errors.Is(verifyIndex(swapped, swapped), ErrIndexMismatch), ShouldBeTrue)
	})
}
