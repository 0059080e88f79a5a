package probe

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Acknowledgement bodies the note resource must return byte for byte.
const (
	bodyOK     = `{"message":"ok"}`
	bodyPosted = `{"message":"posted"}`
)

const indexSize = 15

var indexLinkRe = regexp.MustCompile(`<li><a href="([^"]*)">([^<]*)</a></li>`)

// buildChecks returns the note resource and API root checks for n numeric
// ids plus one uuid id per numeric id.
func buildChecks(n int) []Check {
	ids := make([]string, 0, n*2)
	for i := range n {
		ids = append(ids, strconv.Itoa(i), uuid.NewString())
	}

	checks := make([]Check, 0, len(ids)*3+4)
	for _, id := range ids {
		path := PathNote + id
		checks = append(checks,
			Check{Name: "get note " + id, Method: http.MethodGet, Path: path, WantStatus: http.StatusOK, WantBody: bodyOK},
			Check{Name: "post note " + id, Method: http.MethodPost, Path: path, Body: `{"id":"` + id + `"}`, WantStatus: http.StatusOK, WantBody: bodyPosted},
			Check{Name: "delete note " + id, Method: http.MethodDelete, Path: path, WantStatus: http.StatusMethodNotAllowed},
		)
	}
	for _, m := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		checks = append(checks, Check{Name: strings.ToLower(m) + " api root", Method: m, Path: PathAPIRoot})
	}
	return checks
}

// verifyResponse checks status and body against the check's expectations.
func verifyResponse(check Check, status int, body string) error {
	if check.WantStatus == 0 {
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			return fmt.Errorf("%w: %s: got success status %d", ErrUnexpected, check.Name, status)
		}
		return nil
	}
	if status != check.WantStatus {
		return fmt.Errorf("%w: %s: status %d, want %d", ErrUnexpected, check.Name, status, check.WantStatus)
	}
	if check.WantBody != "" && body != check.WantBody {
		return fmt.Errorf("%w: %s: body %q, want %q", ErrUnexpected, check.Name, body, check.WantBody)
	}
	return nil
}

// parseIndexLinks extracts (href, label) pairs from the notes index page.
func parseIndexLinks(page string) (hrefs, labels []string) {
	for _, m := range indexLinkRe.FindAllStringSubmatch(page, -1) {
		hrefs = append(hrefs, m[1])
		labels = append(labels, m[2])
	}
	return hrefs, labels
}

// verifyIndex checks the page lists /notes/0../notes/14 in order and that a
// second render is byte-identical to the first.
func verifyIndex(first, second string) error {
	hrefs, labels := parseIndexLinks(first)
	if len(hrefs) != indexSize {
		return fmt.Errorf("%w: %d links, want %d", ErrIndexMismatch, len(hrefs), indexSize)
	}
	for i := range indexSize {
		wantHref := PathNotesIdx + "/" + strconv.Itoa(i)
		wantLabel := "Note " + strconv.Itoa(i)
		if hrefs[i] != wantHref || labels[i] != wantLabel {
			return fmt.Errorf("%w: item %d is %q -> %q, want %q -> %q",
				ErrIndexMismatch, i, labels[i], hrefs[i], wantLabel, wantHref)
		}
	}
	if first != second {
		return fmt.Errorf("%w: renders differ", ErrIndexMismatch)
	}
	return nil
}

// failedChecks returns the names of failed results in check order.
func failedChecks(results []Result) []string {
	var names []string
	for _, r := range results {
		if r.Err != nil {
			names = append(names, r.Check.Name)
		}
	}
	return names
}
