// Package site serves the server-rendered HTML pages.
package site

import (
	"context"
	"io"
	"iter"

	"github.com/a-h/templ"

	"github.com/okian/notes/internal/domain/note"
)

// NotesIndex renders the notes index: a heading and one list item per link.
func NotesIndex(links iter.Seq[note.Link]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sw := &stickyWriter{w: w}
		sw.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>Notes</title></head><body><div><h1>Index page</h1><ul>`)
		for link := range links {
			if err := ctx.Err(); err != nil {
				return err
			}
			sw.WriteString(`<li><a href="`)
			sw.WriteString(templ.EscapeString(string(templ.URL(link.Href))))
			sw.WriteString(`">`)
			sw.WriteString(templ.EscapeString(link.Label))
			sw.WriteString(`</a></li>`)
		}
		sw.WriteString(`</ul></div></body></html>`)
		return sw.err
	})
}

// stickyWriter keeps the first write error and drops later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) WriteString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}
