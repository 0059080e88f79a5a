// Package service provides the core business service that implements
// the dependencies required by the HTTP adapters.
package service

import (
	"context"
	"iter"

	"github.com/okian/notes/internal/domain/note"
	"github.com/okian/notes/pkg/logger"
	"github.com/okian/notes/pkg/metrics"
)

type requestIDKey struct{}

// WithRequestID returns a context carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Service implements the notes operations. It holds no mutable state and is
// safe for concurrent use.
type Service struct {
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets the logger the API root diagnostic line is written to.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. Without WithLogger records are discarded.
func New(opts ...Option) *Service {
	s := &Service{logger: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadNote acknowledges a read of the note identified by id. The id is not
// inspected; every id yields the same acknowledgement.
func (s *Service) ReadNote(_ context.Context, _ string) note.Ack {
	ack := note.ReadAck()
	metrics.RecordNoteAck(ack.Message)
	return ack
}

// PostNote acknowledges a write to the note identified by id. Neither the id
// nor any request payload is inspected.
func (s *Service) PostNote(_ context.Context, _ string) note.Ack {
	ack := note.PostAck()
	metrics.RecordNoteAck(ack.Message)
	return ack
}

// APIRoot logs the fixed diagnostic line and fails with note.ErrAPIRoot.
// It never succeeds.
func (s *Service) APIRoot(ctx context.Context, method string) error {
	fields := []logger.Field{logger.String("method", method)}
	if id := RequestID(ctx); id != "" {
		fields = append(fields, logger.String("request_id", id))
	}
	s.logger.Info(ctx, note.RootLogLine, fields...)
	metrics.RecordAPIRootFailure()
	return note.ErrAPIRoot
}

// IndexLinks returns the links shown on the notes index page.
func (s *Service) IndexLinks() iter.Seq[note.Link] {
	return note.IndexLinks()
}
