package router

import (
	"net/http"
)

// StatusError attaches an HTTP status to an error.
type StatusError struct {
	Status int
	Err    error
}

// WithStatus wraps err so the error handler writes status.
func WithStatus(status int, err error) error {
	return &StatusError{Status: status, Err: err}
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return http.StatusText(e.Status)
	}
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error { return e.Err }

// StatusCode implements StatusCoder.
func (e *StatusError) StatusCode() int { return e.Status }
