// Package note holds the note resource payloads and the notes index links.
package note

import "errors"

// Fixed acknowledgement messages returned by the note resource.
const (
	MessageOK     = "ok"
	MessagePosted = "posted"
)

// RootLogLine is written on every request that reaches the API root.
const RootLogLine = "got an API route"

// ErrAPIRoot is the failure every API root request ends with.
var ErrAPIRoot = errors.New("Something bad happened") //nolint:staticcheck // fixed wire message

// Ack is the single-field payload returned by the note resource.
type Ack struct {
	Message string `json:"message"`
}

// ReadAck is returned for reads of any note identifier.
func ReadAck() Ack { return Ack{Message: MessageOK} }

// PostAck is returned for writes to any note identifier.
func PostAck() Ack { return Ack{Message: MessagePosted} }
