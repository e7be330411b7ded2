package penman

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is wrapped by every *DecodeError.
	ErrDecode = errors.New("penman: decode error")

	// ErrEmptyGraph is returned when encoding a graph without a top.
	ErrEmptyGraph = errors.New("penman: graph has no top")

	// ErrDisconnected is returned when some triples cannot be reached from top.
	ErrDisconnected = errors.New("penman: graph is disconnected")
)

// DecodeError reports malformed notation at a byte offset of the decoded text.
// The resilient Decoder records these and resumes at Offset+1.
type DecodeError struct {
	Offset int
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("penman: decode error at offset %d: %s", e.Offset, e.Msg)
}

// Unwrap lets errors.Is(err, ErrDecode) match.
func (e *DecodeError) Unwrap() error { return ErrDecode }
