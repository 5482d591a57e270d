package binkv

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated          = errors.New("buffer truncated")
	ErrBadTag             = errors.New("unrecognized type tag")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnbalanced         = errors.New("close tag without matching open")
	ErrTrailingData       = errors.New("unexpected data after padding tag")
	ErrEmbeddedNull       = errors.New("embedded NUL byte in string")
)

// DecodeError reports where in the buffer decoding failed. For
// tag-related failures Found is the tag byte actually seen and
// Expected names what the decoder wanted at that position.
type DecodeError struct {
	Offset   int
	Found    byte
	Expected string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("offset %d: %v (want %s, found 0x%02x)", e.Offset, e.Err, e.Expected, e.Found)
	}
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
