package apiclient

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned by ListStrict when a list response body matches
// none of the recognized envelope shapes. The lenient List treats the same
// condition as an empty collection.
var ErrShapeMismatch = errors.New("apiclient: unrecognized list payload shape")

// NetworkError wraps a transport-level failure (connection refused, DNS, and
// similar) as opposed to a response the server actually produced.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError carries a non-2xx HTTP response. Message is sniffed from the
// body's "error" then "message" keys, falling back to a generic string.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}
