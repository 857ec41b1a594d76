package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyBody reports a 2xx response with no payload where the caller
// expected one.
var ErrEmptyBody = errors.New("empty response body")

// TransportError is a fault below HTTP: dial failure, timeout, cancelled
// context. The request never produced a status code.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response. Message carries the server's own
// message when one could be decoded, else a generic fallback.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// DecodeError is a 2xx response whose body failed to decode.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode response: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err is an HTTP 401. Callers use this to
// trigger a re-login flow; the pipeline itself never retries or refreshes.
func IsUnauthorized(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusUnauthorized
}
