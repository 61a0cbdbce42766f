// Package errors defines the single failure kind the client SDK raises
// itself: a request answered with a non-2xx status.
package errors

import (
	stderrors "errors"
	"fmt"
)

// RequestError reports a non-success HTTP status for a named operation.
// The response body is never read into it.
type RequestError struct {
	Op         string // logical operation, e.g. "players" or "player by id"
	StatusCode int
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %d", e.Op, e.StatusCode)
}

// StatusCode extracts the HTTP status from err when it wraps a *RequestError.
func StatusCode(err error) (int, bool) {
	var re *RequestError
	if stderrors.As(err, &re) {
		return re.StatusCode, true
	}
	return 0, false
}
