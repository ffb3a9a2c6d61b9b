// Package apierr defines the typed failure produced by remote API calls.
// Retry classification depends only on the optional HTTP status carried here,
// never on response body content or ad-hoc error fields.
package apierr

import (
	"errors"
	"fmt"
)

// Error describes one failed remote call. Status is the HTTP status code of
// the response, or 0 when no response was observed at all (a network-level
// fault such as a refused connection or a client-side timeout).
type Error struct {
	Op     string // short operation name, e.g. "create polyanet"
	Status int
	Body   string // truncated response body, for logs only
	Err    error  // underlying transport error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Body != "":
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.Status, e.Body)
	default:
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
}

// Unwrap exposes the underlying transport error to errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode extracts the HTTP status from anywhere in an error chain. The
// second return is false when the chain carries no *Error, or when the *Error
// observed no response.
func StatusCode(err error) (int, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Status, true
	}
	return 0, false
}
