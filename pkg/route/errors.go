package route

import (
	"errors"
	"fmt"
)

// RequestError is returned by Search for any failure: transport errors, non-2xx status
// codes and bodies that cannot be decoded.
type RequestError struct {
	Destination string
	Op          string // "send", "status", "read", "decode"
	StatusCode  int
	Err         error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("route search for %q failed: unexpected status code: %d", e.Destination, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("route search for %q failed to %s: %v", e.Destination, e.Op, e.Err)
	default:
		return fmt.Sprintf("route search for %q failed to %s", e.Destination, e.Op)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// FailureMessage turns a Search error into the text shown to the user.
func FailureMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Err != nil {
		return fmt.Sprintf("Failed to fetch data: %v", reqErr.Err)
	}
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("Failed to fetch data: service answered with status %d", reqErr.StatusCode)
	}
	return fmt.Sprintf("Failed to fetch data: %v", err)
}
