package fetch

import (
	"errors"
	"fmt"
)

// StatusError is returned when an upstream answers with a non-2xx status.
// The body is not parsed; a short excerpt is kept for diagnostics.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// DecodeError is returned when a 2xx body is not valid JSON for the target type.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RetryError is the final error after every attempt failed. Unwrap yields the
// cause of the last attempt.
type RetryError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("fetch %s: giving up after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

func (e *RetryError) Unwrap() error { return e.Err }

// AsStatusError unwraps err into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
