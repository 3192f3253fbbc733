package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse marks structurally invalid upstream payloads.
	ErrMalformedResponse = errors.New("malformed upstream response")
	// ErrInvalidTeamID is returned when per-team requests cannot be built.
	ErrInvalidTeamID = errors.New("invalid team id")
	// ErrProviderUnavailable is returned when no upstream can serve a request.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// MalformedResponseError describes an upstream payload missing an expected path.
// These are not retried.
type MalformedResponseError struct {
	Provider string
	Reason   string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = ErrMalformedResponse.Error()
	}
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// Is matches ErrMalformedResponse.
func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// AsMalformedResponseError attempts to unwrap an error into a MalformedResponseError.
func AsMalformedResponseError(err error) (*MalformedResponseError, bool) {
	var malformed *MalformedResponseError
	if errors.As(err, &malformed) {
		return malformed, true
	}
	return nil, false
}
