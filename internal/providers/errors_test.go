package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMalformedResponseErrorString(t *testing.T) {
	err := &MalformedResponseError{Provider: "espn", Reason: "missing sports[0]"}
	if got := err.Error(); got != "espn: missing sports[0]" {
		t.Fatalf("unexpected message %q", got)
	}

	cause := errors.New("unexpected end of JSON input")
	wrapped := &MalformedResponseError{Err: cause}
	if got := wrapped.Error(); !strings.HasPrefix(got, ErrMalformedResponse.Error()) {
		t.Fatalf("expected fallback reason, got %q", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("expected cause to unwrap")
	}
	if !errors.Is(wrapped, ErrMalformedResponse) {
		t.Fatal("expected sentinel match with cause set")
	}
}

func TestAsMalformedResponseError(t *testing.T) {
	err := fmt.Errorf("load teams: %w", &MalformedResponseError{Provider: "espn", Reason: "missing teams"})
	got, ok := AsMalformedResponseError(err)
	if !ok || got.Reason != "missing teams" {
		t.Fatalf("expected to unwrap malformed error, got %v", err)
	}
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatal("expected sentinel match through wrapping")
	}
	if _, ok := AsMalformedResponseError(errors.New("plain")); ok {
		t.Fatal("expected miss for plain error")
	}
}
