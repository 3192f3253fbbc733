package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

// Serve executes a request against the provided handler and returns the recorder.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	return ServeRequest(h, httptest.NewRequest(method, path, body))
}

// ServeRequest executes the given request against the handler.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus verifies the response status code.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, rr.Code, rr.Body.String())
	}
}

// DecodeJSON decodes the recorder body into dest, failing the test on error.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := jsoniter.NewDecoder(rr.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// AssertErrorBody checks the status and the "error" field of a JSON error response.
func AssertErrorBody(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, rr, status)
	var body map[string]string
	DecodeJSON(t, rr, &body)
	if body["error"] != message {
		t.Fatalf("expected error %q, got %q", message, body["error"])
	}
}
