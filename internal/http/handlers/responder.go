package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/sports-dashboard-service/internal/http/middleware"
)

const maxRequestBodyBytes = 1 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errEmptyBody = errors.New("request body is empty")

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// decodeBody reads a bounded JSON request body into dest.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errEmptyBody
	}
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	defer body.Close()
	if err := json.NewDecoder(body).Decode(dest); err != nil {
		return err
	}
	return nil
}
