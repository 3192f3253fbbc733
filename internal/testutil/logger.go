package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/sports-dashboard-service/internal/logging"
)

// NewBufferLogger returns a debug-level text logger writing to a buffer, and
// the buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Level: "debug", Output: &buf})
	return logger, &buf
}
