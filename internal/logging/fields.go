package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService     = "service"
	FieldVersion     = "version"
	FieldProvider    = "provider"
	FieldRequestID   = "request_id"
	FieldPath        = "path"
	FieldMethod      = "method"
	FieldStatusCode  = "status_code"
	FieldURL         = "url"
	FieldAttempt     = "attempt"
	FieldMaxAttempts = "max_attempts"
	FieldDelayMS     = "delay_ms"
	FieldLeague      = "league"
	FieldTeamID      = "team_id"
	FieldSessionID   = "session_id"
	FieldGeneration  = "generation"
	FieldPart        = "part"
	FieldCount       = "count"
	FieldDurationMS  = "duration_ms"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
