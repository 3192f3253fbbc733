package timeutil

import (
	"fmt"
	"time"
)

// MinuteLayout is RFC3339 without seconds, as upstream event dates use.
const MinuteLayout = "2006-01-02T15:04Z07:00"

var timestampLayouts = []string{time.RFC3339, MinuteLayout}

// ParseTimestamp parses an RFC3339 timestamp with or without seconds.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: unsupported layout", value)
}
