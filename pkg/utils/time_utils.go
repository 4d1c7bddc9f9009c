package utils

import "time"

// FormatUnixRFC3339 renders an epoch-seconds value for API responses.
// Returns "" for zero or negative values so callers can omit the field.
func FormatUnixRFC3339(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
