// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the timestamp formats emitted by different portal backend builds

package time

import (
	"strings"
	"time"
)

// Timestamp formats seen across portal backend builds
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// Returns the zero time when nothing matches so unparseable dates sort last.
func ParseFlexibleTime(timeStr string) time.Time {
	if timeStr == "" {
		return time.Time{}
	}

	timeStr = strings.TrimSpace(timeStr)

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// ParseWithDefault attempts to parse a time string, returning a default if parsing fails
func ParseWithDefault(timeStr string, defaultTime time.Time) time.Time {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return parsed
	}
	return defaultTime
}
