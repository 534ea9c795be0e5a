package utils

import "time"

// ParseDate parses a YYYY-MM-DD value in the given location, falling back to
// the default when empty or malformed.
func ParseDate(value string, loc *time.Location, defaultValue time.Time) time.Time {
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return defaultValue
	}
	return parsed
}
