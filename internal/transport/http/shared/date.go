package shared

import "time"

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// ParseClock accepts HH:MM or HH:MM:SS.
func ParseClock(value string) (time.Time, error) {
	if parsed, err := time.Parse("15:04:05", value); err == nil {
		return parsed, nil
	}
	return time.Parse("15:04", value)
}
