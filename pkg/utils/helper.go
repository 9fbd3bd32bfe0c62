package utils

import (
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseFloat returns nil for empty or malformed input
func ParseFloat(value string) *float64 {
	if value == "" {
		return nil
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}

	return &result
}

// IsFutureDate reports whether day falls strictly after the calendar day of now (UTC).
func IsFutureDate(day, now time.Time) bool {
	today := now.UTC().Truncate(24 * time.Hour)
	return day.UTC().Truncate(24 * time.Hour).After(today)
}
