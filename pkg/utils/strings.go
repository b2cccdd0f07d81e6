package utils

import (
	"strconv"
	"strings"
)

// ParseInt parses a string to int with a fallback default value.
// Malformed numeric parameters are coerced, never rejected.
func ParseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return val
}

// NormalizeEmail lower-cases and trims an email address. Emails are treated
// case-insensitively everywhere: storage, uniqueness, and login lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeQuery lower-cases and trims a search query; an absent query
// becomes the empty string, which matches everything.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
