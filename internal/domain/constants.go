package domain

// Search pagination policy. Limits are clamped rather than rejected: bad or
// missing numeric parameters fall back to the defaults.
const (
	DefaultSearchLimit = 12
	MaxSearchLimit     = 100

	// SuggestionLimit caps the suggestion list; prefixes shorter than
	// MinSuggestPrefix runes return an empty list without hitting the store.
	SuggestionLimit  = 10
	MinSuggestPrefix = 2
)

// ClampLimit forces limit into [1, MaxSearchLimit], defaulting when out of range low.
func ClampLimit(limit int) int {
	if limit < 1 {
		return DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}

// ClampOffset forces offset to be non-negative.
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
