package dataset

import (
	"strings"
)

// placeholderVocabulary is the fixed set of text forms that encode "missing"
// without being native nulls. Matching is case-insensitive over the trimmed
// cell text.
var placeholderVocabulary = map[string]struct{}{
	"unknown":     {},
	"n/a":         {},
	"na":          {},
	"nan":         {},
	"none":        {},
	"null":        {},
	"error":       {},
	"missing":     {},
	"undefined":   {},
	"unavailable": {},
	"":            {},
	"-":           {},
	"--":          {},
	"?":           {},
	"n.a.":        {},
	"#n/a":        {},
}

// IsMissing reports whether a single cell counts as missing: either a native
// null (including NaN) or a text cell whose lowercased, trimmed form is in
// the placeholder vocabulary. It is applied per cell, never per column, so
// mixed-type columns behave correctly.
func IsMissing(v Value) bool {
	if v.IsNull() {
		return true
	}
	if v.Kind != KindText {
		return false
	}
	_, ok := placeholderVocabulary[strings.ToLower(strings.TrimSpace(v.Str))]
	return ok
}

// IsPlaceholder reports whether a text cell matches the placeholder
// vocabulary. Null cells are not placeholders.
func IsPlaceholder(v Value) bool {
	return v.Kind == KindText && IsMissing(v)
}
