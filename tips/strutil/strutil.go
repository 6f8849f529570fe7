// Package strutil provides small string helpers for trimming known prefixes
// and suffixes, substituting blank or empty strings and comparing strings
// without regard to case.
package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RemovePrefix returns s without prefix if s starts with it; otherwise s is
// returned unchanged.
func RemovePrefix(s, prefix string) string {
	return strings.TrimPrefix(s, prefix)
}

// RemoveSuffix returns s without suffix if s ends with it; otherwise s is
// returned unchanged.
func RemoveSuffix(s, suffix string) string {
	return strings.TrimSuffix(s, suffix)
}

// RemoveSurrounding removes delimiter from both ends of s, but only if s
// starts and ends with it and is long enough to contain both copies.
func RemoveSurrounding(s, delimiter string) string {
	return RemoveSurroundingWith(s, delimiter, delimiter)
}

// RemoveSurroundingWith is like RemoveSurrounding with distinct prefix and
// suffix.
func RemoveSurroundingWith(s, prefix, suffix string) string {
	if len(s) >= len(prefix)+len(suffix) && strings.HasPrefix(s, prefix) && strings.HasSuffix(s, suffix) {
		return s[len(prefix) : len(s)-len(suffix)]
	}
	return s
}

// IsBlank reports whether s is empty or contains only white space.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) == -1
}

// IfBlank returns the result of fallback if s is blank and s otherwise.
func IfBlank(s string, fallback func() string) string {
	if IsBlank(s) {
		return fallback()
	}
	return s
}

// IfEmpty returns the result of fallback if s is empty and s otherwise.
func IfEmpty(s string, fallback func() string) string {
	if s == "" {
		return fallback()
	}
	return s
}

// EqualIgnoreCase reports whether a and b are equal under Unicode case
// folding.
func EqualIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Upper maps s to upper case using language-neutral rules.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower maps s to lower case using language-neutral rules.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
