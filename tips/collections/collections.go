// Package collections contains generic slice helpers for taking, dropping,
// partitioning, windowing, zipping and folding. None of the helpers mutate
// their input; each returns a freshly allocated slice.
package collections

import (
	"fmt"
	"strings"
)

func requireNonNegative(op string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("%s: requested element count %d is less than zero", op, n))
	}
}

func clamp(n, max int) int {
	if n > max {
		return max
	}
	return n
}

// Take returns the first n elements of s.
func Take[T any](s []T, n int) []T {
	requireNonNegative("Take", n)
	return append([]T{}, s[:clamp(n, len(s))]...)
}

// TakeLast returns the last n elements of s.
func TakeLast[T any](s []T, n int) []T {
	requireNonNegative("TakeLast", n)
	return append([]T{}, s[len(s)-clamp(n, len(s)):]...)
}

// Drop returns all elements of s except the first n.
func Drop[T any](s []T, n int) []T {
	requireNonNegative("Drop", n)
	return append([]T{}, s[clamp(n, len(s)):]...)
}

// Partition splits s into the elements for which pred returns true and the
// ones for which it returns false. Relative order is preserved.
func Partition[T any](s []T, pred func(T) bool) (matched, rest []T) {
	matched, rest = []T{}, []T{}
	for _, v := range s {
		if pred(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matched, rest
}

// JoinOptions configures JoinToString. The zero value joins every element
// with ", " and formats elements with fmt.Sprint.
type JoinOptions[T any] struct {
	Separator string
	Prefix    string
	Postfix   string

	// Limit caps the number of joined elements; zero or a negative
	// value means no limit.
	Limit int

	// Truncated replaces the elements beyond Limit. Defaults to "...".
	Truncated string

	Transform func(T) string
}

// JoinToString creates a string from the elements of s using opts.
func JoinToString[T any](s []T, opts JoinOptions[T]) string {
	sep := opts.Separator
	if sep == "" {
		sep = ", "
	}
	truncated := opts.Truncated
	if truncated == "" {
		truncated = "..."
	}
	transform := opts.Transform
	if transform == nil {
		transform = func(v T) string { return fmt.Sprint(v) }
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = len(s)
	}

	var sb strings.Builder
	sb.WriteString(opts.Prefix)
	for i, v := range s {
		if i > 0 {
			sb.WriteString(sep)
		}
		if i >= limit {
			sb.WriteString(truncated)
			break
		}
		sb.WriteString(transform(v))
	}
	sb.WriteString(opts.Postfix)
	return sb.String()
}
