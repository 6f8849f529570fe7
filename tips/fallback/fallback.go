// Package fallback provides helpers for substituting a default when a value
// is missing.
package fallback

// OrElse returns *p or def if p is nil.
func OrElse[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// OrElseFunc returns *p or, if p is nil, the result of fn. fn is only
// invoked when p is nil.
func OrElseFunc[T any](p *T, fn func() T) T {
	if p == nil {
		return fn()
	}
	return *p
}

// Coalesce returns the first argument that is not the zero value of T, or
// the zero value if there is none.
func Coalesce[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}
