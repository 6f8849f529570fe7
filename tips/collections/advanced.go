package collections

import (
	"math"

	"golang.org/x/xerrors"
)

// ErrEmptyCollection is returned by Reduce when called with an empty slice.
var ErrEmptyCollection = xerrors.New("empty collection can't be reduced")

// Any returns true if at least one element satisfies pred.
func Any[T any](s []T, pred func(T) bool) bool {
	for _, v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// None returns true if no element satisfies pred.
func None[T any](s []T, pred func(T) bool) bool {
	return !Any(s, pred)
}

// All returns true if every element satisfies pred. All returns true for an
// empty slice.
func All[T any](s []T, pred func(T) bool) bool {
	for _, v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

func requirePositive(op, what string, n int) {
	if n <= 0 {
		panic(op + ": " + what + " must be greater than zero")
	}
}

// Chunked splits s into slices of at most size elements. The last chunk may
// be shorter.
func Chunked[T any](s []T, size int) [][]T {
	return Windowed(s, size, size, true)
}

// ChunkedWith applies transform to each chunk produced by Chunked.
func ChunkedWith[T, R any](s []T, size int, transform func([]T) R) []R {
	return WindowedWith(s, size, size, true, transform)
}

// Windowed returns the windows of size elements that start every step
// elements. When partial is true, the trailing windows that are shorter than
// size are included as well.
func Windowed[T any](s []T, size, step int, partial bool) [][]T {
	return WindowedWith(s, size, step, partial, func(w []T) []T { return w })
}

// WindowedWith applies transform to each window produced by Windowed. Each
// window passed to transform is a fresh copy that transform may keep or
// modify.
func WindowedWith[T, R any](s []T, size, step int, partial bool, transform func([]T) R) []R {
	requirePositive("Windowed", "size", size)
	requirePositive("Windowed", "step", step)

	out := []R{}
	for start := 0; start < len(s); {
		end := len(s)
		if size <= len(s)-start {
			end = start + size
		} else if !partial {
			break
		}
		out = append(out, transform(append([]T{}, s[start:end]...)))

		if step > len(s)-start {
			break
		}
		start += step
	}
	return out
}

// Flatten concatenates all inner slices.
func Flatten[T any](s [][]T) []T {
	out := []T{}
	for _, inner := range s {
		out = append(out, inner...)
	}
	return out
}

// FlatMap maps each element to a slice and concatenates the results.
func FlatMap[T, R any](s []T, fn func(T) []R) []R {
	out := []R{}
	for _, v := range s {
		out = append(out, fn(v)...)
	}
	return out
}

// Pair holds two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf is a shorthand for building a Pair.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Zip pairs up the elements of a and b at the same index. The result is as
// long as the shorter input.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	return ZipWith(a, b, PairOf[A, B])
}

// ZipWith combines the elements of a and b at the same index with fn.
func ZipWith[A, B, R any](a []A, b []B, fn func(A, B) R) []R {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = fn(a[i], b[i])
	}
	return out
}

// Unzip splits a slice of pairs into two slices.
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as, bs := make([]A, len(pairs)), make([]B, len(pairs))
	for i, p := range pairs {
		as[i], bs[i] = p.First, p.Second
	}
	return as, bs
}

// ZipWithNext pairs each element with its successor.
func ZipWithNext[T any](s []T) []Pair[T, T] {
	return ZipWithNextWith(s, PairOf[T, T])
}

// ZipWithNextWith combines each element with its successor using fn.
func ZipWithNextWith[T, R any](s []T, fn func(a, b T) R) []R {
	if len(s) < 2 {
		return []R{}
	}
	out := make([]R, len(s)-1)
	for i := 0; i < len(s)-1; i++ {
		out[i] = fn(s[i], s[i+1])
	}
	return out
}

// Number is the set of types Sum and Average operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds up all elements of s.
func Sum[T Number](s []T) T {
	var sum T
	for _, v := range s {
		sum += v
	}
	return sum
}

// Average returns the arithmetic mean of s or NaN if s is empty.
func Average[T Number](s []T) float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range s {
		sum += float64(v)
	}
	return sum / float64(len(s))
}

// Reduce accumulates the elements of s from left to right starting with the
// first element.
func Reduce[T any](s []T, fn func(acc, v T) T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	acc := s[0]
	for _, v := range s[1:] {
		acc = fn(acc, v)
	}
	return acc, nil
}

// Fold accumulates the elements of s from left to right starting with
// initial.
func Fold[T, R any](s []T, initial R, fn func(acc R, v T) R) R {
	acc := initial
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// RunningFold behaves like Fold but returns every intermediate accumulator
// value, starting with initial.
func RunningFold[T, R any](s []T, initial R, fn func(acc R, v T) R) []R {
	out := make([]R, 0, len(s)+1)
	acc := initial
	out = append(out, acc)
	for _, v := range s {
		acc = fn(acc, v)
		out = append(out, acc)
	}
	return out
}
