// Package loops compares several equivalent ways of iterating over a slice
// together with the index of each element. Every function writes one
// "<index>: <value>" line per element to w.
package loops

import (
	"fmt"
	"io"
)

// ByLength iterates with a classic three-clause loop bounded by len(s).
func ByLength[T any](w io.Writer, s []T) error {
	for i := 0; i < len(s); i++ {
		if err := writeLine(w, i, s[i]); err != nil {
			return err
		}
	}
	return nil
}

// ByLastIndex iterates up to and including LastIndex(s).
func ByLastIndex[T any](w io.Writer, s []T) error {
	for i := 0; i <= LastIndex(s); i++ {
		if err := writeLine(w, i, s[i]); err != nil {
			return err
		}
	}
	return nil
}

// ByIndices iterates over the slice returned by Indices(s).
func ByIndices[T any](w io.Writer, s []T) error {
	for _, i := range Indices(s) {
		if err := writeLine(w, i, s[i]); err != nil {
			return err
		}
	}
	return nil
}

// ByRange iterates with a range clause that yields both index and value.
func ByRange[T any](w io.Writer, s []T) error {
	for i, v := range s {
		if err := writeLine(w, i, v); err != nil {
			return err
		}
	}
	return nil
}

// ForEachIndexed invokes fn for every element and stops at the first error.
func ForEachIndexed[T any](s []T, fn func(i int, v T) error) error {
	for i, v := range s {
		if err := fn(i, v); err != nil {
			return err
		}
	}
	return nil
}

// ByForEachIndexed writes the lines through ForEachIndexed.
func ByForEachIndexed[T any](w io.Writer, s []T) error {
	return ForEachIndexed(s, func(i int, v T) error {
		return writeLine(w, i, v)
	})
}

// LastIndex returns the index of the last element or -1 for an empty slice.
func LastIndex[T any](s []T) int {
	return len(s) - 1
}

// Indices returns the valid indices of s in ascending order.
func Indices[T any](s []T) []int {
	out := make([]int, len(s))
	for i := range out {
		out[i] = i
	}
	return out
}

func writeLine(w io.Writer, i int, v interface{}) error {
	_, err := fmt.Fprintf(w, "%d: %v\n", i, v)
	return err
}
