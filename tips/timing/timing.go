// Package timing measures how long it takes to compute a value.
package timing

import (
	"time"

	"github.com/juju/clock"
)

// TimedValue holds the result of a measured operation and the time it took.
type TimedValue[T any] struct {
	Value    T
	Duration time.Duration
}

// Measure invokes fn and returns its result together with the elapsed time
// reported by clk.
func Measure[T any](clk clock.Clock, fn func() T) TimedValue[T] {
	start := clk.Now()
	v := fn()
	return TimedValue[T]{Value: v, Duration: clk.Now().Sub(start)}
}

// MeasureValue is Measure using the wall clock.
func MeasureValue[T any](fn func() T) TimedValue[T] {
	return Measure(clock.WallClock, fn)
}
