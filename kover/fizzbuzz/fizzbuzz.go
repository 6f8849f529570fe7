package fizzbuzz

import "strconv"

// The labels returned for values that are evenly divisible by 3, 5 or both.
const (
	LabelFizz     = "Fizz"
	LabelBuzz     = "Buzz"
	LabelFizzBuzz = "FizzBuzz"
)

// Kind describes the category a value falls into.
type Kind int

// The supported value categories.
const (
	KindNumber Kind = iota
	KindFizz
	KindBuzz
	KindFizzBuzz
)

// Kinds lists every supported category.
var Kinds = []Kind{KindNumber, KindFizz, KindBuzz, KindFizzBuzz}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindFizz:
		return "fizz"
	case KindBuzz:
		return "buzz"
	case KindFizzBuzz:
		return "fizzbuzz"
	default:
		return "unknown"
	}
}

// KindOf returns the category for the integer value n. The check for 15 is
// evaluated first so that values divisible by both 3 and 5 map to
// KindFizzBuzz. Zero is divisible by everything and maps to KindFizzBuzz.
//
// Negative values use Go's truncated remainder; only a zero remainder is
// significant so the sign of n never changes the result.
func KindOf(n int) Kind {
	switch {
	case n%15 == 0:
		return KindFizzBuzz
	case n%3 == 0:
		return KindFizz
	case n%5 == 0:
		return KindBuzz
	default:
		return KindNumber
	}
}

// Classify implements the fizzbuzz logic for the integer value n and returns:
// - "FizzBuzz" if n is divisible by both 3 and 5
// - "Fizz" if n is divisible by 3
// - "Buzz" if n is divisible by 5
// - the base-10 representation of n otherwise
func Classify(n int) string {
	switch KindOf(n) {
	case KindFizzBuzz:
		return LabelFizzBuzz
	case KindFizz:
		return LabelFizz
	case KindBuzz:
		return LabelBuzz
	default:
		return strconv.Itoa(n)
	}
}

// Classifier is a stateless value that exposes Classify as a method so it can
// be passed to code that expects an object.
type Classifier struct{}

// Calculate returns Classify(value).
func (Classifier) Calculate(value int) string {
	return Classify(value)
}

const maxSizeHint = 1 << 16

// Sequence returns the labels for every value in the inclusive range
// [from, to]. An empty slice is returned if from > to.
func Sequence(from, to int) []string {
	if from > to {
		return []string{}
	}

	sizeHint := uint64(to-from) + 1
	if sizeHint > maxSizeHint {
		sizeHint = maxSizeHint
	}

	out := make([]string, 0, sizeHint)
	for n := from; ; n++ {
		out = append(out, Classify(n))
		if n == to {
			break
		}
	}
	return out
}
