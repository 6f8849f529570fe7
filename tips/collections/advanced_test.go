package collections_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/xerrors"

	"github.com/tipsbook/go-tips/tips/collections"
)

type person struct {
	name          string
	age           int
	driverLicense bool
}

func TestAnyNoneAll(t *testing.T) {
	friendGroup := []person{
		{name: "Joe", age: 19},
		{name: "Mic", age: 15},
		{name: "Hay", age: 33, driverLicense: true},
		{name: "Cal", age: 25},
	}
	var nobody []person

	hasLicense := func(p person) bool { return p.driverLicense }
	isMinor := func(p person) bool { return p.age < 18 }
	shortName := func(p person) bool { return len(p.name) < 4 }

	specs := []struct {
		descr string
		got   bool
		exp   bool
	}{
		{descr: "any with friend group", got: collections.Any(friendGroup, hasLicense), exp: true},
		{descr: "any with nobody", got: collections.Any(nobody, hasLicense), exp: false},
		{descr: "none with friend group", got: collections.None(friendGroup, isMinor), exp: false},
		{descr: "none with nobody", got: collections.None(nobody, isMinor), exp: true},
		{descr: "all with friend group", got: collections.All(friendGroup, shortName), exp: true},
		{descr: "all with nobody", got: collections.All(nobody, shortName), exp: true},
	}

	for specIndex, spec := range specs {
		if spec.got != spec.exp {
			t.Errorf("[spec %d: %s] expected to get %t; got %t", specIndex, spec.descr, spec.exp, spec.got)
		}
	}
}

var emojis = []string{"🌱", "🚀", "💡", "🐧", "⚙", "🤖", "📚"}

func reversed(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

func TestChunked(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		exp := [][]string{
			{"🌱", "🚀", "💡"},
			{"🐧", "⚙", "🤖"},
			{"📚"},
		}
		if diff := cmp.Diff(exp, collections.Chunked(emojis, 3)); diff != "" {
			t.Errorf("Chunked mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("with transform", func(t *testing.T) {
		exp := [][]string{
			{"💡", "🚀", "🌱"},
			{"🤖", "⚙", "🐧"},
			{"📚"},
		}
		if diff := cmp.Diff(exp, collections.ChunkedWith(emojis, 3, reversed)); diff != "" {
			t.Errorf("ChunkedWith mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestWindowed(t *testing.T) {
	specs := []struct {
		descr   string
		size    int
		step    int
		partial bool
		exp     [][]string
	}{
		{
			descr: "size 3 step 1", size: 3, step: 1,
			exp: [][]string{
				{"🌱", "🚀", "💡"},
				{"🚀", "💡", "🐧"},
				{"💡", "🐧", "⚙"},
				{"🐧", "⚙", "🤖"},
				{"⚙", "🤖", "📚"},
			},
		},
		{
			descr: "size 4 step 2 with partial windows", size: 4, step: 2, partial: true,
			exp: [][]string{
				{"🌱", "🚀", "💡", "🐧"},
				{"💡", "🐧", "⚙", "🤖"},
				{"⚙", "🤖", "📚"},
				{"📚"},
			},
		},
		{
			descr: "size 4 step 2 without partial windows", size: 4, step: 2,
			exp: [][]string{
				{"🌱", "🚀", "💡", "🐧"},
				{"💡", "🐧", "⚙", "🤖"},
			},
		},
	}

	for _, spec := range specs {
		t.Run(spec.descr, func(t *testing.T) {
			got := collections.Windowed(emojis, spec.size, spec.step, spec.partial)
			if diff := cmp.Diff(spec.exp, got); diff != "" {
				t.Errorf("Windowed mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("with transform", func(t *testing.T) {
		exp := [][]string{
			{"🐧", "💡", "🚀", "🌱"},
			{"🤖", "⚙", "🐧", "💡"},
			{"📚", "🤖", "⚙"},
			{"📚"},
		}
		got := collections.WindowedWith(emojis, 4, 2, true, reversed)
		if diff := cmp.Diff(exp, got); diff != "" {
			t.Errorf("WindowedWith mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected Windowed to panic for a zero size")
			}
		}()
		collections.Windowed(emojis, 0, 1, false)
	})

	t.Run("huge size and step", func(t *testing.T) {
		s := []int{1, 2, 3}

		expPartial := [][]int{{1, 2, 3}, {2, 3}, {3}}
		if diff := cmp.Diff(expPartial, collections.Windowed(s, math.MaxInt, 1, true)); diff != "" {
			t.Errorf("Windowed mismatch (-want +got):\n%s", diff)
		}
		if got := collections.Windowed(s, math.MaxInt, 1, false); len(got) != 0 {
			t.Errorf("expected no full windows; got %v", got)
		}
		if diff := cmp.Diff([][]int{{1, 2}}, collections.Windowed(s, 2, math.MaxInt, false)); diff != "" {
			t.Errorf("Windowed mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([][]int{{1, 2, 3}}, collections.Chunked(s, math.MaxInt)); diff != "" {
			t.Errorf("Chunked mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFlattenAndFlatMap(t *testing.T) {
	expFlat := []string{
		"🌱", "🚀", "💡",
		"🚀", "💡", "🐧",
		"💡", "🐧", "⚙",
		"🐧", "⚙", "🤖",
		"⚙", "🤖", "📚",
	}
	if diff := cmp.Diff(expFlat, collections.Flatten(collections.Windowed(emojis, 3, 1, false))); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}

	names := []string{"Lou", "Mel", "Cyn"}
	expRunes := []rune{'L', 'o', 'u', 'M', 'e', 'l', 'C', 'y', 'n'}
	got := collections.FlatMap(names, func(s string) []rune { return []rune(s) })
	if diff := cmp.Diff(expRunes, got); diff != "" {
		t.Errorf("FlatMap mismatch (-want +got):\n%s", diff)
	}
}

func TestZipAndUnzip(t *testing.T) {
	germanCities := []string{"Aachen", "Bielefeld", "München"}
	germanLicensePlates := []string{"AC", "BI", "M"}

	exp := []collections.Pair[string, string]{
		{First: "Aachen", Second: "AC"},
		{First: "Bielefeld", Second: "BI"},
		{First: "München", Second: "M"},
	}
	if diff := cmp.Diff(exp, collections.Zip(germanCities, germanLicensePlates)); diff != "" {
		t.Errorf("Zip mismatch (-want +got):\n%s", diff)
	}

	upperLower := collections.ZipWith(germanCities, germanLicensePlates, func(city, plate string) collections.Pair[string, string] {
		return collections.PairOf(strings.ToUpper(city), strings.ToLower(plate))
	})
	cities, plates := collections.Unzip(upperLower)
	if diff := cmp.Diff([]string{"AACHEN", "BIELEFELD", "MÜNCHEN"}, cities); diff != "" {
		t.Errorf("Unzip cities mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ac", "bi", "m"}, plates); diff != "" {
		t.Errorf("Unzip plates mismatch (-want +got):\n%s", diff)
	}

	if got := collections.Zip(germanCities, germanLicensePlates[:1]); len(got) != 1 {
		t.Errorf("expected Zip to truncate to the shorter input; got %d pairs", len(got))
	}
}

var random = []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 4}

func TestZipWithNext(t *testing.T) {
	exp := []collections.Pair[int, int]{
		{First: 3, Second: 1}, {First: 1, Second: 4}, {First: 4, Second: 1},
		{First: 1, Second: 5}, {First: 5, Second: 9}, {First: 9, Second: 2},
		{First: 2, Second: 6}, {First: 6, Second: 5}, {First: 5, Second: 4},
	}
	if diff := cmp.Diff(exp, collections.ZipWithNext(random)); diff != "" {
		t.Errorf("ZipWithNext mismatch (-want +got):\n%s", diff)
	}

	deltas := collections.ZipWithNextWith(random, func(a, b int) int { return b - a })
	if diff := cmp.Diff([]int{-2, 3, -3, 4, 4, -7, 4, -1, -1}, deltas); diff != "" {
		t.Errorf("ZipWithNextWith mismatch (-want +got):\n%s", diff)
	}

	if got := collections.ZipWithNext([]int{1}); len(got) != 0 {
		t.Errorf("expected no pairs for a single element; got %v", got)
	}
}

func TestSumAverageReduce(t *testing.T) {
	if exp, got := 40, collections.Sum(random); got != exp {
		t.Errorf("expected Sum to return %d; got %d", exp, got)
	}
	if exp, got := 4.0, collections.Average(random); got != exp {
		t.Errorf("expected Average to return %f; got %f", exp, got)
	}
	if got := collections.Average([]int{}); !math.IsNaN(got) {
		t.Errorf("expected Average of an empty slice to be NaN; got %f", got)
	}

	product, err := collections.Reduce(random, func(acc, v int) int { return acc * v })
	if err != nil {
		t.Fatal(err)
	}
	if exp := 129600; product != exp {
		t.Errorf("expected Reduce to return %d; got %d", exp, product)
	}

	if _, err = collections.Reduce([]int{}, func(acc, v int) int { return acc + v }); !xerrors.Is(err, collections.ErrEmptyCollection) {
		t.Errorf("expected ErrEmptyCollection; got %v", err)
	}
}

func TestFoldAndRunningFold(t *testing.T) {
	fruits := []string{"apple", "cherry", "banana", "orange"}
	byLength := func(acc int, v string) int { return acc * len(v) }

	if exp, got := 1080, collections.Fold(fruits, 1, byLength); got != exp {
		t.Errorf("expected Fold to return %d; got %d", exp, got)
	}
	if diff := cmp.Diff([]int{1, 5, 30, 180, 1080}, collections.RunningFold(fruits, 1, byLength)); diff != "" {
		t.Errorf("RunningFold mismatch (-want +got):\n%s", diff)
	}
}
