package v16

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"
)

// ErrInvalidISODuration is returned by ParseISO8601 for malformed input.
var ErrInvalidISODuration = xerrors.New("invalid ISO-8601 duration")

const day = 24 * time.Hour

// Days returns a duration of n 24-hour days.
func Days(n int) time.Duration { return time.Duration(n) * day }

// Hours returns a duration of n hours.
func Hours(n int) time.Duration { return time.Duration(n) * time.Hour }

// Minutes returns a duration of n minutes.
func Minutes(n int) time.Duration { return time.Duration(n) * time.Minute }

// WholeHours returns the number of complete hours in d.
func WholeHours(d time.Duration) int64 {
	return int64(d / time.Hour)
}

// Divide returns the ratio of a to b.
func Divide(a, b time.Duration) float64 {
	return float64(a) / float64(b)
}

// ToComponents splits d into whole hours, minutes, seconds and the remaining
// nanoseconds. All components share the sign of d.
func ToComponents(d time.Duration) (hours int64, minutes, seconds, nanos int) {
	hours = int64(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes = int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds = int(d / time.Second)
	d -= time.Duration(seconds) * time.Second
	return hours, minutes, seconds, int(d)
}

var isoDurationRegex = regexp.MustCompile(`^([-+])?P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)(?:[.,](\d{1,9}))?S)?)?$`)

// ParseISO8601 parses the day-time subset of ISO-8601 durations, e.g.
// "P10DT2H30M" or "-PT1.5S". A day always equals 24 hours; year, month and
// week designators are rejected.
func ParseISO8601(s string) (time.Duration, error) {
	m := isoDurationRegex.FindStringSubmatch(s)
	if m == nil || s == "P" || strings.HasSuffix(s, "T") || strings.HasSuffix(s, "P") {
		return 0, xerrors.Errorf("%q: %w", s, ErrInvalidISODuration)
	}

	var total time.Duration
	units := []struct {
		value string
		unit  time.Duration
	}{
		{m[2], day},
		{m[3], time.Hour},
		{m[4], time.Minute},
		{m[5], time.Second},
	}
	for _, u := range units {
		if u.value == "" {
			continue
		}
		n, err := strconv.ParseInt(u.value, 10, 64)
		if err != nil || n > int64(math.MaxInt64/u.unit) {
			return 0, xerrors.Errorf("%q: component %s out of range: %w", s, u.value, ErrInvalidISODuration)
		}
		part := time.Duration(n) * u.unit
		if total > math.MaxInt64-part {
			return 0, xerrors.Errorf("%q: duration out of range: %w", s, ErrInvalidISODuration)
		}
		total += part
	}

	if frac := m[6]; frac != "" {
		nanos, _ := strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
		if total > math.MaxInt64-time.Duration(nanos) {
			return 0, xerrors.Errorf("%q: duration out of range: %w", s, ErrInvalidISODuration)
		}
		total += time.Duration(nanos)
	}

	if m[1] == "-" {
		total = -total
	}
	return total, nil
}
