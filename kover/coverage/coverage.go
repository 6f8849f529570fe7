// Package coverage verifies that the statement coverage recorded in a Go
// cover profile meets a minimum bound.
package coverage

import (
	"fmt"

	"golang.org/x/tools/cover"
	"golang.org/x/xerrors"
)

var (
	// ErrBelowThreshold is returned when the measured coverage is lower
	// than the requested minimum.
	ErrBelowThreshold = xerrors.New("coverage below threshold")

	// ErrInvalidThreshold is returned for bounds outside [0, 100].
	ErrInvalidThreshold = xerrors.New("threshold must be within [0, 100]")
)

// Report summarizes the statement coverage of a set of profiles.
type Report struct {
	Covered int
	Total   int
	Percent float64
}

// String implements fmt.Stringer.
func (r Report) String() string {
	return fmt.Sprintf("%.2f%% (%d/%d statements)", r.Percent, r.Covered, r.Total)
}

// Summarize counts covered and total statements across profiles. A profile
// set without statements is reported as fully covered.
func Summarize(profiles []*cover.Profile) Report {
	var r Report
	for _, p := range profiles {
		for _, b := range p.Blocks {
			r.Total += b.NumStmt
			if b.Count > 0 {
				r.Covered += b.NumStmt
			}
		}
	}

	r.Percent = 100
	if r.Total > 0 {
		r.Percent = 100 * float64(r.Covered) / float64(r.Total)
	}
	return r
}

// Check summarizes profiles and returns ErrBelowThreshold if the coverage
// rate is lower than minPercent.
func Check(profiles []*cover.Profile, minPercent float64) (Report, error) {
	if !(minPercent >= 0 && minPercent <= 100) {
		return Report{}, xerrors.Errorf("%.2f: %w", minPercent, ErrInvalidThreshold)
	}

	r := Summarize(profiles)
	if r.Percent < minPercent {
		return r, xerrors.Errorf("%s < %.2f%%: %w", r, minPercent, ErrBelowThreshold)
	}
	return r, nil
}

// CheckFile parses the cover profile at path and passes it to Check.
func CheckFile(path string, minPercent float64) (Report, error) {
	profiles, err := cover.ParseProfiles(path)
	if err != nil {
		return Report{}, xerrors.Errorf("unable to parse cover profile %q: %w", path, err)
	}
	return Check(profiles, minPercent)
}
