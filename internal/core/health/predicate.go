package health

import "time"

// PredicateOptions mirror the oracle's sample predicate flags.
type PredicateOptions uint8

const (
	// StrictStartDate requires a sample to start inside [Start, End).
	StrictStartDate PredicateOptions = 1 << iota
	// StrictEndDate requires a sample to end inside (Start, End].
	StrictEndDate
)

// SamplePredicate selects samples by their time span.
// With no options a sample matches when it overlaps [Start, End).
type SamplePredicate struct {
	Start   time.Time
	End     time.Time
	Options PredicateOptions
}

// PredicateForSamples builds a predicate for the given window.
func PredicateForSamples(start, end time.Time, opts PredicateOptions) SamplePredicate {
	return SamplePredicate{Start: start, End: end, Options: opts}
}

func (p SamplePredicate) Has(opt PredicateOptions) bool {
	return p.Options&opt != 0
}

// Matches reports whether a sample spanning [sampleStart, sampleEnd] is selected.
// An inverted window (End before Start) matches nothing.
func (p SamplePredicate) Matches(sampleStart, sampleEnd time.Time) bool {
	switch {
	case p.Has(StrictStartDate) && p.Has(StrictEndDate):
		return !sampleStart.Before(p.Start) && !sampleEnd.After(p.End) && sampleStart.Before(p.End)
	case p.Has(StrictStartDate):
		return !sampleStart.Before(p.Start) && sampleStart.Before(p.End)
	case p.Has(StrictEndDate):
		return sampleEnd.After(p.Start) && !sampleEnd.After(p.End)
	default:
		return sampleStart.Before(p.End) && sampleEnd.After(p.Start)
	}
}
