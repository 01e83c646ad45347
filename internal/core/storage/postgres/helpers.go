package postgres

import "github.com/idlefit/healthstat/internal/core/health"

// predicateMode is the index of the prepared statement serving a predicate.
type predicateMode int

const (
	modeStrictStart predicateMode = iota
	modeStrictEnd
	modeStrictBoth
	modeOverlap
)

// sumQueries is ordered by predicateMode; statements are prepared in this order.
var sumQueries = []string{
	modeStrictStart: querySumStrictStart,
	modeStrictEnd:   querySumStrictEnd,
	modeStrictBoth:  querySumStrictBoth,
	modeOverlap:     querySumOverlap,
}

func modeFor(p health.SamplePredicate) predicateMode {
	switch {
	case p.Has(health.StrictStartDate) && p.Has(health.StrictEndDate):
		return modeStrictBoth
	case p.Has(health.StrictStartDate):
		return modeStrictStart
	case p.Has(health.StrictEndDate):
		return modeStrictEnd
	default:
		return modeOverlap
	}
}
