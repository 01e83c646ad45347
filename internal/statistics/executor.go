package statistics

import (
	"context"
	"log/slog"
	"time"

	apperr "github.com/idlefit/healthstat/internal/core/errors"
	"github.com/idlefit/healthstat/internal/core/health"
	"github.com/idlefit/healthstat/internal/core/oracle"
)

// Executor runs one cumulative-sum query per call against the oracle.
// It holds no per-call state and is safe for concurrent use.
type Executor struct {
	oracle oracle.Oracle
}

// NewExecutor creates an executor over o.
func NewExecutor(o oracle.Oracle) *Executor {
	return &Executor{oracle: o}
}

// Execute sums category over [startMillis, endMillis) and returns the total in
// the category's canonical unit.
//
// It blocks until the oracle reports exactly one outcome. ctx is handed to the
// oracle; the executor itself does not abandon the wait.
func (e *Executor) Execute(ctx context.Context, category health.Category, startMillis, endMillis int64) (float64, error) {
	query := oracle.StatisticsQuery{
		QuantityType: category.Identifier(),
		Predicate: health.PredicateForSamples(
			time.UnixMilli(startMillis).UTC(),
			time.UnixMilli(endMillis).UTC(),
			health.StrictStartDate,
		),
		Options: oracle.CumulativeSum,
	}

	future := oracle.NewFuture()
	e.oracle.Execute(ctx, query, future.Handler())

	stats, err := future.Await()
	if err != nil {
		return 0, apperr.QueryError(err)
	}

	sum := stats.SumQuantity()
	if sum == nil {
		return 0.0, nil
	}

	value, ok := health.Convert(category, *sum)
	if !ok {
		slog.Warn("No conversion to canonical unit, returning 0",
			"category", category.String(),
			"unit", sum.Unit.Symbol)
		return 0.0, nil
	}
	return value, nil
}
