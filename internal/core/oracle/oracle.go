package oracle

import (
	"context"

	"github.com/idlefit/healthstat/internal/core/health"
)

// StatisticsOptions selects the aggregation the oracle computes.
type StatisticsOptions uint8

const (
	// CumulativeSum totals all matching sample values.
	CumulativeSum StatisticsOptions = 1 << iota
)

// StatisticsQuery asks the oracle for one aggregation over one quantity type.
type StatisticsQuery struct {
	QuantityType string
	Predicate    health.SamplePredicate
	Options      StatisticsOptions
}

// Statistics is the oracle's answer to a StatisticsQuery.
type Statistics struct {
	QuantityType string
	sum          *health.Quantity
}

// NewStatistics builds a result. A nil sum means no samples matched.
func NewStatistics(quantityType string, sum *health.Quantity) *Statistics {
	return &Statistics{QuantityType: quantityType, sum: sum}
}

// SumQuantity returns the cumulative sum, or nil when no samples matched.
func (s *Statistics) SumQuantity() *health.Quantity {
	if s == nil {
		return nil
	}
	return s.sum
}

// ResultHandler receives the outcome of one query: statistics or an error, never both.
type ResultHandler func(stats *Statistics, err error)

// Oracle is the external, read-only aggregation store.
// Execute must call handler exactly once, possibly from another goroutine.
// It must support concurrent outstanding queries.
type Oracle interface {
	Execute(ctx context.Context, query StatisticsQuery, handler ResultHandler)
}

// Authorizer is implemented by oracles that need read access granted before
// the first query. It is called once at process start.
type Authorizer interface {
	RequestAuthorization(ctx context.Context, quantityTypes []string) error
}
