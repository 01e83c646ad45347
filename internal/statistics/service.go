package statistics

import (
	"context"
	"fmt"

	"github.com/idlefit/healthstat/internal/channel"
	"github.com/idlefit/healthstat/internal/core/health"
	"github.com/idlefit/healthstat/internal/core/oracle"
	"golang.org/x/sync/errgroup"
)

const defaultSummaryConcurrency = 3

// Service is the statistics query surface: validation, category mapping and
// execution against the oracle.
type Service struct {
	executor           *Executor
	summaryConcurrency int
}

var _ channel.Handler = (*Service)(nil)

// NewService creates a service querying o. summaryConcurrency bounds the
// number of in-flight oracle queries of one summary; values <= 0 use the default.
func NewService(o oracle.Oracle, summaryConcurrency int) *Service {
	if summaryConcurrency <= 0 {
		summaryConcurrency = defaultSummaryConcurrency
	}
	return &Service{
		executor:           NewExecutor(o),
		summaryConcurrency: summaryConcurrency,
	}
}

// QueryStatistics validates args and returns the cumulative sum they describe.
func (s *Service) QueryStatistics(ctx context.Context, args any) (float64, error) {
	req, err := ValidateAndMap(args)
	if err != nil {
		return 0, err
	}
	return s.executor.Execute(ctx, req.Category, req.StartMillis, req.EndMillis)
}

// HandleMethodCall serves the health statistics channel. Only queryStatistics
// is implemented.
func (s *Service) HandleMethodCall(ctx context.Context, call channel.MethodCall) (any, error) {
	if call.Method != MethodQueryStatistics {
		return nil, fmt.Errorf("%w: %s", channel.ErrNotImplemented, call.Method)
	}
	return s.QueryStatistics(ctx, call.Arguments)
}

// QuerySummary totals every category over the same window. Each category is a
// separate oracle query; the first failure fails the summary.
func (s *Service) QuerySummary(ctx context.Context, startMillis, endMillis int64) (*Summary, error) {
	values := make([]SummaryValue, len(health.Categories))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.summaryConcurrency)

	for i, category := range health.Categories {
		g.Go(func() error {
			value, err := s.executor.Execute(gctx, category, startMillis, endMillis)
			if err != nil {
				return err
			}
			unit, _ := category.CanonicalUnit()
			values[i] = SummaryValue{Type: category.Label(), Unit: unit.Symbol, Value: value}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Summary{StartTime: startMillis, EndTime: endMillis, Values: values}, nil
}
