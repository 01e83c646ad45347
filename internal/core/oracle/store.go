package oracle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/idlefit/healthstat/internal/core/storage"
)

// ErrUnsupportedOptions is reported for statistics options other than CumulativeSum.
var ErrUnsupportedOptions = errors.New("unsupported statistics options")

// pinger is satisfied by stores backed by a connection pool.
type pinger interface {
	Ping(ctx context.Context) error
}

// StoreOracle answers statistics queries from a SampleStore.
// Each query runs on its own goroutine; the store must be safe for concurrent use.
type StoreOracle struct {
	store storage.SampleStore
}

// NewStoreOracle creates an oracle over store.
func NewStoreOracle(store storage.SampleStore) *StoreOracle {
	return &StoreOracle{store: store}
}

// Execute runs query asynchronously and reports the outcome to handler exactly once.
func (o *StoreOracle) Execute(ctx context.Context, query StatisticsQuery, handler ResultHandler) {
	go func() {
		stats, err := o.run(ctx, query)
		if err != nil {
			handler(nil, err)
			return
		}
		handler(stats, nil)
	}()
}

func (o *StoreOracle) run(ctx context.Context, query StatisticsQuery) (stats *Statistics, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("statistics query panicked: %v", r)
		}
	}()

	if query.Options != CumulativeSum {
		return nil, ErrUnsupportedOptions
	}

	sums, err := o.store.SumByUnit(ctx, query.QuantityType, query.Predicate)
	if err != nil {
		return nil, err
	}
	if len(sums) == 0 {
		return NewStatistics(query.QuantityType, nil), nil
	}

	total := sums[0]
	for _, q := range sums[1:] {
		total, err = total.Add(q)
		if err != nil {
			return nil, fmt.Errorf("mixed sample units for %s: %w", query.QuantityType, err)
		}
	}

	slog.Debug("[Oracle] Statistics computed",
		"quantity_type", query.QuantityType,
		"units", len(sums),
		"sum", total.String())

	return NewStatistics(query.QuantityType, &total), nil
}

// RequestAuthorization verifies the store is reachable. Consent for SQL and
// in-memory stores is implied by configuration.
func (o *StoreOracle) RequestAuthorization(ctx context.Context, quantityTypes []string) error {
	if p, ok := o.store.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("sample store unreachable: %w", err)
		}
	}
	slog.Info("[Oracle] Read access granted", "quantity_types", quantityTypes)
	return nil
}

var _ Authorizer = (*StoreOracle)(nil)
