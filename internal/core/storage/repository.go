package storage

import (
	"context"
	"fmt"

	"github.com/idlefit/healthstat/internal/core/health"
	"github.com/shopspring/decimal"
)

// SampleStore is the read-only port over persisted quantity samples.
type SampleStore interface {
	// SumByUnit sums the values of all samples of typeIdentifier selected by predicate.
	// One Quantity is returned per distinct stored unit, ordered by unit symbol.
	// No matching samples yields an empty slice.
	SumByUnit(ctx context.Context, typeIdentifier string, predicate health.SamplePredicate) ([]health.Quantity, error)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

type rowIterator interface {
	scanner
	Next() bool
	Err() error
}

// ScanUnitSums reads (unit, sum) rows into quantities.
func ScanUnitSums(rows rowIterator) ([]health.Quantity, error) {
	var sums []health.Quantity
	for rows.Next() {
		var (
			symbol string
			sum    decimal.NullDecimal
		)
		if err := rows.Scan(&symbol, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan sum row: %w", err)
		}
		if !sum.Valid {
			continue
		}
		unit, err := health.ParseUnit(symbol)
		if err != nil {
			return nil, fmt.Errorf("stored sample unit: %w", err)
		}
		sums = append(sums, health.Quantity{Value: sum.Decimal, Unit: unit})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sum rows: %w", err)
	}

	return sums, nil
}
