package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/idlefit/healthstat/internal/core/health"
	"github.com/idlefit/healthstat/internal/core/storage"
	_ "modernc.org/sqlite" // Register sqlite driver
)

// Open opens (or creates) the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite serializes writers; readers share the pool.
	db.SetMaxOpenConns(4)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	slog.Info("[SQLite] Database opened", "path", path)
	return db, nil
}

// Adapter implements storage.SampleStore on an embedded SQLite file.
type Adapter struct {
	db *sql.DB
}

var _ storage.SampleStore = (*Adapter)(nil)

// NewAdapter returns an adapter over db. The quantity_samples table must exist.
func NewAdapter(db *sql.DB) (*Adapter, error) {
	var n int
	if err := db.QueryRow(queryTableExists).Scan(&n); err != nil {
		return nil, fmt.Errorf("failed to check schema: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("schema validation failed - did you run migrations?: quantity_samples table does not exist")
	}
	return &Adapter{db: db}, nil
}

func sumQueryFor(p health.SamplePredicate) string {
	switch {
	case p.Has(health.StrictStartDate) && p.Has(health.StrictEndDate):
		return querySumStrictBoth
	case p.Has(health.StrictStartDate):
		return querySumStrictStart
	case p.Has(health.StrictEndDate):
		return querySumStrictEnd
	default:
		return querySumOverlap
	}
}

// SumByUnit sums matching samples per stored unit.
func (a *Adapter) SumByUnit(ctx context.Context, typeIdentifier string, predicate health.SamplePredicate) ([]health.Quantity, error) {
	rows, err := a.db.QueryContext(ctx, sumQueryFor(predicate),
		typeIdentifier,
		predicate.Start.UnixMilli(),
		predicate.End.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sample sums: %w", err)
	}
	defer rows.Close()

	return storage.ScanUnitSums(rows)
}

// Ping verifies the database is reachable.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

// Close closes the database.
func (a *Adapter) Close() error {
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	slog.Info("[SQLite] Adapter closed")
	return nil
}
