package cli

import (
	"fmt"
	"log/slog"

	corecfg "github.com/idlefit/healthstat/internal/core/config"
	"github.com/idlefit/healthstat/internal/core/storage"
	"github.com/idlefit/healthstat/internal/core/storage/memory"
	"github.com/idlefit/healthstat/internal/core/storage/postgres"
	"github.com/idlefit/healthstat/internal/core/storage/sqlite"
	"github.com/idlefit/healthstat/internal/migrations"
	"github.com/idlefit/healthstat/internal/server"
)

// sampleStore is an opened sample store plus its release hook.
type sampleStore struct {
	storage.SampleStore
	health server.HealthChecker
	close  func() error
}

func (s *sampleStore) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openStore opens the store selected by database.type, applying migrations
// to SQL stores and loading fixtures into the memory store.
func openStore(cfg corecfg.DatabaseConfig) (*sampleStore, error) {
	switch cfg.Type {
	case corecfg.DatabasePostgres:
		db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return nil, err
		}
		if err := migrations.RunMigrations(db, migrations.DialectPostgres, cfg.AutoMigrate); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		adapter, err := postgres.NewSampleAdapter(db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return &sampleStore{SampleStore: adapter, health: adapter, close: adapter.Close}, nil

	case corecfg.DatabaseSQLite:
		db, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := migrations.RunMigrations(db, migrations.DialectSQLite, cfg.AutoMigrate); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		adapter, err := sqlite.NewAdapter(db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return &sampleStore{SampleStore: adapter, health: adapter, close: adapter.Close}, nil

	case corecfg.DatabaseMemory:
		store := memory.NewStore()
		if cfg.Fixtures != "" {
			if err := store.LoadFixtures(cfg.Fixtures); err != nil {
				return nil, err
			}
		}
		slog.Info("[Memory] Sample store ready", "samples", store.Len(), "fixtures", cfg.Fixtures)
		return &sampleStore{SampleStore: store}, nil
	}

	return nil, fmt.Errorf("unsupported database.type %q", cfg.Type)
}
