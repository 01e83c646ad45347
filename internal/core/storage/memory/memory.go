package memory

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/idlefit/healthstat/internal/core/health"
	"github.com/idlefit/healthstat/internal/core/storage"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Sample is one stored quantity sample.
type Sample struct {
	ID             string
	TypeIdentifier string
	Quantity       health.Quantity
	Start          time.Time
	End            time.Time
	Source         string
}

// Store is an in-memory SampleStore, safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	samples []Sample
}

var _ storage.SampleStore = (*Store)(nil)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends samples. Samples without an ID get a generated one.
func (s *Store) Add(samples ...Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sample := range samples {
		if sample.ID == "" {
			sample.ID = uuid.NewString()
		}
		s.samples = append(s.samples, sample)
	}
}

// Len returns the number of stored samples.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.samples)
}

// SumByUnit sums matching samples per unit, ordered by unit symbol.
func (s *Store) SumByUnit(ctx context.Context, typeIdentifier string, predicate health.SamplePredicate) ([]health.Quantity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	byUnit := make(map[string]health.Quantity)
	for _, sample := range s.samples {
		if sample.TypeIdentifier != typeIdentifier || !predicate.Matches(sample.Start, sample.End) {
			continue
		}
		sym := sample.Quantity.Unit.Symbol
		acc, ok := byUnit[sym]
		if !ok {
			acc = health.Quantity{Value: decimal.Zero, Unit: sample.Quantity.Unit}
		}
		acc.Value = acc.Value.Add(sample.Quantity.Value)
		byUnit[sym] = acc
	}

	symbols := make([]string, 0, len(byUnit))
	for sym := range byUnit {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	sums := make([]health.Quantity, 0, len(symbols))
	for _, sym := range symbols {
		sums = append(sums, byUnit[sym])
	}
	return sums, nil
}

// fixtureFile is the on-disk YAML shape for seeding a Store.
type fixtureFile struct {
	Samples []fixtureSample `yaml:"samples"`
}

type fixtureSample struct {
	ID     string  `yaml:"id"`
	Type   string  `yaml:"type"` // request label (STEPS) or oracle identifier
	Value  float64 `yaml:"value"`
	Unit   string  `yaml:"unit"`
	Start  int64   `yaml:"start"` // epoch milliseconds
	End    int64   `yaml:"end"`   // epoch milliseconds; defaults to start
	Source string  `yaml:"source"`
}

// LoadFixtures reads samples from a YAML file into s.
func (s *Store) LoadFixtures(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading fixture file %s: %w", path, err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing fixture file %s: %w", path, err)
	}

	samples := make([]Sample, 0, len(file.Samples))
	for i, fs := range file.Samples {
		sample, err := fs.toSample()
		if err != nil {
			return fmt.Errorf("fixture %s sample %d: %w", path, i, err)
		}
		samples = append(samples, sample)
	}

	s.Add(samples...)
	return nil
}

func (fs fixtureSample) toSample() (Sample, error) {
	typeID := fs.Type
	if c, ok := health.CategoryForLabel(fs.Type); ok {
		typeID = c.Identifier()
	}
	if typeID == "" {
		return Sample{}, fmt.Errorf("type must not be empty")
	}
	if fs.Value < 0 {
		return Sample{}, fmt.Errorf("value must be >= 0, got %v", fs.Value)
	}

	unit, err := health.ParseUnit(fs.Unit)
	if err != nil {
		return Sample{}, err
	}

	end := fs.End
	if end == 0 {
		end = fs.Start
	}
	if end < fs.Start {
		return Sample{}, fmt.Errorf("end %d before start %d", end, fs.Start)
	}

	return Sample{
		ID:             fs.ID,
		TypeIdentifier: typeID,
		Quantity:       health.NewQuantity(fs.Value, unit),
		Start:          time.UnixMilli(fs.Start).UTC(),
		End:            time.UnixMilli(end).UTC(),
		Source:         fs.Source,
	}, nil
}
