package oracle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/idlefit/healthstat/internal/core/health"
	storagemocks "github.com/idlefit/healthstat/internal/mocks/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func executeAndWait(t *testing.T, o Oracle, q StatisticsQuery) (*Statistics, error) {
	t.Helper()

	f := NewFuture()
	o.Execute(context.Background(), q, f.Handler())
	select {
	case <-f.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("oracle did not resolve")
	}
	return f.Await()
}

func TestStoreOracle_Execute(t *testing.T) {
	start := time.UnixMilli(1700000000000).UTC()
	pred := health.PredicateForSamples(start, start.Add(time.Hour), health.StrictStartDate)
	query := StatisticsQuery{QuantityType: health.IdentifierActiveEnergyBurned, Predicate: pred, Options: CumulativeSum}

	tests := []struct {
		name      string
		sums      []health.Quantity
		storeErr  error
		wantErr   string
		wantNil   bool
		wantValue string
		wantUnit  string
	}{
		{name: "no samples resolves without sum", sums: nil, wantNil: true},
		{
			name:      "single unit passes through",
			sums:      []health.Quantity{{Value: decimal.NewFromInt(320), Unit: health.Kilocalorie}},
			wantValue: "320",
			wantUnit:  "kcal",
		},
		{
			name: "mixed compatible units fold into first unit",
			sums: []health.Quantity{
				{Value: decimal.NewFromInt(100), Unit: health.Kilocalorie},
				{Value: decimal.NewFromInt(4184), Unit: health.Joule},
			},
			wantValue: "101",
			wantUnit:  "kcal",
		},
		{
			name: "incompatible units fail the query",
			sums: []health.Quantity{
				{Value: decimal.NewFromInt(100), Unit: health.Kilocalorie},
				{Value: decimal.NewFromInt(3), Unit: health.Minute},
			},
			wantErr: "mixed sample units",
		},
		{name: "store error is reported", storeErr: errors.New("store unavailable"), wantErr: "store unavailable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storagemocks.NewSampleStore(t)
			store.EXPECT().
				SumByUnit(mock.Anything, health.IdentifierActiveEnergyBurned, pred).
				Return(tc.sums, tc.storeErr).
				Once()

			stats, err := executeAndWait(t, NewStoreOracle(store), query)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				require.Nil(t, stats)
				return
			}
			require.NoError(t, err)
			require.Equal(t, health.IdentifierActiveEnergyBurned, stats.QuantityType)
			if tc.wantNil {
				require.Nil(t, stats.SumQuantity())
				return
			}
			sum := stats.SumQuantity()
			require.NotNil(t, sum)
			require.Equal(t, tc.wantUnit, sum.Unit.Symbol)
			require.True(t, decimal.RequireFromString(tc.wantValue).Equal(sum.Value), "got %s", sum.Value)
		})
	}
}

func TestStoreOracle_RejectsNonSumOptions(t *testing.T) {
	store := storagemocks.NewSampleStore(t)

	_, err := executeAndWait(t, NewStoreOracle(store), StatisticsQuery{QuantityType: health.IdentifierStepCount})
	require.ErrorIs(t, err, ErrUnsupportedOptions)
}

func TestStoreOracle_PanicBecomesQueryFailure(t *testing.T) {
	store := storagemocks.NewSampleStore(t)
	store.EXPECT().
		SumByUnit(mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, string, health.SamplePredicate) { panic("driver bug") }).
		Return(nil, nil).
		Once()

	_, err := executeAndWait(t, NewStoreOracle(store), StatisticsQuery{QuantityType: health.IdentifierStepCount, Options: CumulativeSum})
	require.ErrorContains(t, err, "driver bug")
}

func TestStoreOracle_RequestAuthorization(t *testing.T) {
	store := storagemocks.NewSampleStore(t)
	require.NoError(t, NewStoreOracle(store).RequestAuthorization(context.Background(), []string{health.IdentifierStepCount}))
}
