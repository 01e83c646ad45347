package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	apperr "github.com/idlefit/healthstat/internal/core/errors"
	"github.com/idlefit/healthstat/internal/core/health"
	"github.com/idlefit/healthstat/internal/core/oracle"
	oraclemocks "github.com/idlefit/healthstat/internal/mocks/oracle"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	windowStart = int64(1700000000000)
	windowEnd   = int64(1700003600000)
)

// resolveWith makes the mock oracle report exactly one outcome asynchronously.
func resolveWith(sum *health.Quantity, err error) func(context.Context, oracle.StatisticsQuery, oracle.ResultHandler) {
	return func(_ context.Context, q oracle.StatisticsQuery, handler oracle.ResultHandler) {
		go func() {
			if err != nil {
				handler(nil, err)
				return
			}
			handler(oracle.NewStatistics(q.QuantityType, sum), nil)
		}()
	}
}

func queryFor(identifier string, start, end int64) any {
	return mock.MatchedBy(func(q oracle.StatisticsQuery) bool {
		return q.QuantityType == identifier &&
			q.Options == oracle.CumulativeSum &&
			q.Predicate.Options == health.StrictStartDate &&
			q.Predicate.Start.Equal(time.UnixMilli(start)) &&
			q.Predicate.End.Equal(time.UnixMilli(end))
	})
}

func quantity(v float64, u health.Unit) *health.Quantity {
	q := health.NewQuantity(v, u)
	return &q
}

func TestExecutor_Execute(t *testing.T) {
	tests := []struct {
		name        string
		category    health.Category
		sum         *health.Quantity
		oracleErr   error
		want        float64
		wantCode    string
		wantMessage string
	}{
		{name: "steps sum", category: health.StepCount, sum: quantity(1523, health.Count), want: 1523.0},
		{name: "no samples yields zero", category: health.ExerciseTime, sum: nil, want: 0.0},
		{name: "energy read in kcal", category: health.ActiveEnergyBurned, sum: quantity(4184, health.Kilojoule), want: 1000.0},
		{name: "exercise read in minutes", category: health.ExerciseTime, sum: quantity(5400, health.Second), want: 90.0},
		{name: "incompatible unit fails soft", category: health.StepCount, sum: quantity(12, health.Minute), want: 0.0},
		{
			name:        "oracle failure passes message through",
			category:    health.StepCount,
			oracleErr:   errors.New("store unavailable"),
			wantCode:    apperr.CodeQueryError,
			wantMessage: "store unavailable",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := oraclemocks.NewOracle(t)
			o.EXPECT().
				Execute(mock.Anything, queryFor(tc.category.Identifier(), windowStart, windowEnd), mock.Anything).
				Run(resolveWith(tc.sum, tc.oracleErr)).
				Once()

			got, err := NewExecutor(o).Execute(context.Background(), tc.category, windowStart, windowEnd)
			if tc.wantCode != "" {
				require.Error(t, err)
				require.Equal(t, tc.wantCode, apperr.CodeOf(err))
				require.Equal(t, tc.wantMessage, err.Error())
				require.ErrorIs(t, err, tc.oracleErr)
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestExecutor_IssuesOneQueryPerCall(t *testing.T) {
	o := oraclemocks.NewOracle(t)
	o.EXPECT().
		Execute(mock.Anything, queryFor(health.IdentifierStepCount, windowStart, windowEnd), mock.Anything).
		Run(resolveWith(quantity(1523, health.Count), nil)).
		Times(2)

	e := NewExecutor(o)
	first, err := e.Execute(context.Background(), health.StepCount, windowStart, windowEnd)
	require.NoError(t, err)
	second, err := e.Execute(context.Background(), health.StepCount, windowStart, windowEnd)
	require.NoError(t, err)

	require.Equal(t, first, second)
	o.AssertNumberOfCalls(t, "Execute", 2)
}

func TestExecutor_InvertedWindowPassesThrough(t *testing.T) {
	o := oraclemocks.NewOracle(t)
	o.EXPECT().
		Execute(mock.Anything, queryFor(health.IdentifierStepCount, windowEnd, windowStart), mock.Anything).
		Run(resolveWith(nil, nil)).
		Once()

	got, err := NewExecutor(o).Execute(context.Background(), health.StepCount, windowEnd, windowStart)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestExecutor_FirstOutcomeWins(t *testing.T) {
	o := oraclemocks.NewOracle(t)
	o.EXPECT().
		Execute(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, q oracle.StatisticsQuery, handler oracle.ResultHandler) {
			handler(oracle.NewStatistics(q.QuantityType, quantity(7, health.Count)), nil)
			handler(nil, errors.New("late failure"))
		}).
		Once()

	got, err := NewExecutor(o).Execute(context.Background(), health.StepCount, windowStart, windowEnd)
	require.NoError(t, err)
	require.Equal(t, 7.0, got)
}

func TestExecutor_PassesContextToOracle(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	o := oraclemocks.NewOracle(t)
	o.EXPECT().
		Execute(mock.MatchedBy(func(c context.Context) bool { return c.Value(ctxKey{}) == "marker" }), mock.Anything, mock.Anything).
		Run(resolveWith(nil, nil)).
		Once()

	_, err := NewExecutor(o).Execute(ctx, health.StepCount, windowStart, windowEnd)
	require.NoError(t, err)
}
