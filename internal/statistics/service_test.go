package statistics

import (
	"context"
	"errors"
	"testing"

	"github.com/idlefit/healthstat/internal/channel"
	apperr "github.com/idlefit/healthstat/internal/core/errors"
	"github.com/idlefit/healthstat/internal/core/health"
	oraclemocks "github.com/idlefit/healthstat/internal/mocks/oracle"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_HandleMethodCall(t *testing.T) {
	o := oraclemocks.NewOracle(t)
	o.EXPECT().
		Execute(mock.Anything, queryFor(health.IdentifierStepCount, windowStart, windowEnd), mock.Anything).
		Run(resolveWith(quantity(1523, health.Count), nil)).
		Once()

	svc := NewService(o, 0)
	got, err := svc.HandleMethodCall(context.Background(), channel.MethodCall{
		Method: MethodQueryStatistics,
		Arguments: map[string]any{
			"startTime": windowStart,
			"endTime":   windowEnd,
			"type":      "STEPS",
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1523.0, got)
}

func TestService_HandleMethodCall_RejectsBeforeQuerying(t *testing.T) {
	// No expectations: validation failures must not reach the oracle.
	o := oraclemocks.NewOracle(t)
	svc := NewService(o, 0)

	_, err := svc.HandleMethodCall(context.Background(), channel.MethodCall{
		Method:    MethodQueryStatistics,
		Arguments: map[string]any{"startTime": windowStart, "endTime": windowEnd, "type": "RUN_DISTANCE"},
	})
	require.Equal(t, apperr.CodeInvalidType, apperr.CodeOf(err))
	require.Equal(t, "Invalid health data type: RUN_DISTANCE", err.Error())

	_, err = svc.HandleMethodCall(context.Background(), channel.MethodCall{
		Method:    MethodQueryStatistics,
		Arguments: map[string]any{"startTime": windowStart, "type": "STEPS"},
	})
	require.Equal(t, apperr.CodeInvalidArguments, apperr.CodeOf(err))
	require.Equal(t, "Missing or invalid arguments", err.Error())
}

func TestService_HandleMethodCall_UnknownMethod(t *testing.T) {
	svc := NewService(oraclemocks.NewOracle(t), 0)

	_, err := svc.HandleMethodCall(context.Background(), channel.MethodCall{Method: "queryStatistic"})
	require.ErrorIs(t, err, channel.ErrNotImplemented)
}

func TestService_QuerySummary(t *testing.T) {
	o := oraclemocks.NewOracle(t)
	o.EXPECT().
		Execute(mock.Anything, queryFor(health.IdentifierStepCount, windowStart, windowEnd), mock.Anything).
		Run(resolveWith(quantity(1523, health.Count), nil)).
		Once()
	o.EXPECT().
		Execute(mock.Anything, queryFor(health.IdentifierActiveEnergyBurned, windowStart, windowEnd), mock.Anything).
		Run(resolveWith(quantity(250000, health.SmallCal), nil)).
		Once()
	o.EXPECT().
		Execute(mock.Anything, queryFor(health.IdentifierExerciseTime, windowStart, windowEnd), mock.Anything).
		Run(resolveWith(nil, nil)).
		Once()

	summary, err := NewService(o, 2).QuerySummary(context.Background(), windowStart, windowEnd)
	require.NoError(t, err)
	require.Equal(t, windowStart, summary.StartTime)
	require.Equal(t, windowEnd, summary.EndTime)
	require.Equal(t, []SummaryValue{
		{Type: "STEPS", Unit: "count", Value: 1523},
		{Type: "ACTIVE_ENERGY_BURNED", Unit: "kcal", Value: 250},
		{Type: "EXERCISE_TIME", Unit: "min", Value: 0},
	}, summary.Values)
}

func TestService_QuerySummary_FailsOnFirstError(t *testing.T) {
	o := oraclemocks.NewOracle(t)
	o.EXPECT().
		Execute(mock.Anything, queryFor(health.IdentifierActiveEnergyBurned, windowStart, windowEnd), mock.Anything).
		Run(resolveWith(nil, errors.New("store unavailable"))).
		Once()
	o.EXPECT().
		Execute(mock.Anything, mock.Anything, mock.Anything).
		Run(resolveWith(nil, nil)).
		Maybe()

	summary, err := NewService(o, 1).QuerySummary(context.Background(), windowStart, windowEnd)
	require.Nil(t, summary)
	require.Equal(t, apperr.CodeQueryError, apperr.CodeOf(err))
	require.Equal(t, "store unavailable", err.Error())
}
