package statistics

import (
	"encoding/json"

	apperr "github.com/idlefit/healthstat/internal/core/errors"
	"github.com/idlefit/healthstat/internal/core/health"
)

// Argument keys of a queryStatistics call.
const (
	ArgStartTime = "startTime"
	ArgEndTime   = "endTime"
	ArgType      = "type"
)

// QueryRequest is a validated queryStatistics call.
type QueryRequest struct {
	Label       string
	Category    health.Category
	StartMillis int64
	EndMillis   int64
}

// ValidateAndMap checks the raw call arguments and resolves the metric label.
//
// raw must be a map holding integer startTime/endTime (epoch ms) and a string
// type. The window is not checked for ordering; an inverted window is passed
// through as-is.
func ValidateAndMap(raw any) (QueryRequest, error) {
	args, ok := raw.(map[string]any)
	if !ok {
		return QueryRequest{}, apperr.InvalidArguments()
	}

	start, okStart := extractInt64(args, ArgStartTime)
	end, okEnd := extractInt64(args, ArgEndTime)
	label, okType := args[ArgType].(string)
	if !okStart || !okEnd || !okType {
		return QueryRequest{}, apperr.InvalidArguments()
	}

	category, ok := health.CategoryForLabel(label)
	if !ok {
		return QueryRequest{}, apperr.InvalidType(label)
	}

	return QueryRequest{
		Label:       label,
		Category:    category,
		StartMillis: start,
		EndMillis:   end,
	}, nil
}

// extractInt64 accepts Go integer types and integral json.Number values.
// Floats and numeric strings are rejected.
func extractInt64(args map[string]any, key string) (int64, bool) {
	v, ok := args[key]
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int64:
		return val, true
	case int32:
		return int64(val), true
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
