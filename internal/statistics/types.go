package statistics

// Channel and method served by this package.
const (
	ChannelName           = "com.idlefit/health_statistics"
	MethodQueryStatistics = "queryStatistics"
)

// StatisticResponse is the REST response for a single category query.
type StatisticResponse struct {
	Type      string  `json:"type"`
	StartTime int64   `json:"startTime"`
	EndTime   int64   `json:"endTime"`
	Unit      string  `json:"unit"`
	Value     float64 `json:"value"`
}

// SummaryValue is one category's total within a Summary.
type SummaryValue struct {
	Type  string  `json:"type"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// Summary holds the totals of every supported category over one window.
type Summary struct {
	StartTime int64          `json:"startTime"`
	EndTime   int64          `json:"endTime"`
	Values    []SummaryValue `json:"values"`
}
