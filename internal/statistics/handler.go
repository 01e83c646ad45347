package statistics

import (
	"net/http"
	"strconv"

	apperr "github.com/idlefit/healthstat/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the REST statistics routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/statistics", s.HandleQuerySummary)
	r.GET("/v1/statistics/:type", s.HandleQueryStatistic)
}

// HandleQueryStatistic handles GET /v1/statistics/:type
// Query parameters: startTime, endTime (epoch milliseconds)
func (s *Service) HandleQueryStatistic(c *gin.Context) {
	args := map[string]any{ArgType: c.Param("type")}
	copyMillisParam(c, args, ArgStartTime)
	copyMillisParam(c, args, ArgEndTime)

	req, err := ValidateAndMap(args)
	if err != nil {
		writeError(c, err)
		return
	}

	value, err := s.executor.Execute(c.Request.Context(), req.Category, req.StartMillis, req.EndMillis)
	if err != nil {
		writeError(c, err)
		return
	}

	unit, _ := req.Category.CanonicalUnit()
	c.JSON(http.StatusOK, StatisticResponse{
		Type:      req.Label,
		StartTime: req.StartMillis,
		EndTime:   req.EndMillis,
		Unit:      unit.Symbol,
		Value:     value,
	})
}

// HandleQuerySummary handles GET /v1/statistics
// Query parameters: startTime, endTime (epoch milliseconds)
func (s *Service) HandleQuerySummary(c *gin.Context) {
	start, okStart := parseMillisParam(c, ArgStartTime)
	end, okEnd := parseMillisParam(c, ArgEndTime)
	if !okStart || !okEnd {
		writeError(c, apperr.InvalidArguments())
		return
	}

	summary, err := s.QuerySummary(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// copyMillisParam copies a query parameter into args. Unparsable values are
// kept as strings so validation rejects them like any ill-typed argument.
func copyMillisParam(c *gin.Context, args map[string]any, key string) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		args[key] = n
		return
	}
	args[key] = raw
}

func parseMillisParam(c *gin.Context, key string) (int64, bool) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func writeError(c *gin.Context, err error) {
	status, resp := apperr.Response(err)
	c.JSON(status, resp)
}
