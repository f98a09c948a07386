package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seongmin-h/decisionlog/backend/internal/analytics"
	"github.com/seongmin-h/decisionlog/backend/internal/service"
)

type AnalyticsHandler struct {
	decisionService  service.DecisionService
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(decisionService service.DecisionService, analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		decisionService:  decisionService,
		analyticsService: analyticsService,
	}
}

// queryInt reads an integer query parameter. Missing or malformed values
// fall back to the default; range clamping happens in the analytics layer.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// Overview handles GET /api/v1/analysis
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	overview, err := h.analyticsService.Overview(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// Pending handles GET /api/v1/analysis/pending
func (h *AnalyticsHandler) Pending(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	list, err := h.decisionService.ListPendingDecisions(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Summary handles GET /api/v1/analysis/summary
//
// Query parameters: days (lookback window), categoryId (filter, "all"
// means no filter), limit (recent completed cap).
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	params := analytics.SummaryParams{
		Days:       queryInt(c, "days", analytics.DefaultSummaryDays),
		CategoryID: c.Query("categoryId"),
		Limit:      queryInt(c, "limit", analytics.DefaultSummaryLimit),
	}

	summary, err := h.analyticsService.Summary(c.Request.Context(), uid, params)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Weekly handles GET /api/v1/analysis/weekly
//
// weekStart selects the reporting week by its day (YYYY-MM-DD); when
// absent or malformed the current week is reported.
func (h *AnalyticsHandler) Weekly(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	weekStart := analytics.StartOfWeekUTC(time.Now().UTC())
	if raw := c.Query("weekStart"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			weekStart = t.UTC()
		}
	}

	report, err := h.analyticsService.WeeklyReport(c.Request.Context(), uid, weekStart)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// WeeklyTrend handles GET /api/v1/analysis/weekly-trend
func (h *AnalyticsHandler) WeeklyTrend(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	weeks := queryInt(c, "weeks", analytics.DefaultTrendWeeks)
	categoryID := c.Query("categoryId")

	trend, err := h.analyticsService.WeeklyTrend(c.Request.Context(), uid, weeks, categoryID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trend)
}
