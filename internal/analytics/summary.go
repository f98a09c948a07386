package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

// Parameter bounds for the point-in-time summary.
const (
	MinSummaryDays     = 1
	MaxSummaryDays     = 3650
	DefaultSummaryDays = 90

	MinSummaryLimit     = 5
	MaxSummaryLimit     = 50
	DefaultSummaryLimit = 10
)

// recentCompletedCap is the fixed slice applied before the caller's limit.
// Preserved as-is pending product sign-off: a limit above 10 can therefore
// never be honored.
const recentCompletedCap = 10

// SummaryParams are the inputs of the point-in-time summary. Zero values
// fall back to defaults; Days and Limit are clamped to their bounds and
// CategoryID "" or "all" means no filter.
type SummaryParams struct {
	Days       int
	CategoryID string
	Limit      int
	Now        time.Time
}

// Summarize computes the point-in-time summary over decisions created in
// the lookback window, composing the category, action, confidence, tag and
// temporal aggregators plus the recently-resolved list.
func Summarize(list []models.Decision, params SummaryParams) models.AnalysisSummaryResponse {
	days := params.Days
	if days == 0 {
		days = DefaultSummaryDays
	}
	days = clampInt(days, MinSummaryDays, MaxSummaryDays)

	limit := params.Limit
	if limit == 0 {
		limit = DefaultSummaryLimit
	}
	limit = clampInt(limit, MinSummaryLimit, MaxSummaryLimit)

	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	filterCategory := params.CategoryID != "" && params.CategoryID != "all"
	sinceMs := now.UnixMilli() - int64(days)*24*int64(time.Hour/time.Millisecond)

	filtered := make([]models.Decision, 0, len(list))
	for _, d := range list {
		if filterCategory && d.CategoryID != params.CategoryID {
			continue
		}
		if IsoToMs(d.CreatedAt) < sinceMs {
			continue
		}
		filtered = append(filtered, d)
	}

	completed := completedOf(filtered)

	positive, negative, neutral := 0, 0, 0
	for _, d := range completed {
		switch d.Result {
		case models.ResultPositive:
			positive++
		case models.ResultNegative:
			negative++
		case models.ResultNeutral:
			neutral++
		}
	}

	return models.AnalysisSummaryResponse{
		Summary: models.SummaryTotals{
			Total:                  len(filtered),
			Completed:              len(completed),
			Pending:                len(filtered) - len(completed),
			ResultCounts:           models.ResultCounts{Positive: positive, Negative: negative, Neutral: neutral},
			PositiveRate:           Percent(positive, len(completed)),
			AvgConfidenceCompleted: Average1(completedConfidences(completed)),
		},
		ByCategory:      GroupByCategory(completed),
		ByAction:        InvestActions(completed),
		ConfidenceStats: ConfidenceLevels(completed),
		TopTags:         TopTags(filtered, completed, DefaultTopTags),
		ByWeekday:       ByWeekday(completed),
		ByHour:          ByHour(completed),
		RecentCompleted: recentCompleted(completed, limit),
	}
}

// recentCompleted lists the most recently resolved decisions, newest
// first, capped at min(recentCompletedCap, limit).
func recentCompleted(completed []models.Decision, limit int) []models.RecentDecision {
	resolved := make([]models.Decision, 0, len(completed))
	for _, d := range completed {
		if d.Result.Completed() {
			resolved = append(resolved, d)
		}
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return IsoToMs(resolved[i].ResolvedAt) > IsoToMs(resolved[j].ResolvedAt)
	})

	if len(resolved) > recentCompletedCap {
		resolved = resolved[:recentCompletedCap]
	}
	if len(resolved) > limit {
		resolved = resolved[:limit]
	}

	recent := make([]models.RecentDecision, 0, len(resolved))
	for _, d := range resolved {
		tags := d.Tags
		if tags == nil {
			tags = []string{}
		}
		recent = append(recent, models.RecentDecision{
			ID:            d.ID,
			CategoryID:    d.CategoryID,
			Title:         d.Title,
			Result:        d.Result,
			Confidence:    d.Confidence,
			ResolvedAt:    d.ResolvedAt,
			Tags:          tags,
			HasReflection: strings.TrimSpace(metaString(d.Meta, "reflection")) != "",
		})
	}
	return recent
}

// Overview computes the all-time breakdown over the full decision list.
func Overview(list []models.Decision) models.AnalysisOverviewResponse {
	completed := completedOf(list)

	positive, negative, neutral := 0, 0, 0
	for _, d := range completed {
		switch d.Result {
		case models.ResultPositive:
			positive++
		case models.ResultNegative:
			negative++
		case models.ResultNeutral:
			neutral++
		}
	}

	return models.AnalysisOverviewResponse{
		Total:           len(list),
		Completed:       len(completed),
		Pending:         len(list) - len(completed),
		ResultCounts:    models.ResultCounts{Positive: positive, Negative: negative, Neutral: neutral},
		PositiveRate:    Percent(positive, len(completed)),
		ByAction:        InvestActions(completed),
		ConfidenceStats: ConfidenceLevels(completed),
		ByCategory:      GroupByCategory(completed),
	}
}
