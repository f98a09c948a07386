package analytics

import (
	"fmt"
	"time"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

// Insight message templates. Product copy, kept verbatim.
const (
	insightNoPositives     = "이번 주는 긍정 결과가 없었어요."
	insightBestLevelFormat = "확신도 %d에서 성과가 가장 좋았어요."
)

// createdInWeek filters list to decisions created within the seven days
// starting at weekStart. The weekly report deliberately assigns by
// creation date, not resolution date: it answers "what did I log this
// week", regardless of when those decisions resolved.
func createdInWeek(list []models.Decision, weekStart time.Time) []models.Decision {
	startMs := weekStart.UnixMilli()
	endMs := weekStart.AddDate(0, 0, 7).UnixMilli()

	filtered := make([]models.Decision, 0)
	for _, d := range list {
		createdMs := IsoToMs(d.CreatedAt)
		if createdMs >= startMs && createdMs < endMs {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// buildTopCategory picks the category with the most decisions in the week,
// pending included. Ties keep the first-encountered category. Returns nil
// for an empty week.
func buildTopCategory(list []models.Decision) *models.TopCategory {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, d := range list {
		key := d.CategoryID
		if key == "" {
			key = UnknownCategory
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	var top *models.TopCategory
	for _, key := range order {
		if top == nil || counts[key] > top.Total {
			top = &models.TopCategory{CategoryID: key, Total: counts[key]}
		}
	}
	return top
}

// buildInsight produces the week's one-line takeaway: nil when nothing
// completed, a fixed message when nothing went positive, otherwise the
// confidence level that performed best. Ties go to the lowest level.
func buildInsight(completed []models.Decision, byLevel []models.ConfidenceLevelStats) *string {
	if len(completed) == 0 {
		return nil
	}

	positive := 0
	for _, d := range completed {
		if d.Result == models.ResultPositive {
			positive++
		}
	}
	if positive == 0 {
		msg := insightNoPositives
		return &msg
	}

	var best *models.ConfidenceLevelStats
	for i := range byLevel {
		level := &byLevel[i]
		if level.Total == 0 {
			continue
		}
		if best == nil || level.PositiveRate > best.PositiveRate {
			best = level
		}
	}
	if best == nil {
		return nil
	}
	msg := fmt.Sprintf(insightBestLevelFormat, best.Confidence)
	return &msg
}

// BuildWeeklySummary computes the full summary for one week's worth of
// decisions. weekStart and weekEnd are the inclusive Monday and Sunday.
func BuildWeeklySummary(list []models.Decision, weekStart, weekEnd time.Time) models.WeeklyReportSummary {
	total := len(list)
	completed := completedOf(list)
	pending := total - len(completed)

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

	byLevel := ConfidenceLevels(completed)

	return models.WeeklyReportSummary{
		Period: models.WeekPeriod{
			Start: isoDateUTC(weekStart),
			End:   isoDateUTC(weekEnd),
		},
		Counts: models.WeekCounts{
			Total:     total,
			Completed: len(completed),
			Pending:   pending,
		},
		ResultCounts: models.WeekResultCounts{
			Positive: positive,
			Negative: negative,
			Neutral:  neutral,
			Pending:  pending,
		},
		Confidence: models.ConfidenceSummary{
			Average: Average1(completedConfidences(completed)),
			ByLevel: byLevel,
		},
		TopCategory: buildTopCategory(list),
		Insight:     buildInsight(completed, byLevel),
	}
}

// BuildDelta computes the signed difference between two weekly summaries
// across every metric. Result rates are percentage points, each computed
// against its own week's total. Running it on two identical summaries
// yields an all-zero delta.
func BuildDelta(current, previous models.WeeklyReportSummary) models.WeeklyReportDelta {
	rateDelta := func(curCount, prevCount int) float64 {
		return Round1(Rate1(curCount, current.Counts.Total) - Rate1(prevCount, previous.Counts.Total))
	}

	levelByConfidence := func(byLevel []models.ConfidenceLevelStats, confidence int) models.ConfidenceLevelStats {
		for _, level := range byLevel {
			if level.Confidence == confidence {
				return level
			}
		}
		return models.ConfidenceLevelStats{}
	}

	byLevel := make([]models.ConfidenceLevelDelta, 0, ConfidenceLevelCount)
	for level := 1; level <= ConfidenceLevelCount; level++ {
		cur := levelByConfidence(current.Confidence.ByLevel, level)
		prev := levelByConfidence(previous.Confidence.ByLevel, level)
		byLevel = append(byLevel, models.ConfidenceLevelDelta{
			Confidence:   level,
			Total:        cur.Total - prev.Total,
			PositiveRate: cur.PositiveRate - prev.PositiveRate,
		})
	}

	return models.WeeklyReportDelta{
		Counts: models.WeekCounts{
			Total:     current.Counts.Total - previous.Counts.Total,
			Completed: current.Counts.Completed - previous.Counts.Completed,
			Pending:   current.Counts.Pending - previous.Counts.Pending,
		},
		ResultCounts: models.WeekResultCounts{
			Positive: current.ResultCounts.Positive - previous.ResultCounts.Positive,
			Negative: current.ResultCounts.Negative - previous.ResultCounts.Negative,
			Neutral:  current.ResultCounts.Neutral - previous.ResultCounts.Neutral,
			Pending:  current.ResultCounts.Pending - previous.ResultCounts.Pending,
		},
		ResultRates: models.ResultRateDelta{
			Positive: rateDelta(current.ResultCounts.Positive, previous.ResultCounts.Positive),
			Negative: rateDelta(current.ResultCounts.Negative, previous.ResultCounts.Negative),
			Neutral:  rateDelta(current.ResultCounts.Neutral, previous.ResultCounts.Neutral),
			Pending:  rateDelta(current.ResultCounts.Pending, previous.ResultCounts.Pending),
		},
		Confidence: models.ConfidenceDelta{
			Average: Round1(current.Confidence.Average - previous.Confidence.Average),
			ByLevel: byLevel,
		},
	}
}

// WeeklyReport builds the report for the week starting at weekStart: the
// current week's summary, the immediately preceding week's, and the delta
// between them. Both weeks are filtered from the full list by creation
// date, each against its own seven-day window.
func WeeklyReport(list []models.Decision, weekStart time.Time) models.WeeklyReportResponse {
	weekEnd := weekStart.AddDate(0, 0, 6)
	prevWeekStart := weekStart.AddDate(0, 0, -7)
	prevWeekEnd := prevWeekStart.AddDate(0, 0, 6)

	current := BuildWeeklySummary(createdInWeek(list, weekStart), weekStart, weekEnd)
	previous := BuildWeeklySummary(createdInWeek(list, prevWeekStart), prevWeekStart, prevWeekEnd)
	delta := BuildDelta(current, previous)

	return models.WeeklyReportResponse{
		WeeklyReportSummary: current,
		Previous:            &previous,
		Delta:               &delta,
	}
}
