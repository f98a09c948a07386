package analytics

import (
	"testing"
	"time"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

func weekDecision(categoryID string, result models.DecisionResult, confidence int, createdAt string) models.Decision {
	d := models.Decision{
		CategoryID: categoryID,
		Result:     result,
		Confidence: confidence,
		CreatedAt:  createdAt,
	}
	if result.Completed() {
		d.ResolvedAt = createdAt
	}
	return d
}

func TestWeeklyReportAssignsByCreationDate(t *testing.T) {
	weekStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	// Created in the previous week, resolved during the current one: the
	// report books it in the previous week.
	carryOver := weekDecision("daily", models.ResultPositive, 3, "2026-01-02T10:00:00Z")
	carryOver.ResolvedAt = "2026-01-06T10:00:00Z"

	list := []models.Decision{
		weekDecision("daily", models.ResultPositive, 4, "2026-01-05T09:00:00Z"),
		weekDecision("daily", models.ResultNegative, 2, "2026-01-07T09:00:00Z"),
		weekDecision("study", models.ResultPending, 3, "2026-01-08T09:00:00Z"),
		carryOver,
		// Outside both weeks entirely
		weekDecision("daily", models.ResultPositive, 5, "2025-12-01T09:00:00Z"),
	}

	report := WeeklyReport(list, weekStart)

	if report.Period.Start != "2026-01-05" || report.Period.End != "2026-01-11" {
		t.Errorf("unexpected period: %+v", report.Period)
	}
	if report.Counts.Total != 3 || report.Counts.Completed != 2 || report.Counts.Pending != 1 {
		t.Errorf("unexpected current counts: %+v", report.Counts)
	}
	if report.ResultCounts.Positive != 1 || report.ResultCounts.Negative != 1 || report.ResultCounts.Pending != 1 {
		t.Errorf("unexpected current result counts: %+v", report.ResultCounts)
	}

	if report.Previous == nil {
		t.Fatal("expected previous week summary")
	}
	if report.Previous.Period.Start != "2025-12-29" || report.Previous.Period.End != "2026-01-04" {
		t.Errorf("unexpected previous period: %+v", report.Previous.Period)
	}
	if report.Previous.Counts.Total != 1 || report.Previous.Counts.Completed != 1 {
		t.Errorf("carry-over decision should land in previous week: %+v", report.Previous.Counts)
	}
}

func TestWeeklyReportTopCategory(t *testing.T) {
	weekStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	list := []models.Decision{
		weekDecision("study", models.ResultPending, 3, "2026-01-05T09:00:00Z"),
		weekDecision("invest", models.ResultPositive, 3, "2026-01-06T09:00:00Z"),
		weekDecision("invest", models.ResultPending, 3, "2026-01-07T09:00:00Z"),
	}

	report := WeeklyReport(list, weekStart)
	if report.TopCategory == nil {
		t.Fatal("expected a top category")
	}
	// Pending decisions count toward the top category
	if report.TopCategory.CategoryID != "invest" || report.TopCategory.Total != 2 {
		t.Errorf("unexpected top category: %+v", report.TopCategory)
	}
}

func TestWeeklyReportTopCategoryTieKeepsFirstEncountered(t *testing.T) {
	weekStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	list := []models.Decision{
		weekDecision("study", models.ResultPending, 3, "2026-01-05T09:00:00Z"),
		weekDecision("invest", models.ResultPending, 3, "2026-01-06T09:00:00Z"),
	}

	report := WeeklyReport(list, weekStart)
	if report.TopCategory == nil || report.TopCategory.CategoryID != "study" {
		t.Errorf("tie should keep first-encountered category, got %+v", report.TopCategory)
	}
}

func TestWeeklyReportInsight(t *testing.T) {
	weekStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("no completed decisions yields no insight", func(t *testing.T) {
		list := []models.Decision{
			weekDecision("daily", models.ResultPending, 3, "2026-01-05T09:00:00Z"),
		}
		report := WeeklyReport(list, weekStart)
		if report.Insight != nil {
			t.Errorf("expected nil insight, got %q", *report.Insight)
		}
	})

	t.Run("no positives yields fixed message", func(t *testing.T) {
		list := []models.Decision{
			weekDecision("daily", models.ResultNegative, 3, "2026-01-05T09:00:00Z"),
		}
		report := WeeklyReport(list, weekStart)
		if report.Insight == nil || *report.Insight != "이번 주는 긍정 결과가 없었어요." {
			t.Errorf("unexpected insight: %v", report.Insight)
		}
	})

	t.Run("best confidence level wins", func(t *testing.T) {
		list := []models.Decision{
			weekDecision("daily", models.ResultPositive, 4, "2026-01-05T09:00:00Z"),
			weekDecision("daily", models.ResultNegative, 2, "2026-01-06T09:00:00Z"),
			weekDecision("daily", models.ResultPositive, 2, "2026-01-07T09:00:00Z"),
		}
		report := WeeklyReport(list, weekStart)
		// Level 4 is 100% positive, level 2 only 50%
		if report.Insight == nil || *report.Insight != "확신도 4에서 성과가 가장 좋았어요." {
			t.Errorf("unexpected insight: %v", report.Insight)
		}
	})

	t.Run("rate tie goes to the lowest level", func(t *testing.T) {
		list := []models.Decision{
			weekDecision("daily", models.ResultPositive, 2, "2026-01-05T09:00:00Z"),
			weekDecision("daily", models.ResultPositive, 5, "2026-01-06T09:00:00Z"),
		}
		report := WeeklyReport(list, weekStart)
		if report.Insight == nil || *report.Insight != "확신도 2에서 성과가 가장 좋았어요." {
			t.Errorf("unexpected insight: %v", report.Insight)
		}
	})
}

func TestBuildDeltaIdenticalWeeksIsAllZero(t *testing.T) {
	weekStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	list := []models.Decision{
		weekDecision("daily", models.ResultPositive, 4, "2026-01-05T09:00:00Z"),
		weekDecision("daily", models.ResultNegative, 2, "2026-01-06T09:00:00Z"),
		weekDecision("study", models.ResultPending, 3, "2026-01-07T09:00:00Z"),
	}
	summary := BuildWeeklySummary(list, weekStart, weekStart.AddDate(0, 0, 6))

	delta := BuildDelta(summary, summary)

	if delta.Counts != (models.WeekCounts{}) {
		t.Errorf("expected zero count delta, got %+v", delta.Counts)
	}
	if delta.ResultCounts != (models.WeekResultCounts{}) {
		t.Errorf("expected zero result count delta, got %+v", delta.ResultCounts)
	}
	if delta.ResultRates != (models.ResultRateDelta{}) {
		t.Errorf("expected zero rate delta, got %+v", delta.ResultRates)
	}
	if delta.Confidence.Average != 0 {
		t.Errorf("expected zero confidence average delta, got %v", delta.Confidence.Average)
	}
	for _, level := range delta.Confidence.ByLevel {
		if level.Total != 0 || level.PositiveRate != 0 {
			t.Errorf("expected zero level delta, got %+v", level)
		}
	}
}

func TestBuildDeltaComputesSignedDifferences(t *testing.T) {
	weekStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	prevStart := weekStart.AddDate(0, 0, -7)

	current := BuildWeeklySummary([]models.Decision{
		weekDecision("daily", models.ResultPositive, 4, "2026-01-05T09:00:00Z"),
		weekDecision("daily", models.ResultPositive, 4, "2026-01-06T09:00:00Z"),
		weekDecision("daily", models.ResultNegative, 2, "2026-01-07T09:00:00Z"),
		weekDecision("daily", models.ResultPending, 3, "2026-01-08T09:00:00Z"),
	}, weekStart, weekStart.AddDate(0, 0, 6))

	previous := BuildWeeklySummary([]models.Decision{
		weekDecision("daily", models.ResultPositive, 3, "2025-12-29T09:00:00Z"),
		weekDecision("daily", models.ResultNegative, 3, "2025-12-30T09:00:00Z"),
	}, prevStart, prevStart.AddDate(0, 0, 6))

	delta := BuildDelta(current, previous)

	if delta.Counts.Total != 2 || delta.Counts.Completed != 1 || delta.Counts.Pending != 1 {
		t.Errorf("unexpected count delta: %+v", delta.Counts)
	}
	if delta.ResultCounts.Positive != 1 || delta.ResultCounts.Negative != 0 {
		t.Errorf("unexpected result count delta: %+v", delta.ResultCounts)
	}

	// Positive rate: 2/4=50% now vs 1/2=50% before
	if delta.ResultRates.Positive != 0 {
		t.Errorf("expected positive rate delta 0, got %v", delta.ResultRates.Positive)
	}
	// Negative rate: 1/4=25% now vs 1/2=50% before
	if delta.ResultRates.Negative != -25 {
		t.Errorf("expected negative rate delta -25, got %v", delta.ResultRates.Negative)
	}
	// Pending rate: 1/4=25% now vs 0/2=0% before
	if delta.ResultRates.Pending != 25 {
		t.Errorf("expected pending rate delta 25, got %v", delta.ResultRates.Pending)
	}

	// Confidence average: (4+4+2)/3 = 3.3 now vs (3+3)/2 = 3 before
	if delta.Confidence.Average != 0.3 {
		t.Errorf("expected confidence average delta 0.3, got %v", delta.Confidence.Average)
	}

	// Level 4: 2 completions now vs 0 before, 100% positive now
	level4 := delta.Confidence.ByLevel[3]
	if level4.Confidence != 4 || level4.Total != 2 || level4.PositiveRate != 100 {
		t.Errorf("unexpected level 4 delta: %+v", level4)
	}
	// Level 3: 0 now vs 2 before (one positive)
	level3 := delta.Confidence.ByLevel[2]
	if level3.Total != -2 || level3.PositiveRate != -50 {
		t.Errorf("unexpected level 3 delta: %+v", level3)
	}
}
