package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

var summaryNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func summaryDecision(categoryID string, result models.DecisionResult, createdAt, resolvedAt string) models.Decision {
	return models.Decision{
		ID:         "d-" + createdAt,
		CategoryID: categoryID,
		Title:      "decision",
		Result:     result,
		Confidence: 3,
		CreatedAt:  createdAt,
		ResolvedAt: resolvedAt,
	}
}

func TestSummarizeWindowFilter(t *testing.T) {
	list := []models.Decision{
		summaryDecision("daily", models.ResultPositive, "2026-01-08T10:00:00Z", "2026-01-09T10:00:00Z"),
		summaryDecision("daily", models.ResultPending, "2026-01-09T10:00:00Z", ""),
		// Outside a 7-day window
		summaryDecision("daily", models.ResultNegative, "2025-12-20T10:00:00Z", "2025-12-21T10:00:00Z"),
	}

	summary := Summarize(list, SummaryParams{Days: 7, Now: summaryNow})
	if summary.Summary.Total != 2 {
		t.Errorf("expected 2 decisions in window, got %d", summary.Summary.Total)
	}
	if summary.Summary.Completed != 1 || summary.Summary.Pending != 1 {
		t.Errorf("unexpected completed/pending split: %+v", summary.Summary)
	}
	if summary.Summary.PositiveRate != 100 {
		t.Errorf("expected positiveRate 100, got %d", summary.Summary.PositiveRate)
	}
}

func TestSummarizeCategoryFilter(t *testing.T) {
	list := []models.Decision{
		summaryDecision("invest", models.ResultPositive, "2026-01-08T10:00:00Z", "2026-01-09T10:00:00Z"),
		summaryDecision("health", models.ResultPositive, "2026-01-08T11:00:00Z", "2026-01-09T11:00:00Z"),
	}

	filtered := Summarize(list, SummaryParams{CategoryID: "invest", Now: summaryNow})
	if filtered.Summary.Total != 1 {
		t.Errorf("category filter should keep 1 decision, got %d", filtered.Summary.Total)
	}

	for _, categoryID := range []string{"", "all"} {
		summary := Summarize(list, SummaryParams{CategoryID: categoryID, Now: summaryNow})
		if summary.Summary.Total != 2 {
			t.Errorf("categoryId %q should not filter, got %d", categoryID, summary.Summary.Total)
		}
	}
}

func TestSummarizeClampsParams(t *testing.T) {
	// A decision from ~200 days back is only visible when days clamps high
	old := summaryDecision("daily", models.ResultPositive, "2025-06-01T10:00:00Z", "2025-06-02T10:00:00Z")

	summary := Summarize([]models.Decision{old}, SummaryParams{Days: 100000, Now: summaryNow})
	if summary.Summary.Total != 1 {
		t.Errorf("days above maximum should clamp, not break: got total %d", summary.Summary.Total)
	}

	summary = Summarize([]models.Decision{old}, SummaryParams{Days: -5, Now: summaryNow})
	if summary.Summary.Total != 0 {
		t.Errorf("negative days should clamp to minimum: got total %d", summary.Summary.Total)
	}

	// Zero days means unset and falls back to the 90-day default
	recent := summaryDecision("daily", models.ResultPositive, "2026-01-01T10:00:00Z", "2026-01-02T10:00:00Z")
	summary = Summarize([]models.Decision{recent, old}, SummaryParams{Now: summaryNow})
	if summary.Summary.Total != 1 {
		t.Errorf("default window should include only the recent decision, got %d", summary.Summary.Total)
	}
}

func TestRecentCompletedDoubleCap(t *testing.T) {
	list := make([]models.Decision, 0, 15)
	for i := 0; i < 15; i++ {
		createdAt := fmt.Sprintf("2026-01-0%dT%02d:00:00Z", 1+i%9, i)
		resolvedAt := fmt.Sprintf("2026-01-09T%02d:00:00Z", i)
		list = append(list, summaryDecision("daily", models.ResultPositive, createdAt, resolvedAt))
	}

	// A limit above the fixed cap of 10 is never honored
	summary := Summarize(list, SummaryParams{Limit: 50, Now: summaryNow})
	if len(summary.RecentCompleted) != 10 {
		t.Errorf("expected recentCompleted capped at 10, got %d", len(summary.RecentCompleted))
	}

	summary = Summarize(list, SummaryParams{Limit: 5, Now: summaryNow})
	if len(summary.RecentCompleted) != 5 {
		t.Errorf("expected recentCompleted limited to 5, got %d", len(summary.RecentCompleted))
	}

	// Newest resolution first
	if summary.RecentCompleted[0].ResolvedAt != "2026-01-09T14:00:00Z" {
		t.Errorf("expected newest resolution first, got %s", summary.RecentCompleted[0].ResolvedAt)
	}
}

func TestRecentCompletedShape(t *testing.T) {
	withReflection := summaryDecision("daily", models.ResultPositive, "2026-01-08T10:00:00Z", "2026-01-09T10:00:00Z")
	withReflection.Meta = models.DecisionMeta{"reflection": "충분히 검토했다"}

	blankReflection := summaryDecision("daily", models.ResultNegative, "2026-01-08T11:00:00Z", "2026-01-09T11:00:00Z")
	blankReflection.Meta = models.DecisionMeta{"reflection": "   "}

	noTags := summaryDecision("daily", models.ResultNeutral, "2026-01-08T12:00:00Z", "2026-01-09T12:00:00Z")
	noTags.Tags = nil

	summary := Summarize([]models.Decision{withReflection, blankReflection, noTags}, SummaryParams{Now: summaryNow})
	if len(summary.RecentCompleted) != 3 {
		t.Fatalf("expected 3 recent entries, got %d", len(summary.RecentCompleted))
	}

	// Sorted newest first: noTags, blankReflection, withReflection
	if !summary.RecentCompleted[2].HasReflection {
		t.Error("expected hasReflection true for non-blank reflection")
	}
	if summary.RecentCompleted[1].HasReflection {
		t.Error("whitespace-only reflection should not count")
	}
	if summary.RecentCompleted[0].Tags == nil {
		t.Error("tags must serialize as an empty array, not null")
	}
}

func TestSummarizeComposesAggregations(t *testing.T) {
	buy := summaryDecision("invest", models.ResultPositive, "2026-01-08T10:00:00Z", "2026-01-09T10:00:00Z")
	buy.Meta = models.DecisionMeta{"action": "buy"}
	buy.Tags = []string{"리스크"}

	summary := Summarize([]models.Decision{buy}, SummaryParams{Now: summaryNow})

	if len(summary.ByCategory) != 1 || summary.ByCategory[0].CategoryID != "invest" {
		t.Errorf("unexpected byCategory: %+v", summary.ByCategory)
	}
	if summary.ByAction.Buy.Total != 1 {
		t.Errorf("unexpected byAction: %+v", summary.ByAction)
	}
	if len(summary.ConfidenceStats) != ConfidenceLevelCount {
		t.Errorf("expected %d confidence buckets, got %d", ConfidenceLevelCount, len(summary.ConfidenceStats))
	}
	if len(summary.TopTags) != 1 || summary.TopTags[0].Tag != "리스크" {
		t.Errorf("unexpected topTags: %+v", summary.TopTags)
	}
	if len(summary.ByWeekday) != 7 || len(summary.ByHour) != 24 {
		t.Errorf("expected dense weekday/hour buckets, got %d/%d", len(summary.ByWeekday), len(summary.ByHour))
	}
}

func TestOverview(t *testing.T) {
	list := []models.Decision{
		summaryDecision("invest", models.ResultPositive, "2026-01-08T10:00:00Z", "2026-01-09T10:00:00Z"),
		summaryDecision("invest", models.ResultNegative, "2025-06-01T10:00:00Z", "2025-06-02T10:00:00Z"),
		summaryDecision("daily", models.ResultPending, "2026-01-09T10:00:00Z", ""),
	}

	overview := Overview(list)
	if overview.Total != 3 || overview.Completed != 2 || overview.Pending != 1 {
		t.Errorf("unexpected totals: %+v", overview)
	}
	if overview.PositiveRate != 50 {
		t.Errorf("expected positiveRate 50, got %d", overview.PositiveRate)
	}
	// Overview is all-time: the old decision is included
	if len(overview.ByCategory) != 1 || overview.ByCategory[0].Total != 2 {
		t.Errorf("unexpected byCategory: %+v", overview.ByCategory)
	}
}
