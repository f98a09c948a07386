package models

// ResultCounts holds per-outcome counts for a group of completed decisions.
type ResultCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// SummaryTotals is the headline block of the point-in-time summary.
type SummaryTotals struct {
	Total                  int          `json:"total"`
	Completed              int          `json:"completed"`
	Pending                int          `json:"pending"`
	ResultCounts           ResultCounts `json:"resultCounts"`
	PositiveRate           int          `json:"positiveRate"`
	AvgConfidenceCompleted float64      `json:"avgConfidenceCompleted"`
}

// CategoryStats is one per-category aggregation row.
type CategoryStats struct {
	CategoryID             string       `json:"categoryId"`
	Total                  int          `json:"total"`
	PositiveRate           int          `json:"positiveRate"`
	ResultCounts           ResultCounts `json:"resultCounts"`
	AvgConfidenceCompleted float64      `json:"avgConfidenceCompleted"`
}

// ActionStats aggregates invest decisions for a single meta.action value.
type ActionStats struct {
	Total                  int     `json:"total"`
	PositiveRate           int     `json:"positiveRate"`
	AvgConfidenceCompleted float64 `json:"avgConfidenceCompleted"`
}

// ActionBreakdown splits completed invest decisions into buy and sell.
// Decisions without a matching meta.action appear in neither bucket.
type ActionBreakdown struct {
	Buy  ActionStats `json:"buy"`
	Sell ActionStats `json:"sell"`
}

// ConfidenceLevelStats is one of the five fixed confidence buckets.
type ConfidenceLevelStats struct {
	Confidence   int `json:"confidence"`
	Total        int `json:"total"`
	PositiveRate int `json:"positiveRate"`
}

// TagStats is one ranked tag with its completed-outcome stats.
type TagStats struct {
	Tag          string `json:"tag"`
	Count        int    `json:"count"`
	Completed    int    `json:"completed"`
	PositiveRate int    `json:"positiveRate"`
}

// WeekdayStats buckets completed decisions by UTC day of week (0=Sunday).
type WeekdayStats struct {
	Weekday      int `json:"weekday"`
	Total        int `json:"total"`
	PositiveRate int `json:"positiveRate"`
}

// HourStats buckets completed decisions by UTC hour of day.
type HourStats struct {
	Hour         int `json:"hour"`
	Total        int `json:"total"`
	PositiveRate int `json:"positiveRate"`
}

// RecentDecision is one entry of the summary's recently-resolved list.
type RecentDecision struct {
	ID            string         `json:"id"`
	CategoryID    string         `json:"categoryId"`
	Title         string         `json:"title"`
	Result        DecisionResult `json:"result"`
	Confidence    int            `json:"confidence"`
	ResolvedAt    string         `json:"resolvedAt"`
	Tags          []string       `json:"tags"`
	HasReflection bool           `json:"hasReflection"`
}

// AnalysisSummaryResponse is the full point-in-time summary payload.
type AnalysisSummaryResponse struct {
	Summary         SummaryTotals          `json:"summary"`
	ByCategory      []CategoryStats        `json:"byCategory"`
	ByAction        ActionBreakdown        `json:"byAction"`
	ConfidenceStats []ConfidenceLevelStats `json:"confidenceStats"`
	TopTags         []TagStats             `json:"topTags"`
	ByWeekday       []WeekdayStats         `json:"byWeekday"`
	ByHour          []HourStats            `json:"byHour"`
	RecentCompleted []RecentDecision       `json:"recentCompleted"`
}

// AnalysisOverviewResponse is the lightweight all-time breakdown.
type AnalysisOverviewResponse struct {
	Total           int                    `json:"total"`
	Completed       int                    `json:"completed"`
	Pending         int                    `json:"pending"`
	ResultCounts    ResultCounts           `json:"resultCounts"`
	PositiveRate    int                    `json:"positiveRate"`
	ByAction        ActionBreakdown        `json:"byAction"`
	ConfidenceStats []ConfidenceLevelStats `json:"confidenceStats"`
	ByCategory      []CategoryStats        `json:"byCategory"`
}

// WeekBucket is one calendar week of the success-rate trend series.
// Buckets with no decisions are still emitted so the series stays dense.
type WeekBucket struct {
	WeekStart    string  `json:"weekStart"`
	WeekEnd      string  `json:"weekEnd"`
	Total        int     `json:"total"`
	PositiveRate float64 `json:"positiveRate"`
}

// WeeklyTrendResponse is the weekly success trend payload.
type WeeklyTrendResponse struct {
	Weeks []WeekBucket `json:"weeks"`
}
