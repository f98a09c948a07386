package models

// WeekPeriod is the inclusive Monday..Sunday date range of a report week.
type WeekPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekCounts holds the per-week decision counts.
type WeekCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// WeekResultCounts holds per-outcome counts including still-pending ones.
type WeekResultCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Pending  int `json:"pending"`
}

// ConfidenceSummary is the confidence block of a weekly report.
type ConfidenceSummary struct {
	Average float64                `json:"average"`
	ByLevel []ConfidenceLevelStats `json:"byLevel"`
}

// TopCategory names the most-logged category of a week.
type TopCategory struct {
	CategoryID string `json:"categoryId"`
	Total      int    `json:"total"`
}

// WeeklyReportSummary is the full summary for one calendar week.
// TopCategory and Insight are null (not absent) when there is nothing to say.
type WeeklyReportSummary struct {
	Period       WeekPeriod        `json:"period"`
	Counts       WeekCounts        `json:"counts"`
	ResultCounts WeekResultCounts  `json:"resultCounts"`
	Confidence   ConfidenceSummary `json:"confidence"`
	TopCategory  *TopCategory      `json:"topCategory"`
	Insight      *string           `json:"insight"`
}

// ResultRateDelta holds percentage-point differences between two weeks,
// each rate computed against its own week's total.
type ResultRateDelta struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Pending  float64 `json:"pending"`
}

// ConfidenceLevelDelta is the per-level difference block, aligned by level.
type ConfidenceLevelDelta struct {
	Confidence   int `json:"confidence"`
	Total        int `json:"total"`
	PositiveRate int `json:"positiveRate"`
}

// ConfidenceDelta is the confidence block of a weekly delta.
type ConfidenceDelta struct {
	Average float64                `json:"average"`
	ByLevel []ConfidenceLevelDelta `json:"byLevel"`
}

// WeeklyReportDelta is the signed difference between two weekly summaries.
type WeeklyReportDelta struct {
	Counts       WeekCounts        `json:"counts"`
	ResultCounts WeekResultCounts  `json:"resultCounts"`
	ResultRates  ResultRateDelta   `json:"resultRates"`
	Confidence   ConfidenceDelta   `json:"confidence"`
}

// WeeklyReportResponse is the current week's summary with the previous
// week and the delta between the two.
type WeeklyReportResponse struct {
	WeeklyReportSummary
	Previous *WeeklyReportSummary `json:"previous,omitempty"`
	Delta    *WeeklyReportDelta   `json:"delta,omitempty"`
}
