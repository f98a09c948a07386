// Package analytics is the aggregation engine for decision journals.
// Every function is a pure transformation over an in-memory decision list
// already scoped to one user: no I/O, no shared state, and each call
// allocates its own buckets, so concurrent invocations never interfere.
package analytics

import (
	"math"
	"time"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

// Percent returns the integer percentage numer/denom rounded to the
// nearest whole number. A non-positive denominator yields 0.
func Percent(numer, denom int) int {
	if denom <= 0 {
		return 0
	}
	return int(math.Round(float64(numer) / float64(denom) * 100))
}

// Rate1 returns the percentage numer/denom rounded to one decimal place.
// A non-positive denominator yields 0.
func Rate1(numer, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return Round1(float64(numer) / float64(denom) * 100)
}

// Round1 rounds to one decimal place.
func Round1(n float64) float64 {
	return math.Round(n*10) / 10
}

// Average1 returns the mean of nums rounded to one decimal place,
// or 0 for an empty slice.
func Average1(nums []int) float64 {
	if len(nums) == 0 {
		return 0
	}
	sum := 0
	for _, n := range nums {
		sum += n
	}
	return Round1(float64(sum) / float64(len(nums)))
}

// SafeInt coerces v to an int by truncation when it is a finite number,
// returning fallback otherwise. Meta values arrive as any after JSON
// decoding, so numbers show up as float64.
func SafeInt(v any, fallback int) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return fallback
		}
		return int(math.Trunc(n))
	case float32:
		return SafeInt(float64(n), fallback)
	}
	return fallback
}

// isoTimeLayouts are tried in order when parsing stored timestamps.
var isoTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// IsoToMs parses an ISO-8601 string to epoch milliseconds. Empty or
// unparseable input yields 0, which all time bucketers treat as absent.
func IsoToMs(iso string) int64 {
	if iso == "" {
		return 0
	}
	for _, layout := range isoTimeLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}

// ResolvedMs returns the effective resolution time of a decision in epoch
// milliseconds: resolvedAt when present and parseable, else createdAt.
// This single fallback rule backs every time-based bucketer except the
// weekly report's week-of-creation assignment.
func ResolvedMs(d models.Decision) int64 {
	if ms := IsoToMs(d.ResolvedAt); ms != 0 {
		return ms
	}
	return IsoToMs(d.CreatedAt)
}

// completedOf returns the subset of list whose result is not pending.
func completedOf(list []models.Decision) []models.Decision {
	completed := make([]models.Decision, 0, len(list))
	for _, d := range list {
		if d.Result.Completed() {
			completed = append(completed, d)
		}
	}
	return completed
}

// completedConfidences collects the positive confidence values of
// completed decisions for averaging. Missing or non-positive values are
// excluded from the average, never zero-filled.
func completedConfidences(completed []models.Decision) []int {
	confs := make([]int, 0, len(completed))
	for _, d := range completed {
		if d.Confidence > 0 {
			confs = append(confs, d.Confidence)
		}
	}
	return confs
}

// metaString reads a string-valued meta key, returning "" when the key is
// absent or holds a non-string value.
func metaString(meta models.DecisionMeta, key string) string {
	if meta == nil {
		return ""
	}
	s, _ := meta[key].(string)
	return s
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
