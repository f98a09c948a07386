package analytics

import (
	"time"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

// Week-count bounds for the success trend series.
const (
	MinTrendWeeks     = 4
	MaxTrendWeeks     = 24
	DefaultTrendWeeks = 8
)

// StartOfWeekUTC returns the Monday 00:00 UTC on or before t.
func StartOfWeekUTC(t time.Time) time.Time {
	t = t.UTC()
	base := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	diff := (int(base.Weekday()) + 6) % 7 // Monday start
	return base.AddDate(0, 0, -diff)
}

// isoDateUTC formats a time as its UTC calendar date.
func isoDateUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WeeklyTrend builds a dense series of the last weeks calendar weeks
// (Monday-start, UTC) ending at the week containing now, bucketing
// completed decisions by effective resolution time. weeks is clamped to
// [MinTrendWeeks, MaxTrendWeeks], defaulting when non-positive; categoryID
// "" or "all" means no filter. Empty weeks stay in the series with zero
// totals so charts need no client-side gap filling.
func WeeklyTrend(list []models.Decision, weeks int, categoryID string, now time.Time) models.WeeklyTrendResponse {
	if weeks <= 0 {
		weeks = DefaultTrendWeeks
	}
	weeks = clampInt(weeks, MinTrendWeeks, MaxTrendWeeks)

	currentWeekStart := StartOfWeekUTC(now)
	firstWeekStart := currentWeekStart.AddDate(0, 0, -7*(weeks-1))
	endExclusive := currentWeekStart.AddDate(0, 0, 7)

	type bucket struct {
		total    int
		positive int
	}
	buckets := make(map[string]*bucket, weeks)
	out := make([]models.WeekBucket, 0, weeks)
	for i := 0; i < weeks; i++ {
		start := firstWeekStart.AddDate(0, 0, i*7)
		key := isoDateUTC(start)
		buckets[key] = &bucket{}
		out = append(out, models.WeekBucket{
			WeekStart: key,
			WeekEnd:   isoDateUTC(start.AddDate(0, 0, 6)),
		})
	}

	filterCategory := categoryID != "" && categoryID != "all"
	for _, d := range list {
		if !d.Result.Completed() {
			continue
		}
		if filterCategory && d.CategoryID != categoryID {
			continue
		}
		ms := ResolvedMs(d)
		if ms == 0 {
			continue
		}
		date := time.UnixMilli(ms).UTC()
		if date.Before(firstWeekStart) || !date.Before(endExclusive) {
			continue
		}
		b, ok := buckets[isoDateUTC(StartOfWeekUTC(date))]
		if !ok {
			continue
		}
		b.total++
		if d.Result == models.ResultPositive {
			b.positive++
		}
	}

	for i := range out {
		b := buckets[out[i].WeekStart]
		if b.total == 0 {
			continue
		}
		out[i].Total = b.total
		out[i].PositiveRate = Rate1(b.positive, b.total)
	}

	return models.WeeklyTrendResponse{Weeks: out}
}
