package analytics

import (
	"time"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

// ByWeekday buckets completed decisions into the seven UTC weekdays
// (0=Sunday..6=Saturday) by effective resolution time. Decisions whose
// resolution time cannot be determined are skipped.
func ByWeekday(completed []models.Decision) []models.WeekdayStats {
	var totals, positives [7]int
	for _, d := range completed {
		ms := ResolvedMs(d)
		if ms == 0 {
			continue
		}
		weekday := int(time.UnixMilli(ms).UTC().Weekday())
		totals[weekday]++
		if d.Result == models.ResultPositive {
			positives[weekday]++
		}
	}

	stats := make([]models.WeekdayStats, 0, 7)
	for weekday := 0; weekday < 7; weekday++ {
		stats = append(stats, models.WeekdayStats{
			Weekday:      weekday,
			Total:        totals[weekday],
			PositiveRate: Percent(positives[weekday], totals[weekday]),
		})
	}
	return stats
}

// ByHour buckets completed decisions into the 24 UTC hours of day by
// effective resolution time, with the same skip rule as ByWeekday.
func ByHour(completed []models.Decision) []models.HourStats {
	var totals, positives [24]int
	for _, d := range completed {
		ms := ResolvedMs(d)
		if ms == 0 {
			continue
		}
		hour := time.UnixMilli(ms).UTC().Hour()
		totals[hour]++
		if d.Result == models.ResultPositive {
			positives[hour]++
		}
	}

	stats := make([]models.HourStats, 0, 24)
	for hour := 0; hour < 24; hour++ {
		stats = append(stats, models.HourStats{
			Hour:         hour,
			Total:        totals[hour],
			PositiveRate: Percent(positives[hour], totals[hour]),
		})
	}
	return stats
}
