package analytics

import "github.com/seongmin-h/decisionlog/backend/internal/models"

// ConfidenceLevelCount is the number of fixed confidence buckets.
const ConfidenceLevelCount = 5

// ConfidenceLevels buckets completed decisions into the five fixed
// confidence levels. Matching is exact: a decision with confidence 0 or 6
// appears in no bucket, it is never defaulted into one.
func ConfidenceLevels(completed []models.Decision) []models.ConfidenceLevelStats {
	stats := make([]models.ConfidenceLevelStats, 0, ConfidenceLevelCount)
	for level := 1; level <= ConfidenceLevelCount; level++ {
		total := 0
		positive := 0
		for _, d := range completed {
			if d.Confidence != level {
				continue
			}
			total++
			if d.Result == models.ResultPositive {
				positive++
			}
		}
		stats = append(stats, models.ConfidenceLevelStats{
			Confidence:   level,
			Total:        total,
			PositiveRate: Percent(positive, total),
		})
	}
	return stats
}
