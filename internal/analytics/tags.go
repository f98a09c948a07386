package analytics

import (
	"sort"
	"strings"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

// DefaultTopTags is the ranking depth the product surface uses.
const DefaultTopTags = 20

type tagOutcome struct {
	completed int
	positive  int
}

// TopTags ranks tags by raw occurrence across the whole filtered list
// (pending included) and attaches completed-outcome stats from the
// completed subset. Duplicate tags within one decision each count; empty
// tags are skipped after trimming. The result is sorted by occurrence
// descending and truncated to the top n when n > 0.
func TopTags(list, completed []models.Decision, n int) []models.TagStats {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, d := range list {
		for _, raw := range d.Tags {
			tag := strings.TrimSpace(raw)
			if tag == "" {
				continue
			}
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	outcomes := make(map[string]*tagOutcome)
	for _, d := range completed {
		for _, raw := range d.Tags {
			tag := strings.TrimSpace(raw)
			if tag == "" {
				continue
			}
			entry, ok := outcomes[tag]
			if !ok {
				entry = &tagOutcome{}
				outcomes[tag] = entry
			}
			entry.completed++
			if d.Result == models.ResultPositive {
				entry.positive++
			}
		}
	}

	stats := make([]models.TagStats, 0, len(order))
	for _, tag := range order {
		row := models.TagStats{Tag: tag, Count: counts[tag]}
		if entry, ok := outcomes[tag]; ok {
			row.Completed = entry.completed
			row.PositiveRate = Percent(entry.positive, entry.completed)
		}
		stats = append(stats, row)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	if n > 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats
}
