package analytics

import (
	"sort"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

// UnknownCategory keys decisions whose category is absent. The set of
// category ids is otherwise open-ended; nothing here is hard-coded.
const UnknownCategory = "unknown"

// InvestCategory is the one category with an action sub-aggregation.
const InvestCategory = "invest"

type categoryAccum struct {
	total    int
	positive int
	negative int
	neutral  int
	confs    []int
}

// GroupByCategory partitions completed decisions by category and emits one
// stats row per group, sorted by total descending. Ties keep
// first-encountered order.
func GroupByCategory(completed []models.Decision) []models.CategoryStats {
	groups := make(map[string]*categoryAccum)
	order := make([]string, 0)

	for _, d := range completed {
		key := d.CategoryID
		if key == "" {
			key = UnknownCategory
		}
		row, ok := groups[key]
		if !ok {
			row = &categoryAccum{}
			groups[key] = row
			order = append(order, key)
		}

		row.total++
		switch d.Result {
		case models.ResultPositive:
			row.positive++
		case models.ResultNegative:
			row.negative++
		case models.ResultNeutral:
			row.neutral++
		}
		if d.Confidence > 0 {
			row.confs = append(row.confs, d.Confidence)
		}
	}

	stats := make([]models.CategoryStats, 0, len(order))
	for _, key := range order {
		row := groups[key]
		stats = append(stats, models.CategoryStats{
			CategoryID:   key,
			Total:        row.total,
			PositiveRate: Percent(row.positive, row.total),
			ResultCounts: models.ResultCounts{
				Positive: row.positive,
				Negative: row.negative,
				Neutral:  row.neutral,
			},
			AvgConfidenceCompleted: Average1(row.confs),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Total > stats[j].Total
	})
	return stats
}

// InvestActions splits completed invest decisions into buy and sell buckets
// by meta.action. Decisions without a matching action land in neither.
func InvestActions(completed []models.Decision) models.ActionBreakdown {
	invest := make([]models.Decision, 0)
	for _, d := range completed {
		if d.CategoryID == InvestCategory {
			invest = append(invest, d)
		}
	}
	return models.ActionBreakdown{
		Buy:  investAction(invest, "buy"),
		Sell: investAction(invest, "sell"),
	}
}

func investAction(investCompleted []models.Decision, action string) models.ActionStats {
	total := 0
	positive := 0
	confs := make([]int, 0, len(investCompleted))

	for _, d := range investCompleted {
		if metaString(d.Meta, "action") != action {
			continue
		}
		total++
		if d.Result == models.ResultPositive {
			positive++
		}
		if d.Confidence > 0 {
			confs = append(confs, d.Confidence)
		}
	}

	return models.ActionStats{
		Total:                  total,
		PositiveRate:           Percent(positive, total),
		AvgConfidenceCompleted: Average1(confs),
	}
}
