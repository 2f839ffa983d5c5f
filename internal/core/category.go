package core

import "sort"

// DefaultCategoryLimit bounds the category breakdown to the ten largest
// buckets, matching the dashboard chart.
const DefaultCategoryLimit = 10

// CategoryBucket is one category's aggregated expense total within the
// current filtered view. Percentage is the bucket's share of the grand
// total across all buckets, not just the displayed top-N.
type CategoryBucket struct {
	Name       string
	Total      Money
	Percentage float64
}

// AggregateCategories groups visible expenses by exact category text
// and returns the buckets sorted descending by total, truncated to
// limit (DefaultCategoryLimit when limit <= 0).
//
// Category names are matched case- and whitespace-sensitively: "Food"
// and "food" are distinct buckets. The sort is stable, so equal totals
// keep first-encountered order. No expenses yields an empty slice,
// which callers render as an explicit empty state.
func AggregateCategories(transactions []Transaction, hidden IDSet, limit int) []CategoryBucket {
	if limit <= 0 {
		limit = DefaultCategoryLimit
	}

	totals := make(map[string]Money)
	var order []string
	for _, tx := range transactions {
		if tx.Type != Expense || hidden.Has(tx.ID) {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	var grand Money
	for _, t := range totals {
		grand = grand.Add(t)
	}

	buckets := make([]CategoryBucket, 0, len(order))
	for _, name := range order {
		b := CategoryBucket{Name: name, Total: totals[name]}
		if grand.Cents > 0 {
			b.Percentage = float64(b.Total.Cents) / float64(grand.Cents) * 100
		}
		buckets = append(buckets, b)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Total.Cents > buckets[j].Total.Cents
	})

	if len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets
}
