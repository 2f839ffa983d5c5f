package core

import "time"

// CollectInterval returns the identifiers of every transaction inside
// the half-open interval. Same predicate as FilterByInterval; bulk
// period deletion reuses it to pick its victims.
func CollectInterval(transactions []Transaction, iv Interval) []string {
	var ids []string
	for _, tx := range transactions {
		if iv.Contains(tx.Date.Time) {
			ids = append(ids, tx.ID)
		}
	}
	return ids
}

// CollectOlderThan returns the identifiers of every transaction dated
// strictly before the cutoff. The cutoff is a period boundary (start of
// today, of this month or of this year), so a transaction dated on the
// boundary itself survives the sweep.
func CollectOlderThan(transactions []Transaction, cutoff time.Time) []string {
	var ids []string
	for _, tx := range transactions {
		if tx.Date.Before(cutoff) {
			ids = append(ids, tx.ID)
		}
	}
	return ids
}
