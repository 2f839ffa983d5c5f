package core

// FilterByInterval returns the transactions whose date falls inside the
// half-open interval, preserving the input's relative order. Dates are
// normalized to calendar days on ingest, so the comparison is a plain
// instant check. Pure: the input slice is never modified.
func FilterByInterval(transactions []Transaction, iv Interval) []Transaction {
	out := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if iv.Contains(tx.Date.Time) {
			out = append(out, tx)
		}
	}
	return out
}
