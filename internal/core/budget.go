package core

// BudgetSnapshot is the derived budget summary for the currently
// filtered, visibility-adjusted transaction subset. Recomputed on every
// call; never persisted.
type BudgetSnapshot struct {
	Budget     Money
	Spent      Money
	Remaining  Money
	Percentage float64
}

// ComputeSnapshot sums expenses outside the hidden set against the
// candidate budget. The budget is taken as a plain argument so callers
// can preview an edit-in-progress value without persisting it.
//
// Percentage is the true uncapped share of the budget consumed; a
// display that wants a 100%-clamped progress bar clamps it itself.
// A non-positive budget yields percentage 0.
func ComputeSnapshot(transactions []Transaction, hidden IDSet, budget Money) BudgetSnapshot {
	var spent Money
	for _, tx := range transactions {
		if tx.Type != Expense || hidden.Has(tx.ID) {
			continue
		}
		spent = spent.Add(tx.Amount)
	}

	snap := BudgetSnapshot{
		Budget:    budget,
		Spent:     spent,
		Remaining: budget.Sub(spent),
	}
	if budget.Cents > 0 {
		snap.Percentage = float64(spent.Cents) / float64(budget.Cents) * 100
	}
	return snap
}
