package core

import "testing"

func marchTransactions() []Transaction {
	return []Transaction{
		{ID: "t1", Title: "Groceries", Amount: Money{Cents: 5000}, Category: "Food", Type: Expense, Date: NewDate(2024, 3, 5)},
		{ID: "t2", Title: "Takeaway", Amount: Money{Cents: 3000}, Category: "Food", Type: Expense, Date: NewDate(2024, 3, 10)},
		{ID: "t3", Title: "Salary", Amount: Money{Cents: 100000}, Category: "Salary", Type: Income, Date: NewDate(2024, 3, 1)},
	}
}

func TestFilterByInterval(t *testing.T) {
	txs := marchTransactions()

	t.Run("month contains all three", func(t *testing.T) {
		iv := IntervalFor(GranularityMonth, NewDate(2024, 3, 15))
		got := FilterByInterval(txs, iv)
		if len(got) != 3 {
			t.Fatalf("filtered %d transactions, want 3", len(got))
		}
		// Relative order preserved.
		for i, id := range []string{"t1", "t2", "t3"} {
			if got[i].ID != id {
				t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
			}
		}
	})

	t.Run("day keeps only matching date", func(t *testing.T) {
		iv := IntervalFor(GranularityDay, NewDate(2024, 3, 5))
		got := FilterByInterval(txs, iv)
		if len(got) != 1 || got[0].ID != "t1" {
			t.Fatalf("got %v, want only t1", got)
		}
	})

	t.Run("boundaries are half open", func(t *testing.T) {
		iv := IntervalFor(GranularityMonth, NewDate(2024, 2, 15))
		boundary := []Transaction{
			{ID: "last-of-feb", Date: NewDate(2024, 2, 29)},
			{ID: "first-of-march", Date: NewDate(2024, 3, 1)},
		}
		got := FilterByInterval(boundary, iv)
		if len(got) != 1 || got[0].ID != "last-of-feb" {
			t.Fatalf("february interval matched %v, want only last-of-feb", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		iv := IntervalFor(GranularityMonth, NewDate(2024, 3, 15))
		once := FilterByInterval(txs, iv)
		twice := FilterByInterval(once, iv)
		if len(once) != len(twice) {
			t.Fatalf("second filter changed the set: %d -> %d", len(once), len(twice))
		}
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Errorf("position %d changed: %s -> %s", i, once[i].ID, twice[i].ID)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		iv := IntervalFor(GranularityYear, NewDate(2024, 1, 1))
		if got := FilterByInterval(nil, iv); len(got) != 0 {
			t.Errorf("filtering nil returned %v", got)
		}
	})
}

func TestCollectInterval(t *testing.T) {
	txs := marchTransactions()
	iv := IntervalFor(GranularityDay, NewDate(2024, 3, 10))
	ids := CollectInterval(txs, iv)
	if len(ids) != 1 || ids[0] != "t2" {
		t.Fatalf("CollectInterval = %v, want [t2]", ids)
	}
}

func TestCollectOlderThan(t *testing.T) {
	txs := marchTransactions()

	t.Run("cutoff at start of march sweeps nothing", func(t *testing.T) {
		cutoff := IntervalFor(GranularityMonth, NewDate(2024, 3, 15)).Start
		if ids := CollectOlderThan(txs, cutoff); len(ids) != 0 {
			t.Errorf("CollectOlderThan = %v, want empty", ids)
		}
	})

	t.Run("cutoff mid month sweeps earlier entries", func(t *testing.T) {
		cutoff := IntervalFor(GranularityDay, NewDate(2024, 3, 10)).Start
		ids := CollectOlderThan(txs, cutoff)
		if len(ids) != 2 {
			t.Fatalf("CollectOlderThan = %v, want [t1 t3]", ids)
		}
	})

	t.Run("boundary date survives", func(t *testing.T) {
		cutoff := IntervalFor(GranularityDay, NewDate(2024, 3, 5)).Start
		for _, id := range CollectOlderThan(txs, cutoff) {
			if id == "t1" {
				t.Error("transaction dated on the cutoff boundary must not be swept")
			}
		}
	})
}
