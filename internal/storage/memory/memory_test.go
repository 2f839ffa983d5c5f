package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/Pval-k/finance-tracker/internal/core"
	"github.com/Pval-k/finance-tracker/internal/store"
)

func fields(title string, cents int64, category string, txType core.Type, date core.Date) store.TransactionFields {
	return store.TransactionFields{
		Title:    title,
		Amount:   core.Money{Cents: cents},
		Category: category,
		Type:     txType,
		Date:     date,
	}
}

func TestStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := New()

	id, err := s.Insert(ctx, "owner-1", fields("Groceries", 5000, "Food", core.Expense, core.NewDate(2024, 3, 5)))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id == "" {
		t.Fatal("Insert returned empty id")
	}

	if err := s.Replace(ctx, "owner-1", id, fields("Groceries", 5500, "Food", core.Expense, core.NewDate(2024, 3, 5))); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	txs, err := s.ListByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(txs) != 1 || txs[0].Amount.Cents != 5500 {
		t.Errorf("list after replace = %+v", txs)
	}

	if err := s.Remove(ctx, "owner-1", id); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	txs, _ = s.ListByOwner(ctx, "owner-1")
	if len(txs) != 0 {
		t.Errorf("list after remove = %+v, want empty", txs)
	}
}

func TestStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.Remove(ctx, "owner-1", "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Remove missing = %v, want ErrNotFound", err)
	}
	if err := s.Replace(ctx, "owner-1", "missing", fields("x", 100, "c", core.Expense, core.NewDate(2024, 1, 1))); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Replace missing = %v, want ErrNotFound", err)
	}
}

func TestStoreOwnerIsolation(t *testing.T) {
	ctx := context.Background()
	s := New()

	id, _ := s.Insert(ctx, "alice", fields("Rent", 90000, "Housing", core.Expense, core.NewDate(2024, 3, 1)))

	txs, _ := s.ListByOwner(ctx, "bob")
	if len(txs) != 0 {
		t.Errorf("bob sees alice's transactions: %+v", txs)
	}
	if err := s.Remove(ctx, "bob", id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("cross-owner remove = %v, want ErrNotFound", err)
	}
}

func TestStoreListSortedDescending(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, _ = s.Insert(ctx, "o", fields("old", 100, "c", core.Expense, core.NewDate(2024, 1, 1)))
	_, _ = s.Insert(ctx, "o", fields("new", 100, "c", core.Expense, core.NewDate(2024, 3, 1)))
	_, _ = s.Insert(ctx, "o", fields("mid", 100, "c", core.Expense, core.NewDate(2024, 2, 1)))

	txs, _ := s.ListByOwner(ctx, "o")
	want := []string{"new", "mid", "old"}
	for i, title := range want {
		if txs[i].Title != title {
			t.Errorf("position %d = %s, want %s", i, txs[i].Title, title)
		}
	}
}

func TestStoreInsertValidates(t *testing.T) {
	_, err := New().Insert(context.Background(), "o", fields("", 100, "c", core.Expense, core.NewDate(2024, 1, 1)))
	if !errors.Is(err, core.ErrEmptyTitle) {
		t.Errorf("Insert with empty title = %v, want ErrEmptyTitle", err)
	}
}
