// Package services orchestrates the pure engine against the store and
// preference ports.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Pval-k/finance-tracker/internal/core"
	"github.com/Pval-k/finance-tracker/internal/store"
	"github.com/Pval-k/finance-tracker/internal/visibility"
)

type (
	// TransactionView is a filtered-list entry. Hidden transactions stay
	// in the list, flagged, so the UI can mark rather than drop them.
	TransactionView struct {
		Transaction core.Transaction
		Hidden      bool
	}

	// DashboardView is everything one dashboard render needs, derived
	// fresh from the store on every call.
	DashboardView struct {
		Granularity  core.Granularity
		Label        string
		Interval     core.Interval
		IsCurrent    bool
		Transactions []TransactionView
		Budget       core.BudgetSnapshot
		Categories   []core.CategoryBucket
	}

	// DashboardService recomputes the derived views. It holds no
	// transaction state between calls.
	DashboardService struct {
		store         store.TransactionStore
		prefs         store.PreferenceStore
		visibility    *visibility.Manager
		categoryLimit int
		now           func() time.Time
	}
)

func NewDashboardService(txStore store.TransactionStore, prefStore store.PreferenceStore, vis *visibility.Manager, categoryLimit int) *DashboardService {
	if categoryLimit <= 0 {
		categoryLimit = core.DefaultCategoryLimit
	}
	return &DashboardService{
		store:         txStore,
		prefs:         prefStore,
		visibility:    vis,
		categoryLimit: categoryLimit,
		now:           time.Now,
	}
}

// View computes the three dashboard views for one owner and period.
//
// candidateBudget, when non-nil, overrides the persisted budget without
// touching it: the live-preview path for a budget edit in progress.
func (s *DashboardService) View(ctx context.Context, owner string, g core.Granularity, ref core.Date, candidateBudget *core.Money) (DashboardView, error) {
	all, err := s.store.ListByOwner(ctx, owner)
	if err != nil {
		return DashboardView{}, fmt.Errorf("list transactions: %w", err)
	}

	interval := core.IntervalFor(g, ref)
	filtered := core.FilterByInterval(all, interval)
	hidden := s.visibility.Load()

	budget := s.loadBudget()
	if candidateBudget != nil {
		budget = *candidateBudget
	}

	views := make([]TransactionView, 0, len(filtered))
	for _, tx := range filtered {
		views = append(views, TransactionView{Transaction: tx, Hidden: hidden.Has(tx.ID)})
	}

	return DashboardView{
		Granularity:  g,
		Label:        core.Label(g, ref),
		Interval:     interval,
		IsCurrent:    core.IsCurrent(g, ref, s.now()),
		Transactions: views,
		Budget:       core.ComputeSnapshot(filtered, hidden, budget),
		Categories:   core.AggregateCategories(filtered, hidden, s.categoryLimit),
	}, nil
}

// loadBudget reads the persisted budget amount. Absent or unparsable
// values fall back to zero; the budget is a preference, not data.
func (s *DashboardService) loadBudget() core.Money {
	raw, ok, err := s.prefs.Get(store.PrefKeyBudget)
	if err != nil || !ok {
		if err != nil {
			slog.Warn("Failed to read budget preference, using zero", "error", err)
		}
		return core.Money{}
	}
	cents, err := core.ParseDecimalToCents(raw)
	if err != nil {
		slog.Warn("Budget preference corrupt, using zero", "value", raw)
		return core.Money{}
	}
	return core.Money{Cents: cents}
}

// SaveBudget commits an explicit budget save.
func (s *DashboardService) SaveBudget(amount core.Money) error {
	if err := s.prefs.Set(store.PrefKeyBudget, amount.String()); err != nil {
		return fmt.Errorf("save budget: %w", err)
	}
	return nil
}

// Budget returns the currently persisted budget amount.
func (s *DashboardService) Budget() core.Money {
	return s.loadBudget()
}
