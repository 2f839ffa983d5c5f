package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Pval-k/finance-tracker/internal/core"
	"github.com/Pval-k/finance-tracker/internal/store"
)

// BulkService drives period-scoped mass deletions. Each matched record
// gets its own delete request; all requests are dispatched concurrently
// and joined. There is deliberately no atomicity, retry or per-record
// failure report: a partial failure leaves a mixed state and the caller
// only learns that some deletions may have failed. Acceptable for a
// single-user ledger with no concurrent writers.
type BulkService struct {
	store store.TransactionStore
	now   func() time.Time
}

func NewBulkService(txStore store.TransactionStore) *BulkService {
	return &BulkService{store: txStore, now: time.Now}
}

// DeleteCurrentPeriod removes every transaction in the period
// containing ref. Returns the number of confirmed deletions.
func (s *BulkService) DeleteCurrentPeriod(ctx context.Context, owner string, g core.Granularity, ref core.Date) (int, error) {
	all, err := s.store.ListByOwner(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("list transactions: %w", err)
	}

	ids := core.CollectInterval(all, core.IntervalFor(g, ref))
	return s.deleteAll(ctx, owner, ids)
}

// DeleteOlderThan removes every transaction dated before the start of
// the current period at the given granularity: before today, before
// the first of this month, or before January 1 of this year.
func (s *BulkService) DeleteOlderThan(ctx context.Context, owner string, g core.Granularity) (int, error) {
	all, err := s.store.ListByOwner(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("list transactions: %w", err)
	}

	cutoff := core.IntervalFor(g, core.DateOf(s.now())).Start
	ids := core.CollectOlderThan(all, cutoff)
	return s.deleteAll(ctx, owner, ids)
}

// deleteAll fans out one Remove per id and waits for all to settle.
// Individual requests run to completion regardless of sibling failures;
// there is no cancellation once dispatched.
func (s *BulkService) deleteAll(ctx context.Context, owner string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted int64
	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := s.store.Remove(ctx, owner, id); err != nil {
				return err
			}
			atomic.AddInt64(&deleted, 1)
			return nil
		})
	}

	err := g.Wait()
	count := int(atomic.LoadInt64(&deleted))

	slog.InfoContext(ctx, "Bulk delete settled",
		"owner", owner,
		"requested", len(ids),
		"deleted", count)

	if err != nil {
		return count, fmt.Errorf("some deletions may have failed: %w", err)
	}
	return count, nil
}
