// Package memory implements the TransactionStore port in process
// memory. It is the default backend for local runs and the store
// double used by handler and service tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Pval-k/finance-tracker/internal/core"
	"github.com/Pval-k/finance-tracker/internal/store"
)

type Store struct {
	mu sync.Mutex
	// creation order per owner; List re-sorts by date descending.
	items map[string][]core.Transaction
}

func New() *Store {
	return &Store{items: make(map[string][]core.Transaction)}
}

// ListByOwner returns the owner's transactions sorted descending by
// date, ties newest-inserted first.
func (s *Store) ListByOwner(_ context.Context, owner string) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]core.Transaction(nil), s.items[owner]...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out, nil
}

func (s *Store) Insert(_ context.Context, owner string, fields store.TransactionFields) (string, error) {
	if err := fields.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	// Prepend so equal dates list newest first, like the SQLite backend.
	s.items[owner] = append([]core.Transaction{fields.Transaction(id)}, s.items[owner]...)
	return id, nil
}

func (s *Store) Replace(_ context.Context, owner, id string, fields store.TransactionFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tx := range s.items[owner] {
		if tx.ID == id {
			s.items[owner][i] = fields.Transaction(id)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) Remove(_ context.Context, owner, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := s.items[owner]
	for i, tx := range txs {
		if tx.ID == id {
			s.items[owner] = append(txs[:i], txs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
