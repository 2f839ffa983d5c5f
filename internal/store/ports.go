// Package store defines the outbound ports the engine's callers depend
// on: the transaction document store and the user preference store.
package store

import (
	"context"
	"errors"

	"github.com/Pval-k/finance-tracker/internal/core"
)

// ErrNotFound is returned when a mutation targets an absent record.
var ErrNotFound = errors.New("transaction not found")

// Preference keys. Preferences live outside the transaction store and
// are cosmetic: a corrupt or missing value is treated as the default.
const (
	PrefKeyBudget       = "budget"
	PrefKeyHidden       = "hidden_transactions"
	PrefKeyLastCategory = "last_category"
)

type (
	// TransactionFields are the caller-supplied fields for insert and
	// full-field replace. Identifiers are owned by the store.
	TransactionFields struct {
		Title    string
		Amount   core.Money
		Category string
		Type     core.Type
		Date     core.Date
	}

	// TransactionStore is the document collection holding one owner's
	// ledger. Every call is scoped to an owner; implementations must
	// never cross owner boundaries.
	TransactionStore interface {
		// ListByOwner returns the owner's transactions sorted
		// descending by date.
		ListByOwner(ctx context.Context, owner string) ([]core.Transaction, error)
		Insert(ctx context.Context, owner string, fields TransactionFields) (string, error)
		// Replace overwrites every field of an existing transaction.
		// Returns ErrNotFound if the id does not exist for the owner.
		Replace(ctx context.Context, owner, id string, fields TransactionFields) error
		// Remove deletes a single transaction. Returns ErrNotFound if
		// the id does not exist for the owner.
		Remove(ctx context.Context, owner, id string) error
	}

	// PreferenceStore is a plain get/set contract for user preferences
	// (budget amount, hidden-transaction ids, last-used category).
	PreferenceStore interface {
		Get(key string) (value string, ok bool, err error)
		Set(key, value string) error
	}
)

// Transaction converts fields plus a store-assigned id into the domain
// record handed to the engine.
func (f TransactionFields) Transaction(id string) core.Transaction {
	return core.Transaction{
		ID:       id,
		Title:    f.Title,
		Amount:   f.Amount,
		Category: f.Category,
		Type:     f.Type,
		Date:     f.Date,
	}
}

// Validate rejects incomplete fields before they reach the store.
func (f TransactionFields) Validate() error {
	return f.Transaction("pending").Validate()
}
