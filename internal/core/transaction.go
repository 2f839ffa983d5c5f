package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  Type = "income"
	Expense Type = "expense"
)

type (
	// Type discriminates money coming in from money going out.
	Type string

	// Date is a calendar day. The time-of-day component is always
	// normalized to UTC midnight so that interval comparisons never
	// depend on how a timestamp was stored.
	Date struct {
		time.Time
	}

	// Transaction is a single ledger entry as returned by the store.
	// The engine only ever reads transactions; mutations go through
	// the store contract.
	Transaction struct {
		ID       string
		Title    string
		Amount   Money
		Category string
		Type     Type
		Date     Date
	}

	// IDSet is a set of transaction identifiers, used for the
	// exclude-from-aggregation flag.
	IDSet map[string]struct{}
)

var (
	ErrEmptyTitle    = errors.New("empty title")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidDate   = errors.New("invalid date")
)

// ParseType validates a transaction type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Income, Expense:
		return Type(s), nil
	}
	return "", ErrInvalidType
}

// NewDate creates a Date at UTC midnight of the given calendar day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// DateOf truncates an arbitrary instant to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Title)) == 0 {
		return ErrEmptyTitle
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if _, err := ParseType(string(t.Type)); err != nil {
		return err
	}
	return t.Date.Validate()
}

// Has reports membership without allocating on a nil set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy of the set.
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}
