package core

import (
	"errors"
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Title:    "Groceries",
		Amount:   Money{Cents: 5000},
		Category: "Food",
		Type:     Expense,
		Date:     NewDate(2024, 3, 5),
	}

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{"valid", func(tx *Transaction) {}, nil},
		{"empty title", func(tx *Transaction) { tx.Title = "   " }, ErrEmptyTitle},
		{"zero amount", func(tx *Transaction) { tx.Amount = Money{} }, ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount = Money{Cents: -100} }, ErrInvalidAmount},
		{"empty category", func(tx *Transaction) { tx.Category = "" }, ErrEmptyCategory},
		{"bad type", func(tx *Transaction) { tx.Type = "transfer" }, ErrInvalidType},
		{"zero date", func(tx *Transaction) { tx.Date = Date{} }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2024-03-05" {
		t.Errorf("round trip = %s", d)
	}

	for _, bad := range []string{"", "05/03/2024", "2024-13-01", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestDateOfNormalizesTimeOfDay(t *testing.T) {
	d, _ := ParseDate("2024-03-05")
	iv := IntervalFor(GranularityDay, d)
	// A stored timestamp late in the day must land in the same calendar day.
	late := d.Add(23*time.Hour + 59*time.Minute)
	if !iv.Contains(DateOf(late).Time) {
		t.Error("normalized late-day timestamp fell outside its calendar day")
	}
}

func TestParseDecimalToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"50", 5000, false},
		{"0.01", 1, false},
		{"12.345", 1234, false},
		{"12.346", 1235, false},
		{"", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"0", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDecimalToCents(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDecimalToCents(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDecimalToCents(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDecimalToCents(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{1234, "12.34"},
		{5000, "50.00"},
		{5, "0.05"},
		{-3000, "-30.00"},
		{0, "0.00"},
	}
	for _, tt := range tests {
		if got := (Money{Cents: tt.cents}).String(); got != tt.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestIDSet(t *testing.T) {
	var nilSet IDSet
	if nilSet.Has("x") {
		t.Error("nil set should contain nothing")
	}

	s := IDSet{"a": {}}
	c := s.Clone()
	c["b"] = struct{}{}
	if s.Has("b") {
		t.Error("Clone must not share storage with the original")
	}
}
