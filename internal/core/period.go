package core

import (
	"fmt"
	"time"
)

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

type (
	// Granularity is the day/month/year window used to scope the
	// dashboard view.
	Granularity string

	// Interval is a half-open [Start, End) window. Boundaries align to
	// calendar unit starts, so adjacent periods never overlap and no
	// transaction can be double-counted.
	Interval struct {
		Start time.Time
		End   time.Time
	}
)

// ParseGranularity validates a granularity string from a request.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityMonth, GranularityYear:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// Contains reports whether t falls inside the half-open interval.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// IntervalFor computes the period interval containing ref at the given
// granularity. An unknown granularity is a programming error: request
// parsing is the validation boundary, so this panics rather than
// returning an error.
func IntervalFor(g Granularity, ref Date) Interval {
	year, month, day := ref.Date()
	switch g {
	case GranularityDay:
		start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return Interval{Start: start, End: start.AddDate(0, 0, 1)}
	case GranularityMonth:
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		return Interval{Start: start, End: start.AddDate(0, 1, 0)}
	case GranularityYear:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return Interval{Start: start, End: start.AddDate(1, 0, 0)}
	}
	panic(fmt.Sprintf("core: unknown granularity %q", g))
}

// Step moves ref by one unit of the granularity in the given direction
// (-1 or +1), preserving calendar semantics: stepping a month from
// Jan 31 lands on the last day of February, never rolls into March.
func Step(g Granularity, ref Date, direction int) Date {
	if direction != -1 && direction != 1 {
		panic(fmt.Sprintf("core: invalid step direction %d", direction))
	}
	year, month, day := ref.Date()
	switch g {
	case GranularityDay:
		t := ref.AddDate(0, 0, direction)
		return DateOf(t)
	case GranularityMonth:
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, direction, 0)
		return NewDate(first.Year(), int(first.Month()), clampDay(day, first.Year(), first.Month()))
	case GranularityYear:
		target := year + direction
		return NewDate(target, int(month), clampDay(day, target, month))
	}
	panic(fmt.Sprintf("core: unknown granularity %q", g))
}

// IsCurrent reports whether now falls in the same period as ref.
func IsCurrent(g Granularity, ref Date, now time.Time) bool {
	return IntervalFor(g, ref).Contains(DateOf(now).Time)
}

// Label renders the human-readable period title: "5 March 2024" for a
// day, "March 2024" for a month, "2024" for a year.
func Label(g Granularity, ref Date) string {
	switch g {
	case GranularityDay:
		return ref.Format("2 January 2006")
	case GranularityMonth:
		return ref.Format("January 2006")
	case GranularityYear:
		return ref.Format("2006")
	}
	panic(fmt.Sprintf("core: unknown granularity %q", g))
}

// clampDay pulls a day-of-month back to the last valid day of the
// target month (Jan 31 -> Feb 28/29, Feb 29 -> Feb 28 off leap years).
func clampDay(day, year int, month time.Month) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}
