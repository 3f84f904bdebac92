package booking

import (
	"time"
)

// StayRange is a calendar date range. Nights is the number of whole days
// between start and end, clamped to zero; a range of zero nights is not
// constructible.
type StayRange struct {
	start time.Time
	end   time.Time
}

func NewStayRange(start, end time.Time) (StayRange, error) {
	if start.IsZero() || end.IsZero() {
		return StayRange{}, ErrInvalidDateRange
	}
	r := StayRange{start: truncateToDate(start), end: truncateToDate(end)}
	if r.Nights() <= 0 {
		return StayRange{}, ErrInvalidDateRange
	}
	return r, nil
}

func (r StayRange) Start() time.Time { return r.start }
func (r StayRange) End() time.Time   { return r.end }

func (r StayRange) Nights() int {
	nights := int(r.end.Sub(r.start).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// Validate re-checks the range invariants. Dates cannot change after
// construction, but callers re-validate before committing anyway.
func (r StayRange) Validate() error {
	if r.start.IsZero() || r.end.IsZero() || r.Nights() <= 0 {
		return ErrInvalidDateRange
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Dollars() float64 { return float64(m.cents) / 100.0 }

// TotalFor derives the stay total from a nightly rate. Always recomputed
// from the current range; never cached across date edits.
func TotalFor(r StayRange, nightlyRateCents int64) Money {
	return Money{cents: int64(r.Nights()) * nightlyRateCents}
}
