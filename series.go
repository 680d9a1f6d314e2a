package paydown

import (
	"fmt"
	"iter"
	"slices"
)

// Series stores a chronological series of amounts, each associated with a
// date. Dates are unique and the series is always sorted.
type Series struct {
	days   []Date
	values []Money
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.days) }

// Append adds a point to the series, keeping it sorted.
//
// An existing value at that date is overwritten.
func (s *Series) Append(on Date, v Money) *Series {
	i, found := slices.BinarySearchFunc(s.days, on, compareDates)
	if found {
		s.values[i] = v
		return s
	}
	s.days = slices.Insert(s.days, i, on)
	s.values = slices.Insert(s.values, i, v)
	return s
}

// Get returns the value at 'day' and true, or zero value and false.
func (s *Series) Get(day Date) (Money, bool) {
	i, found := slices.BinarySearchFunc(s.days, day, compareDates)
	if found {
		return s.values[i], true
	}
	return Money{}, false
}

// At returns the i-th point in chronological order.
func (s *Series) At(i int) (Date, Money) { return s.days[i], s.values[i] }

// First returns the earliest date in the series, or the zero Date when empty.
func (s *Series) First() Date {
	if len(s.days) == 0 {
		return Date{}
	}
	return s.days[0]
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (s *Series) Values() iter.Seq2[Date, Money] {
	return func(yield func(Date, Money) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

func compareDates(d, t Date) int {
	if d.Before(t) {
		return -1
	}
	if d.After(t) {
		return 1
	}
	return 0
}

// Returns stores a chronological series of periodic linear returns. By
// convention the first entry's value is unused (there is no prior period to
// compound from) and is stored as 0.
type Returns struct {
	days   []Date
	values []float64
}

// Len returns the number of periods in the return series.
func (r *Returns) Len() int { return len(r.days) }

// Append adds a point to the return series, keeping it sorted.
func (r *Returns) Append(on Date, v float64) *Returns {
	i, found := slices.BinarySearchFunc(r.days, on, compareDates)
	if found {
		r.values[i] = v
		return r
	}
	r.days = slices.Insert(r.days, i, on)
	r.values = slices.Insert(r.values, i, v)
	return r
}

// At returns the i-th period and its return.
func (r *Returns) At(i int) (Date, float64) { return r.days[i], r.values[i] }

// First returns the earliest date in the series, or the zero Date when empty.
func (r *Returns) First() Date {
	if len(r.days) == 0 {
		return Date{}
	}
	return r.days[0]
}

// From returns the sub-series starting at 'day' (inclusive).
func (r *Returns) From(day Date) Returns {
	i, _ := slices.BinarySearchFunc(r.days, day, compareDates)
	return Returns{
		days:   slices.Clone(r.days[i:]),
		values: slices.Clone(r.values[i:]),
	}
}

// Values returns an iterator over all date/return pairs, in chronological order.
func (r *Returns) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range r.days {
			if !yield(on, r.values[i]) {
				return
			}
		}
	}
}

// ReturnsFromPrices converts a price path into its linear return series.
// dates and prices must have the same length; the first return is unused and
// stored as 0.
func ReturnsFromPrices(dates []Date, prices []float64) (Returns, error) {
	var r Returns
	if len(dates) != len(prices) {
		return r, fmt.Errorf("got %d dates for %d prices", len(dates), len(prices))
	}
	for i, on := range dates {
		if i == 0 {
			r.Append(on, 0)
			continue
		}
		r.Append(on, prices[i]/prices[i-1]-1)
	}
	return r, nil
}
