package paydown

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*j = NewDate(on.Date())
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// BusinessMonthEnd returns the last weekday of the month containing d.
func (d Date) BusinessMonthEnd() Date {
	last := NewDate(d.y, d.m+1, 0) // day 0 of next month is the last day of this one
	switch last.Weekday() {
	case time.Saturday:
		return last.Add(-1)
	case time.Sunday:
		return last.Add(-2)
	}
	return last
}

// businessMonthEnd returns the last weekday of the given month.
func businessMonthEnd(year int, month time.Month) Date {
	return NewDate(year, month, 1).BusinessMonthEnd()
}

// ScheduleDates returns n+1 consecutive business-month-end dates, the shared
// period index of all schedules. The first entry is the business month end of
// start's month, or of the next month when start already falls after it.
func ScheduleDates(start Date, n int) []Date {
	y, m := start.Year(), start.Month()
	if businessMonthEnd(y, m).Before(start) {
		m++
	}
	dates := make([]Date, 0, n+1)
	for i := 0; i <= n; i++ {
		dates = append(dates, businessMonthEnd(y, m+time.Month(i)))
	}
	return dates
}

// mergeDates returns the sorted union of several date slices, each already
// sorted and free of duplicates.
func mergeDates(series ...[]Date) []Date {
	indexes := make([]int, len(series))
	var out []Date
	for {
		var lowest Date
		found := false
		for i, index := range indexes {
			if index >= len(series[i]) {
				continue
			}
			if on := series[i][index]; !found || on.Before(lowest) {
				lowest, found = on, true
			}
		}
		if !found {
			return out
		}
		for i, index := range indexes {
			if index < len(series[i]) && series[i][index] == lowest {
				indexes[i]++
			}
		}
		out = append(out, lowest)
	}
}
