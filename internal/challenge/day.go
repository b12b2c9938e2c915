package challenge

import (
	"time"
)

// dayLayout is the wire format for calendar days everywhere in the API.
const dayLayout = "2006-01-02"

// Day is a UTC calendar day with no time-of-day component. The zero Day
// means "no day" (e.g. a streak row that has never seen a completion).
type Day struct {
	t time.Time
}

// ParseDay parses a YYYY-MM-DD string into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, ErrBadDay
	}
	return Day{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}, nil
}

// DayOf truncates an instant to its UTC calendar day.
func DayOf(t time.Time) Day {
	u := t.UTC()
	return Day{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC calendar day.
func Today() Day {
	return DayOf(time.Now())
}

// String formats the day as YYYY-MM-DD. The zero Day formats as "".
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dayLayout)
}

// IsZero reports whether the day is the "no day" sentinel.
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the day's UTC midnight instant.
func (d Day) Time() time.Time {
	return d.t
}

// AddDays returns the day n calendar days later (earlier if negative).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Prev returns the previous calendar day.
func (d Day) Prev() Day {
	return d.AddDays(-1)
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return d.AddDays(1)
}

// Equal reports whether two values name the same calendar day.
func (d Day) Equal(o Day) bool {
	return d.t.Equal(o.t)
}

// Before reports whether d is an earlier calendar day than o.
func (d Day) Before(o Day) bool {
	return d.t.Before(o.t)
}
