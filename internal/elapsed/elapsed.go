// Package elapsed computes calendar-accurate elapsed time between two local
// instants as years, months, days, hours, minutes and seconds.
package elapsed

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrNotStarted is returned by Since when now precedes the reference instant.
var ErrNotStarted = errors.New("elapsed: reference instant is in the future")

// Breakdown is the elapsed time between two instants, split into calendar fields.
type Breakdown struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Between returns the calendar breakdown from reference to now. Both instants
// are read as wall-clock fields in the reference's location, normally
// time.Local. A now before reference yields the zero Breakdown.
func Between(reference, now time.Time) Breakdown {
	if now.Before(reference) {
		return Breakdown{}
	}
	from := reference
	to := now.In(reference.Location())

	years := to.Year() - from.Year()
	months := int(to.Month()) - int(from.Month())
	days := to.Day() - from.Day()
	hours := to.Hour() - from.Hour()
	minutes := to.Minute() - from.Minute()
	seconds := to.Second() - from.Second()

	if seconds < 0 {
		seconds += 60
		minutes--
	}
	if minutes < 0 {
		minutes += 60
		hours--
	}
	if hours < 0 {
		hours += 24
		days--
	}
	if days < 0 {
		// Borrow is taken once, from the month before now's month.
		prev := to.Month() - 1
		year := to.Year()
		if prev < time.January {
			prev = time.December
			year--
		}
		days += DaysIn(year, prev)
		months--
	}
	if months < 0 {
		months += 12
		years--
	}

	return Breakdown{
		Years:   max(0, years),
		Months:  max(0, months),
		Days:    max(0, days),
		Hours:   max(0, hours),
		Minutes: max(0, minutes),
		Seconds: max(0, seconds),
	}
}

// Since is Between with an explicit error for a reference that has not been
// reached yet.
func Since(reference, now time.Time) (Breakdown, error) {
	if now.Before(reference) {
		return Breakdown{}, ErrNotStarted
	}
	return Between(reference, now), nil
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalises to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsZero reports whether every field is zero.
func (b Breakdown) IsZero() bool {
	return b == Breakdown{}
}

// Fields returns the six display values; hours, minutes and seconds are
// zero-padded to two digits.
func (b Breakdown) Fields() [6]string {
	return [6]string{
		strconv.Itoa(b.Years),
		strconv.Itoa(b.Months),
		strconv.Itoa(b.Days),
		fmt.Sprintf("%02d", b.Hours),
		fmt.Sprintf("%02d", b.Minutes),
		fmt.Sprintf("%02d", b.Seconds),
	}
}

// Less orders breakdowns field by field, largest unit first.
func (b Breakdown) Less(o Breakdown) bool {
	a := [6]int{b.Years, b.Months, b.Days, b.Hours, b.Minutes, b.Seconds}
	c := [6]int{o.Years, o.Months, o.Days, o.Hours, o.Minutes, o.Seconds}
	for i := range a {
		if a[i] != c[i] {
			return a[i] < c[i]
		}
	}
	return false
}

func (b Breakdown) String() string {
	return fmt.Sprintf("%dy %dm %dd %02d:%02d:%02d", b.Years, b.Months, b.Days, b.Hours, b.Minutes, b.Seconds)
}
