// Package calendar buckets date-bearing records into day, week, and month
// cells for the dashboard views. All functions are pure; records with dates
// that fail to parse are excluded from every bucket rather than surfaced as
// errors.
package calendar

import "time"

// ISODate is the wire format for calendar dates.
const ISODate = "2006-01-02"

// Event is a record the partitioner can place into a calendar cell.
// Bucketable reports whether the record qualifies for date bucketing at all;
// add-on OR cases return false until they are given a date.
type Event interface {
	EventDate() string
	Bucketable() bool
}

// ParseDateOrNone parses an ISO date string in local time. The boolean is
// false for empty or malformed input; callers exclude such records instead
// of propagating an error.
func ParseDateOrNone(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(ISODate, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekStart returns the Sunday on or before the given date, truncated to
// midnight local time.
func WeekStart(ref time.Time) time.Time {
	y, m, d := ref.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// ForDay returns the events falling on the given calendar day, preserving
// input order.
func ForDay[E Event](events []E, day time.Time) []E {
	var out []E
	for _, ev := range events {
		if !ev.Bucketable() {
			continue
		}
		d, ok := ParseDateOrNone(ev.EventDate())
		if !ok || !SameDay(d, day) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// ForWeek returns the events falling in the Sunday-start week containing the
// reference date, preserving input order.
func ForWeek[E Event](events []E, ref time.Time) []E {
	start := WeekStart(ref)
	end := start.AddDate(0, 0, 7)

	var out []E
	for _, ev := range events {
		if !ev.Bucketable() {
			continue
		}
		d, ok := ParseDateOrNone(ev.EventDate())
		if !ok {
			continue
		}
		if d.Before(start) || !d.Before(end) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// MonthGridDays returns every day needed to render a rectangular month grid:
// the Sunday on or before the first of the month through the Saturday on or
// after the last day. The result length is always a multiple of 7.
func MonthGridDays(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	start := WeekStart(first)
	end := last.AddDate(0, 0, 6-int(last.Weekday()))

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsCurrentMonth reports whether a date belongs to the reference month. Used
// to dim leading and trailing out-of-month cells in the grid.
func IsCurrentMonth(date, refMonth time.Time) bool {
	return date.Year() == refMonth.Year() && date.Month() == refMonth.Month()
}

// IsToday reports whether a date is today in local time.
func IsToday(date time.Time) bool {
	return SameDay(date, time.Now())
}
