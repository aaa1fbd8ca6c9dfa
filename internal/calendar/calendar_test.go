package calendar

import (
	"testing"
	"time"
)

// caseEvent mirrors the shape of an OR case for bucketing purposes.
type caseEvent struct {
	name  string
	date  string
	addon bool
}

func (e caseEvent) EventDate() string { return e.date }
func (e caseEvent) Bucketable() bool  { return !e.addon && e.date != "" }

// confEvent mirrors a conference record, which is always bucketable.
type confEvent struct {
	title string
	date  string
}

func (e confEvent) EventDate() string { return e.date }
func (e confEvent) Bucketable() bool  { return true }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestParseDateOrNone(t *testing.T) {
	if _, ok := ParseDateOrNone(""); ok {
		t.Error("empty string should not parse")
	}
	if _, ok := ParseDateOrNone("not-a-date"); ok {
		t.Error("malformed string should not parse")
	}

	d, ok := ParseDateOrNone("2024-06-10")
	if !ok {
		t.Fatal("expected 2024-06-10 to parse")
	}
	if d.Year() != 2024 || d.Month() != time.June || d.Day() != 10 {
		t.Errorf("unexpected parsed date: %v", d)
	}
}

func TestForDay_ExcludesAddons(t *testing.T) {
	events := []caseEvent{
		{name: "first", date: "2024-06-10", addon: false},
		{name: "second", date: "2024-06-10", addon: true},
	}

	got := ForDay(events, date(2024, time.June, 10))
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].name != "first" {
		t.Errorf("expected first, got %s", got[0].name)
	}
}

func TestForDay_ExcludesOtherDays(t *testing.T) {
	events := []caseEvent{
		{name: "match", date: "2024-06-10"},
		{name: "miss", date: "2024-06-11"},
		{name: "undated", date: ""},
	}

	got := ForDay(events, date(2024, time.June, 10))
	if len(got) != 1 || got[0].name != "match" {
		t.Errorf("expected only the matching event, got %v", got)
	}
}

func TestForDay_PreservesInputOrder(t *testing.T) {
	events := []caseEvent{
		{name: "late", date: "2024-06-10"},
		{name: "early", date: "2024-06-10"},
		{name: "mid", date: "2024-06-10"},
	}

	got := ForDay(events, date(2024, time.June, 10))
	want := []string{"late", "early", "mid"}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, got[i].name)
		}
	}
}

func TestForWeek_SundayStartBounds(t *testing.T) {
	// 2024-06-14 is a Friday; its week runs Sunday 06-09 through Saturday 06-15.
	friday := date(2024, time.June, 14)

	events := []caseEvent{
		{name: "week-start", date: "2024-06-09"},
		{name: "week-end", date: "2024-06-15"},
		{name: "next-sunday", date: "2024-06-16"},
		{name: "prior-saturday", date: "2024-06-08"},
	}

	got := ForWeek(events, friday)
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].name != "week-start" || got[1].name != "week-end" {
		t.Errorf("unexpected events: %v", got)
	}
}

func TestForWeek_ExcludesAddons(t *testing.T) {
	events := []caseEvent{
		{name: "scheduled", date: "2024-06-12"},
		{name: "addon", date: "2024-06-12", addon: true},
	}

	got := ForWeek(events, date(2024, time.June, 14))
	if len(got) != 1 || got[0].name != "scheduled" {
		t.Errorf("expected only the scheduled case, got %v", got)
	}
}

func TestForWeek_ConferencesAlwaysQualify(t *testing.T) {
	events := []confEvent{
		{title: "morbidity", date: "2024-06-12"},
		{title: "grand-rounds", date: "2024-06-20"},
	}

	got := ForWeek(events, date(2024, time.June, 14))
	if len(got) != 1 || got[0].title != "morbidity" {
		t.Errorf("expected the in-week conference, got %v", got)
	}
}

func TestWeekStart(t *testing.T) {
	// Friday 2024-06-14 -> Sunday 2024-06-09.
	got := WeekStart(date(2024, time.June, 14))
	if !SameDay(got, date(2024, time.June, 9)) {
		t.Errorf("expected 2024-06-09, got %v", got)
	}

	// A Sunday is its own week start.
	sunday := date(2024, time.June, 9)
	if !SameDay(WeekStart(sunday), sunday) {
		t.Errorf("expected Sunday to be its own week start, got %v", WeekStart(sunday))
	}
}

func TestMonthGridDays_MonthStartingWednesday(t *testing.T) {
	// May 2024 begins on a Wednesday.
	days := MonthGridDays(date(2024, time.May, 1))

	if len(days)%7 != 0 {
		t.Errorf("grid length must be a multiple of 7, got %d", len(days))
	}
	// First cell is the preceding Sunday, April 28.
	if !SameDay(days[0], date(2024, time.April, 28)) {
		t.Errorf("expected grid to start 2024-04-28, got %v", days[0])
	}
	if days[0].Weekday() != time.Sunday {
		t.Errorf("grid must start on Sunday, got %v", days[0].Weekday())
	}
	last := days[len(days)-1]
	if last.Weekday() != time.Saturday {
		t.Errorf("grid must end on Saturday, got %v", last.Weekday())
	}
	if last.Before(date(2024, time.May, 31)) {
		t.Errorf("grid must cover the last day of the month, ends %v", last)
	}
}

func TestMonthGridDays_MonthStartingSunday(t *testing.T) {
	// September 2024 begins on a Sunday and ends Monday the 30th.
	days := MonthGridDays(date(2024, time.September, 15))

	if !SameDay(days[0], date(2024, time.September, 1)) {
		t.Errorf("expected grid to start 2024-09-01, got %v", days[0])
	}
	if len(days) != 35 {
		t.Errorf("expected 35 cells, got %d", len(days))
	}
}

func TestUnparsableDateExcludedEverywhere(t *testing.T) {
	events := []caseEvent{{name: "broken", date: "not-a-date"}}

	if got := ForDay(events, date(2024, time.June, 10)); len(got) != 0 {
		t.Errorf("day bucket should exclude unparsable date, got %v", got)
	}
	if got := ForWeek(events, date(2024, time.June, 10)); len(got) != 0 {
		t.Errorf("week bucket should exclude unparsable date, got %v", got)
	}
}

func TestIsCurrentMonth(t *testing.T) {
	ref := date(2024, time.June, 15)

	if !IsCurrentMonth(date(2024, time.June, 1), ref) {
		t.Error("expected June 1 to be in the current month")
	}
	if IsCurrentMonth(date(2024, time.May, 31), ref) {
		t.Error("expected May 31 to be out of the current month")
	}
	if IsCurrentMonth(date(2023, time.June, 15), ref) {
		t.Error("expected same month of a different year to be excluded")
	}
}

func TestIsToday(t *testing.T) {
	if !IsToday(time.Now()) {
		t.Error("expected now to be today")
	}
	if IsToday(time.Now().AddDate(0, 0, 1)) {
		t.Error("expected tomorrow not to be today")
	}
}
