package dateutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMonthDays(t *testing.T) {
	cases := []struct {
		month time.Time
		want  int
	}{
		{date(2025, time.January, 15), 31},
		{date(2025, time.February, 1), 28},
		{date(2024, time.February, 10), 29}, // leap year
		{date(2025, time.April, 30), 30},
		{date(2025, time.December, 1), 31},
	}
	for _, c := range cases {
		days := MonthDays(c.month)
		if len(days) != c.want {
			t.Errorf("MonthDays(%v) has %d days, want %d", c.month, len(days), c.want)
		}
		if days[0].Day() != 1 {
			t.Errorf("MonthDays(%v) starts on day %d, want 1", c.month, days[0].Day())
		}
		if days[len(days)-1].Day() != c.want {
			t.Errorf("MonthDays(%v) ends on day %d, want %d", c.month, days[len(days)-1].Day(), c.want)
		}
	}
}

func TestWeekIndexForDate(t *testing.T) {
	cases := []struct {
		day  int
		want int
	}{
		{1, 0}, {7, 0}, {8, 1}, {14, 1}, {15, 2}, {28, 3}, {29, 4}, {31, 4},
	}
	for _, c := range cases {
		got := WeekIndexForDate(date(2025, time.March, c.day))
		if got != c.want {
			t.Errorf("WeekIndexForDate(day %d) = %d, want %d", c.day, got, c.want)
		}
	}
}

func TestWeekSliceMondayAligned(t *testing.T) {
	// March 2025: the 1st is a Saturday, so week 0 must be padded back to
	// Monday February 24.
	days := MonthDays(date(2025, time.March, 1))

	week := WeekSlice(days, 0)
	if len(week) != 7 {
		t.Fatalf("WeekSlice returned %d dates, want 7", len(week))
	}
	if week[0].Weekday() != time.Monday {
		t.Errorf("week starts on %v, want Monday", week[0].Weekday())
	}
	if !SameDay(week[0], date(2025, time.February, 24)) {
		t.Errorf("week starts on %v, want 2025-02-24", week[0])
	}
	for i := 1; i < len(week); i++ {
		if !SameDay(week[i], week[i-1].AddDate(0, 0, 1)) {
			t.Errorf("week dates not consecutive at index %d: %v after %v", i, week[i], week[i-1])
		}
	}
}

func TestWeekSliceAlwaysSevenDays(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		days := MonthDays(date(2025, m, 1))
		for w := 0; w < TotalWeeks(days); w++ {
			week := WeekSlice(days, w)
			if len(week) != 7 {
				t.Errorf("month %v week %d has %d dates, want 7", m, w, len(week))
			}
			if week[0].Weekday() != time.Monday {
				t.Errorf("month %v week %d starts on %v, want Monday", m, w, week[0].Weekday())
			}
		}
	}
}

func TestWeekSliceOutOfRange(t *testing.T) {
	days := MonthDays(date(2025, time.March, 1))
	if got := WeekSlice(days, 5); len(got) != 0 {
		t.Errorf("WeekSlice out of range returned %d dates, want 0", len(got))
	}
	if got := WeekSlice(days, -1); len(got) != 0 {
		t.Errorf("WeekSlice negative index returned %d dates, want 0", len(got))
	}
}

func TestTotalWeeks(t *testing.T) {
	cases := []struct {
		month time.Time
		want  int
	}{
		{date(2025, time.February, 1), 4}, // 28 days
		{date(2025, time.April, 1), 5},    // 30 days
		{date(2025, time.March, 1), 5},    // 31 days
	}
	for _, c := range cases {
		if got := TotalWeeks(MonthDays(c.month)); got != c.want {
			t.Errorf("TotalWeeks(%v) = %d, want %d", c.month, got, c.want)
		}
	}
}

func TestIsInMonth(t *testing.T) {
	march := date(2025, time.March, 1)
	if !IsInMonth(date(2025, time.March, 31), march) {
		t.Error("March 31 should be in March")
	}
	if IsInMonth(date(2025, time.February, 24), march) {
		t.Error("February 24 should not be in March")
	}
	if IsInMonth(date(2024, time.March, 5), march) {
		t.Error("March of another year should not match")
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	d := date(2025, time.March, 5)
	key := DateKey(d)
	if key != "2025-03-05" {
		t.Fatalf("DateKey = %q, want 2025-03-05", key)
	}
	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("ParseDateKey: %v", err)
	}
	if !SameDay(parsed, d) {
		t.Errorf("ParseDateKey(%q) = %v, want %v", key, parsed, d)
	}
}

func TestMonthOf(t *testing.T) {
	got := MonthOf(date(2025, time.March, 17))
	if !SameDay(got, date(2025, time.March, 1)) {
		t.Errorf("MonthOf = %v, want first of March", got)
	}
}
