// Package dateutil implements the calendar arithmetic shared by the
// schedule grid, reports and history views: month day-ranges, Monday-aligned
// week windows and the YYYY-MM-DD date keys every component indexes by.
package dateutil

import "time"

// DateKeyLayout is the map-key format for all date-indexed lookups.
// Local calendar date, no time or timezone component.
const DateKeyLayout = "2006-01-02"

// DateKey formats t as a schedule map key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key back into a local date.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, time.Local)
}

// MonthOf truncates t to the first day of its month.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthDays returns every calendar day of the month containing month,
// ascending, first through last day inclusive.
func MonthDays(month time.Time) []time.Time {
	first := MonthOf(month)
	last := first.AddDate(0, 1, -1)

	days := make([]time.Time, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WeekIndexForDate returns the zero-based week bucket of date within its
// month: days 1-7 map to week 0, days 8-14 to week 1, and so on.
func WeekIndexForDate(date time.Time) int {
	return (date.Day() - 1) / 7
}

// TotalWeeks returns how many week buckets the given month days span.
func TotalWeeks(monthDays []time.Time) int {
	return (len(monthDays) + 6) / 7
}

// WeekSlice takes the weekIndex-th 7-day bucket of monthDays and widens it to
// a Monday-aligned window of exactly 7 consecutive dates. The window may
// include days from an adjacent month so the weekly grid stays continuous.
// An out-of-range index yields an empty slice.
func WeekSlice(monthDays []time.Time, weekIndex int) []time.Time {
	raw := RawWeekSlice(monthDays, weekIndex)
	if len(raw) == 0 {
		return raw
	}

	first := raw[0]
	dow := int(first.Weekday()) // 0 = Sunday
	mondayOffset := -(dow - 1)
	if dow == 0 {
		mondayOffset = -6
	}

	week := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		week = append(week, first.AddDate(0, 0, mondayOffset+i))
	}
	return week
}

// RawWeekSlice returns monthDays[weekIndex*7 : weekIndex*7+7] clipped to the
// month, without Monday alignment.
func RawWeekSlice(monthDays []time.Time, weekIndex int) []time.Time {
	start := weekIndex * 7
	if start < 0 || start >= len(monthDays) {
		return nil
	}
	end := start + 7
	if end > len(monthDays) {
		end = len(monthDays)
	}
	return monthDays[start:end]
}

// IsInMonth reports whether date falls in the same calendar month as month.
// Dates outside the selected month render as ghost cells.
func IsInMonth(date, month time.Time) bool {
	return date.Year() == month.Year() && date.Month() == month.Month()
}

// SameDay reports whether two dates are the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
