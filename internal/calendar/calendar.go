// Package calendar converts timestamps to UTC calendar days. Every
// "same day / next day" decision of the progression ledger goes through it.
package calendar

import "time"

// DayLayout is the canonical calendar-day string format.
const DayLayout = "2006-01-02"

// DayStart returns midnight UTC of the calendar day containing t.
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDayStart returns midnight UTC of the day after t.
func NextDayStart(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, 1)
}

// YesterdayStart returns midnight UTC of the day before t.
func YesterdayStart(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, -1)
}

// DayKey returns the UTC calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD string as a UTC midnight.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.UTC)
}

// DaysBetween returns the number of UTC calendar-day boundaries between a
// and b (b minus a). Same day gives 0, yesterday-to-today gives 1.
func DaysBetween(a, b time.Time) int {
	return int(DayStart(b).Sub(DayStart(a)).Hours() / 24)
}

// WeekBounds returns the [start, end) UTC window of the week containing t.
// Weeks start on Sunday.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	day := DayStart(t)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// Days lists the day starts of [from, to).
func Days(from, to time.Time) []time.Time {
	var out []time.Time
	for d := DayStart(from); d.Before(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
