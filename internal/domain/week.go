package domain

import "time"

// WeekStart returns the Sunday 00:00 that starts the week containing ref.
// The result keeps ref's location.
func WeekStart(ref time.Time) time.Time {
	sunday := ref.AddDate(0, 0, -int(ref.Weekday()))
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, ref.Location())
}

// WeekKey is the Unix timestamp of WeekStart(ref), used as the week bucket key
func WeekKey(ref time.Time) int64 {
	return WeekStart(ref).Unix()
}

// WeekDates returns Sunday..Saturday of the week containing ref
func WeekDates(ref time.Time) [DaysInWeek]time.Time {
	start := WeekStart(ref)

	var dates [DaysInWeek]time.Time
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// DateIn moves a calendar date into loc keeping year/month/day.
// Dates read from DATE columns arrive as UTC midnight and must not shift a day.
func DateIn(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
}
