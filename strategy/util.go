package strategy

import (
	"time"
)

const (
	daysPerWeek   = 7
	secondsPerDay = 24 * 60 * 60
)

// Date returns the calendar date of t as midnight UTC. The year, month and
// day are taken in t's own location.
func Date(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the first day of the week containing the calendar date
// of t, for weeks beginning on firstDay.
func WeekStart(t time.Time, firstDay time.Weekday) time.Time {
	date := Date(t)
	return date.AddDate(0, 0, -dayOfWeek(date.Weekday(), firstDay))
}

// WeekOffset returns the number of whole weeks from the week containing
// start to the week containing t. It is negative when t lies in an earlier
// week.
func WeekOffset(start, t time.Time, firstDay time.Weekday) int {
	from := WeekStart(start, firstDay)
	to := WeekStart(t, firstDay)
	return daysBetween(from, to) / daysPerWeek
}

// dayOfWeek returns the zero-based position of weekday within a week that
// begins on firstDay.
func dayOfWeek(weekday, firstDay time.Weekday) int {
	return (int(weekday) - int(firstDay) + daysPerWeek) % daysPerWeek
}

// daysBetween returns the number of days from one UTC midnight to another.
// Unix seconds keep the result exact outside the range of time.Duration.
func daysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}
