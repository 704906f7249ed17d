package strategy

import (
	"strings"
	"time"
)

// DaysOfWeek is a set of weekdays encoded as a bit field, one bit per day
// from Sunday (bit 0) to Saturday (bit 6). The bit position of a day equals
// its time.Weekday value.
type DaysOfWeek uint8

// Single days.
const (
	Sunday DaysOfWeek = 1 << iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Common unions.
const (
	Weekdays    = Monday | Tuesday | Wednesday | Thursday | Friday
	WeekendDays = Saturday | Sunday
	EveryDay    = Weekdays | WeekendDays
)

const (
	minDaysOfWeek = int(Sunday)
	maxDaysOfWeek = int(EveryDay)
)

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// NewDaysOfWeek validates the raw bit field and returns it as DaysOfWeek.
// At least one day must be selected and no bits above Saturday may be set.
func NewDaysOfWeek(value int) (DaysOfWeek, error) {
	if value < minDaysOfWeek || value > maxDaysOfWeek {
		return 0, outOfRangeError("daysOfWeek", value,
			"a value in [1, 127]")
	}
	return DaysOfWeek(value), nil
}

// DaysOf returns the set containing the given weekdays.
func DaysOf(weekdays ...time.Weekday) DaysOfWeek {
	var days DaysOfWeek
	for _, weekday := range weekdays {
		if validWeekday(weekday) {
			days |= 1 << weekday
		}
	}
	return days
}

// Contains reports whether the weekday is a member of the set.
func (d DaysOfWeek) Contains(weekday time.Weekday) bool {
	return validWeekday(weekday) && d&(1<<weekday) != 0
}

// Weekdays returns the members of the set from Sunday to Saturday.
func (d DaysOfWeek) Weekdays() []time.Weekday {
	weekdays := make([]time.Weekday, 0, 7)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		if d.Contains(weekday) {
			weekdays = append(weekdays, weekday)
		}
	}
	return weekdays
}

// Len returns the number of days in the set.
func (d DaysOfWeek) Len() int {
	n := 0
	for v := d & EveryDay; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// String returns the abbreviated day names joined by '|', e.g. "Thu|Fri|Sat".
func (d DaysOfWeek) String() string {
	weekdays := d.Weekdays()
	if len(weekdays) == 0 {
		return "None"
	}
	names := make([]string, len(weekdays))
	for i, weekday := range weekdays {
		names[i] = dayNames[weekday]
	}
	return strings.Join(names, "|")
}

func validWeekday(weekday time.Weekday) bool {
	return weekday >= time.Sunday && weekday <= time.Saturday
}
