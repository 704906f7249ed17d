package interop

import (
	"fmt"
	"time"

	"github.com/reugn/go-darecali/strategy"
	"github.com/teambition/rrule-go"
)

// rruleWeekdays maps time.Weekday values to rrule weekdays.
var rruleWeekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// RRuleOption returns the RFC 5545 weekly rule equivalent to the sequence
// s.Generate(start): FREQ=WEEKLY with the strategy's interval, its days as
// BYDAY, its first day of the week as WKST and DTSTART at the calendar date
// of start.
func RRuleOption(s *strategy.EveryNthWeek, start time.Time) rrule.ROption {
	weekdays := s.DaysOfWeek().Weekdays()
	byweekday := make([]rrule.Weekday, len(weekdays))
	for i, weekday := range weekdays {
		byweekday[i] = rruleWeekdays[weekday]
	}
	return rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   strategy.Date(start),
		Interval:  s.Interval(),
		Wkst:      rruleWeekdays[s.WeekStart(start)],
		Byweekday: byweekday,
	}
}

// RRule returns the rrule.RRule equivalent to s.Generate(start).
func RRule(s *strategy.EveryNthWeek, start time.Time) (*rrule.RRule, error) {
	r, err := rrule.NewRRule(RRuleOption(s, start))
	if err != nil {
		return nil, fmt.Errorf("build rrule: %w", err)
	}
	return r, nil
}

// FromRRule returns the EveryNthWeek strategy and the start date described
// by a weekly rule. Rules with a bound (COUNT or UNTIL) or with BY* parts
// other than BYDAY have no equivalent strategy. A rule without BYDAY recurs
// on the weekday of DTSTART.
func FromRRule(opt rrule.ROption) (*strategy.EveryNthWeek, time.Time, error) {
	if opt.Freq != rrule.WEEKLY {
		return nil, time.Time{}, unsupportedError("frequency is not weekly")
	}
	if opt.Count != 0 || !opt.Until.IsZero() {
		return nil, time.Time{}, unsupportedError("bounded rule")
	}
	if len(opt.Bysetpos) != 0 || len(opt.Bymonth) != 0 ||
		len(opt.Bymonthday) != 0 || len(opt.Byyearday) != 0 ||
		len(opt.Byweekno) != 0 || len(opt.Byhour) != 0 ||
		len(opt.Byminute) != 0 || len(opt.Bysecond) != 0 ||
		len(opt.Byeaster) != 0 {
		return nil, time.Time{}, unsupportedError("unsupported BY* part")
	}

	start := strategy.Date(opt.Dtstart)
	days := strategy.DaysOf(start.Weekday())
	if len(opt.Byweekday) > 0 {
		days = 0
		for _, weekday := range opt.Byweekday {
			if weekday.N() != 0 {
				return nil, time.Time{}, unsupportedError("ordinal BYDAY")
			}
			days |= strategy.DaysOf(fromRRuleWeekday(weekday))
		}
	}

	interval := opt.Interval
	if interval == 0 {
		interval = 1
	}

	s, err := strategy.NewEveryNthWeekWithOptions(int(days), interval,
		strategy.EveryNthWeekOptions{WeekStart: fromRRuleWeekday(opt.Wkst)})
	if err != nil {
		return nil, time.Time{}, err
	}
	return s, start, nil
}

func fromRRuleWeekday(weekday rrule.Weekday) time.Weekday {
	// rrule counts from Monday
	return time.Weekday((weekday.Day() + 1) % 7)
}
