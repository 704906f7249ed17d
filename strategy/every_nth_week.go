package strategy

import (
	"fmt"
	"math"
	"time"
)

const (
	minInterval = 1
	// maxInterval keeps a step between qualifying weeks within half the
	// seconds range of time.Time.
	maxInterval = math.MaxInt64 / 2 / (secondsPerDay * daysPerWeek)
)

// EveryNthWeekOptions represents options for the EveryNthWeek strategy.
type EveryNthWeekOptions struct {
	// WeekStart is the first day of the week used to align week boundaries
	// and to order the selected days within a week.
	// Sunday is the default.
	WeekStart time.Weekday

	// AlignToStart makes every sequence count its weeks as seven-day blocks
	// beginning on the start date itself. WeekStart is ignored when set.
	AlignToStart bool
}

// EveryNthWeek visits the selected days of the week in every interval-th
// week, counting from the week that contains the start date. The week of the
// start date is week zero and always qualifies; dates before the start date
// are never produced.
//
// EveryNthWeek is immutable and safe for concurrent use.
type EveryNthWeek struct {
	days     DaysOfWeek
	interval int
	opts     EveryNthWeekOptions

	// selected days in the order they occur within a week
	weekdays []time.Weekday
}

var _ Strategy = (*EveryNthWeek)(nil)

// NewEveryNthWeek returns a new EveryNthWeek for the raw days-of-week bit
// field and the interval in weeks, using Sunday-aligned weeks.
func NewEveryNthWeek(days, interval int) (*EveryNthWeek, error) {
	return NewEveryNthWeekWithOptions(days, interval, EveryNthWeekOptions{
		WeekStart: time.Sunday,
	})
}

// NewEveryNthWeekWithOptions returns a new EveryNthWeek configured with the
// given options.
// It returns an error wrapping ErrOutOfRange if days is outside [1, 127],
// interval is less than one or too large, or the week start is not a valid
// weekday. An interval is too large when one step of it would move past the
// dates time.Time can represent.
func NewEveryNthWeekWithOptions(days, interval int,
	opts EveryNthWeekOptions) (*EveryNthWeek, error) {
	daysOfWeek, err := NewDaysOfWeek(days)
	if err != nil {
		return nil, err
	}
	if interval < minInterval {
		return nil, outOfRangeError("interval", interval, "at least 1")
	}
	if int64(interval) > maxInterval || interval > math.MaxInt/daysPerWeek {
		return nil, outOfRangeError("interval", interval,
			fmt.Sprintf("at most %d", int64(maxInterval)))
	}
	if !validWeekday(opts.WeekStart) {
		return nil, outOfRangeError("weekStart", int(opts.WeekStart),
			"a weekday in [0, 6]")
	}

	return &EveryNthWeek{
		days:     daysOfWeek,
		interval: interval,
		opts:     opts,
		weekdays: weekOrder(daysOfWeek.Weekdays(), opts.WeekStart),
	}, nil
}

// DaysOfWeek returns the selected days.
func (s *EveryNthWeek) DaysOfWeek() DaysOfWeek {
	return s.days
}

// Interval returns the number of weeks between qualifying weeks.
func (s *EveryNthWeek) Interval() int {
	return s.interval
}

// WeekStart returns the first day of the week of a sequence anchored at
// start.
func (s *EveryNthWeek) WeekStart(start time.Time) time.Weekday {
	if s.opts.AlignToStart {
		return Date(start).Weekday()
	}
	return s.opts.WeekStart
}

// Options returns the options the strategy was created with.
func (s *EveryNthWeek) Options() EveryNthWeekOptions {
	return s.opts
}

// Description returns the description of the strategy.
func (s *EveryNthWeek) Description() string {
	weekStart := s.opts.WeekStart.String()
	if s.opts.AlignToStart {
		weekStart = "the start date"
	}
	return fmt.Sprintf("EveryNthWeek: %s every %d week(s), weeks start on %s",
		s.days, s.interval, weekStart)
}

// Generate returns a new Iterator over the qualifying dates on or after the
// calendar date of start.
func (s *EveryNthWeek) Generate(start time.Time) Iterator {
	start = Date(start)
	firstDay, weekdays := s.opts.WeekStart, s.weekdays
	if s.opts.AlignToStart {
		firstDay = start.Weekday()
		weekdays = weekOrder(s.days.Weekdays(), firstDay)
	}

	it := &weekIterator{
		weekdays:  weekdays,
		weekStart: firstDay,
		step:      s.interval * daysPerWeek,
		week:      WeekStart(start, firstDay),
	}

	// skip the days of week zero preceding the start date
	position := dayOfWeek(start.Weekday(), firstDay)
	for it.index < len(it.weekdays) &&
		dayOfWeek(it.weekdays[it.index], it.weekStart) < position {
		it.index++
	}

	return it
}

// weekIterator holds the cursor of a single EveryNthWeek sequence.
type weekIterator struct {
	weekdays  []time.Weekday // shared, read-only
	weekStart time.Weekday
	step      int // days between qualifying weeks

	week  time.Time // first day of the current qualifying week
	index int       // next position in weekdays
}

var _ Iterator = (*weekIterator)(nil)

// Next returns the next qualifying date, moving to the next qualifying
// week once the selected days of the current one are exhausted.
func (it *weekIterator) Next() time.Time {
	if it.index == len(it.weekdays) {
		it.week = it.week.AddDate(0, 0, it.step)
		it.index = 0
	}
	weekday := it.weekdays[it.index]
	it.index++
	return it.week.AddDate(0, 0, dayOfWeek(weekday, it.weekStart))
}

// weekOrder rotates weekdays, sorted from Sunday to Saturday, so that they
// are sorted from firstDay onwards.
func weekOrder(weekdays []time.Weekday, firstDay time.Weekday) []time.Weekday {
	i := 0
	for i < len(weekdays) && weekdays[i] < firstDay {
		i++
	}
	ordered := make([]time.Weekday, 0, len(weekdays))
	ordered = append(ordered, weekdays[i:]...)
	return append(ordered, weekdays[:i]...)
}
