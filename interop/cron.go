package interop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorhill/cronexpr"
	"github.com/reugn/go-darecali/strategy"
)

// CronExpression returns the five-field cron expression firing at midnight
// on every date of an interval-one strategy, e.g. "0 0 * * 4,5,6" for
// Thursday to Saturday. Cron has no notion of week intervals, so any other
// interval returns an error wrapping ErrUnsupported.
func CronExpression(s *strategy.EveryNthWeek) (string, error) {
	if s.Interval() != 1 {
		return "", unsupportedError(fmt.Sprintf("cron cannot express interval %d",
			s.Interval()))
	}
	weekdays := s.DaysOfWeek().Weekdays()
	fields := make([]string, len(weekdays))
	for i, weekday := range weekdays {
		fields[i] = strconv.Itoa(int(weekday))
	}
	return "0 0 * * " + strings.Join(fields, ","), nil
}

// Cron returns the parsed CronExpression of the strategy.
func Cron(s *strategy.EveryNthWeek) (*cronexpr.Expression, error) {
	expr, err := CronExpression(s)
	if err != nil {
		return nil, err
	}
	parsed, err := cronexpr.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parse cron expression %q: %w", expr, err)
	}
	return parsed, nil
}
