package mock

import (
	"time"

	"github.com/reugn/go-darecali/strategy"
)

// DailyIterator yields every calendar day from Current onwards and counts
// the calls to Next.
type DailyIterator struct {
	Current time.Time
	Calls   int
}

var _ strategy.Iterator = (*DailyIterator)(nil)

// NewDailyIterator returns a new DailyIterator starting at the calendar date
// of start.
func NewDailyIterator(start time.Time) *DailyIterator {
	return &DailyIterator{Current: strategy.Date(start)}
}

func (it *DailyIterator) Next() time.Time {
	next := it.Current
	it.Current = it.Current.AddDate(0, 0, 1)
	it.Calls++
	return next
}

// Strategy is a Strategy stub returning a DailyIterator.
type Strategy struct{}

var _ strategy.Strategy = (*Strategy)(nil)

func (Strategy) Generate(start time.Time) strategy.Iterator {
	return NewDailyIterator(start)
}

func (Strategy) Description() string {
	return "daily mock"
}
