package strategy

import (
	"context"
	"iter"
	"time"
)

// Strategy is a recurrence rule that maps a start date to an unbounded,
// strictly increasing sequence of calendar dates.
type Strategy interface {
	// Generate returns a new sequence anchored at the calendar date of start.
	// Every call returns an independent Iterator.
	Generate(start time.Time) Iterator

	// Description returns the description of the Strategy.
	Description() string
}

// Iterator yields the dates of a recurrence one at a time.
// An Iterator is never exhausted; the caller bounds consumption.
// It is not safe for concurrent use.
type Iterator interface {
	// Next returns the next date of the sequence as midnight UTC.
	Next() time.Time
}

// Take returns the next n dates from the iterator.
func Take(it Iterator, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = it.Next()
	}
	return dates
}

// Until returns the dates from the iterator up to and including the calendar
// date of cutoff. The first date past the cutoff is consumed and discarded.
func Until(it Iterator, cutoff time.Time) []time.Time {
	cutoff = Date(cutoff)
	var dates []time.Time
	for {
		next := it.Next()
		if next.After(cutoff) {
			return dates
		}
		dates = append(dates, next)
	}
}

// All returns a range-over-func sequence pulling dates from the iterator
// until the loop breaks.
func All(it Iterator) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Stream starts a goroutine feeding dates from the iterator into the
// returned channel until the context is done, at which point the channel
// is closed. The iterator must not be used elsewhere afterwards.
func Stream(ctx context.Context, it Iterator) <-chan time.Time {
	dates := make(chan time.Time)
	go func() {
		defer close(dates)
		for {
			next := it.Next()
			select {
			case dates <- next:
			case <-ctx.Done():
				return
			}
		}
	}()
	return dates
}
