// Package strategy computes recurring calendar dates.
//
// A Strategy maps a start date to an infinite, strictly increasing sequence
// of dates. Sequences are pulled one element at a time through an Iterator;
// Take, Until, All and Stream bound the consumption.
//
// EveryNthWeek implements "every Nth week, on these days of the week". Weeks
// are aligned to a fixed first day (Sunday unless configured otherwise), and
// the week containing the start date is week zero. A date is produced when
// it is not before the start date, its weekday is selected and its week
// offset is a multiple of N. The week boundary of the start date is found
// with modular day-of-week arithmetic, so creating a sequence costs the same
// for every start date, and each Next call is a constant amount of work.
//
// Times are reduced to calendar dates: only the year, month and day of a
// time.Time are significant, and every produced date is midnight UTC.
package strategy
