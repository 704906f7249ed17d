// Package interop converts EveryNthWeek strategies to and from other
// recurrence notations: RFC 5545 rules through rrule-go and, for weekly
// intervals of one, cron expressions through cronexpr.
package interop
