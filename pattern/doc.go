// Package pattern translates textual recurrence notations into strategies.
//
// A pattern is a kind letter followed by comma-separated integers. The
// weekly kind is built in:
//
//	W2      every day of every second week
//	W62,1   Monday to Friday of every week
//	W112,3  Thursday, Friday and Saturday of every third week
//
// Further kinds can be added with Factory.Register.
package pattern
