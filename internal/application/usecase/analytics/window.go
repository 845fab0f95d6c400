// Package analytics contains the financial aggregation use cases.
package analytics

import "time"

// Window is an inclusive [Start, End] date range scoping an aggregation.
type Window struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow turns optional caller-supplied bounds into a concrete window.
// A missing start defaults to the first calendar day of the current month and
// a missing end defaults to the current moment. The resolved window is passed
// explicitly through every aggregation call; nothing reads it ambiently.
func ResolveWindow(start, end *time.Time, now time.Time) Window {
	w := Window{
		Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		End:   now,
	}
	if start != nil {
		w.Start = *start
	}
	if end != nil {
		w.End = *end
	}
	return w
}

// CurrentMonthWindow returns the window covering the current calendar month,
// from its first day through the end of its last day.
func CurrentMonthWindow(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return Window{Start: start, End: end}
}
