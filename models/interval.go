package models

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// NewInterval builds an interval, swapping the bounds when they arrive reversed.
func NewInterval(start, end time.Time) Interval {
	if end.Before(start) {
		start, end = end, start
	}
	return Interval{Start: start, End: end}
}

// Overlaps reports whether two half-open intervals intersect.
// [a,b) overlaps [c,d) iff a < d && c < b, so an interval ending exactly
// when the other starts does not conflict.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// DayInterval expands a date to the full clock day [00:00:00, 23:59:59]
// in the date's own location.
func DayInterval(t time.Time) Interval {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Interval{Start: start, End: start.Add(24*time.Hour - time.Second)}
}
