package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 5, hour, min, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "disjoint",
			a:    Interval{Start: at(8, 0), End: at(9, 0)},
			b:    Interval{Start: at(10, 0), End: at(11, 0)},
			want: false,
		},
		{
			name: "touching endpoints do not overlap",
			a:    Interval{Start: at(10, 0), End: at(12, 0)},
			b:    Interval{Start: at(12, 0), End: at(14, 0)},
			want: false,
		},
		{
			name: "one minute of overlap",
			a:    Interval{Start: at(10, 0), End: at(12, 0)},
			b:    Interval{Start: at(11, 59), End: at(14, 0)},
			want: true,
		},
		{
			name: "containment",
			a:    Interval{Start: at(8, 0), End: at(18, 0)},
			b:    Interval{Start: at(12, 0), End: at(13, 0)},
			want: true,
		},
		{
			name: "identical",
			a:    Interval{Start: at(8, 0), End: at(9, 0)},
			b:    Interval{Start: at(8, 0), End: at(9, 0)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestNewIntervalSwapsReversedBounds(t *testing.T) {
	iv := NewInterval(at(12, 0), at(8, 0))
	assert.Equal(t, at(8, 0), iv.Start)
	assert.Equal(t, at(12, 0), iv.End)
}

func TestDayInterval(t *testing.T) {
	iv := DayInterval(at(15, 42))
	assert.Equal(t, at(0, 0), iv.Start)
	assert.Equal(t, time.Date(2024, 6, 5, 23, 59, 59, 0, time.UTC), iv.End)
}
