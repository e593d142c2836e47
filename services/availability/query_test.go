package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointQuery_NormalizesDay(t *testing.T) {
	q := NewPointQuery(june(10, 15, 42), []string{"e1"}, nil, nil)

	assert.Equal(t, june(10, 0, 0), q.Interval.Start)
	assert.Equal(t, june(10, 23, 59).Add(59*time.Second), q.Interval.End)
}

func TestNewRangeQuery_SwapsReversedBounds(t *testing.T) {
	q := NewRangeQuery(june(20, 0, 0), june(10, 0, 0), nil, nil, nil)

	assert.Equal(t, june(10, 0, 0), q.Interval.Start)
	assert.Equal(t, june(20, 0, 0), q.Interval.End)
}

func TestQueryConstructors_DefaultStatuses(t *testing.T) {
	q := NewPointQuery(june(1, 0, 0), nil, nil, nil)
	assert.Equal(t, DefaultActiveStatuses, q.Statuses)

	q = NewPointQuery(june(1, 0, 0), nil, nil, []string{StatusCompleted})
	assert.Equal(t, []string{StatusCompleted}, q.Statuses)
}

func TestQueryConstructors_DedupeIDs(t *testing.T) {
	q := NewPointQuery(june(1, 0, 0), []string{"e1", "e2", "e1", ""}, []string{"r1", "r1"}, nil)

	assert.Equal(t, []string{"e1", "e2"}, q.EmployeeIDs)
	assert.Equal(t, []string{"r1"}, q.RoleIDs)
}

func TestParseDate(t *testing.T) {
	epoch, err := ParseDate("1717200000")
	require.NoError(t, err)
	assert.Equal(t, int64(1717200000), epoch.Unix())

	day, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, time.June, day.Month())
	assert.Equal(t, 10, day.Day())

	stamp, err := ParseDate("2024-06-10T18:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 18, stamp.Hour())

	_, err = ParseDate("next tuesday")
	assert.Error(t, err)
}
