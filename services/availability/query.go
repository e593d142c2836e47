package availability

import (
	"fmt"
	"strconv"
	"time"

	"crewdesk/models"
)

// Booking statuses recognized across the service.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DefaultActiveStatuses is substituted by the query constructors when a
// caller supplies no status set. Overridden from config at startup.
var DefaultActiveStatuses = []string{StatusApproved, StatusConfirmed}

// CalendarStatuses is the broader set used for timeline display: completed
// engagements stay visible on historical calendars.
var CalendarStatuses = []string{StatusApproved, StatusConfirmed, StatusCompleted}

// Query is a normalized availability question: which of these employees (or
// employees holding these roles) are free during this interval, treating
// only these assignment statuses as conflicts.
type Query struct {
	Interval    models.Interval
	EmployeeIDs []string
	RoleIDs     []string
	Statuses    []string
}

// NewPointQuery builds a query for a single day, expanded to the full clock
// day of date.
func NewPointQuery(date time.Time, employeeIDs, roleIDs, statuses []string) Query {
	return Query{
		Interval:    models.DayInterval(date),
		EmployeeIDs: dedupe(employeeIDs),
		RoleIDs:     dedupe(roleIDs),
		Statuses:    normalizeStatuses(statuses),
	}
}

// NewRangeQuery builds a query spanning [start, end). Reversed bounds are
// swapped rather than rejected; date inputs arrive from loosely validated
// UI fields.
func NewRangeQuery(start, end time.Time, employeeIDs, roleIDs, statuses []string) Query {
	return Query{
		Interval:    models.NewInterval(start, end),
		EmployeeIDs: dedupe(employeeIDs),
		RoleIDs:     dedupe(roleIDs),
		Statuses:    normalizeStatuses(statuses),
	}
}

// ParseDate accepts an epoch-seconds value or a date string ("2006-01-02" or
// RFC3339). Timestamps are taken as already being in the operating timezone;
// no conversion happens here.
func ParseDate(s string) (time.Time, error) {
	if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(epoch, 0), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func normalizeStatuses(statuses []string) []string {
	if len(statuses) == 0 {
		return append([]string(nil), DefaultActiveStatuses...)
	}
	return dedupe(statuses)
}

// dedupe drops duplicate and empty IDs, preserving first-seen order.
func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
