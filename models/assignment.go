package models

import "time"

// Assignment roles. An event carries one primary assignment plus any number
// of support assignments; the records are shaped identically.
const (
	RolePrimary = "primary"
	RoleSupport = "support"
)

// EventAssignment commits an employee to a booked event with a status.
// Statuses outside the caller's active set never count as conflicts.
type EventAssignment struct {
	EventID    string    `bson:"event_id" json:"event_id"`       // Event the employee is assigned to
	EmployeeID string    `bson:"employee_id" json:"employee_id"` // Assigned employee
	Role       string    `bson:"role" json:"role"`               // e.g. "primary", "support"
	Status     string    `bson:"status" json:"status"`           // e.g. "confirmed", "approved", "cancelled"
	Start      time.Time `bson:"start" json:"start"`             // Engagement start
	End        time.Time `bson:"end" json:"end"`                 // Engagement end (exclusive)
}

// Interval returns the engagement as a half-open interval.
func (ea EventAssignment) Interval() Interval {
	return Interval{Start: ea.Start, End: ea.End}
}
