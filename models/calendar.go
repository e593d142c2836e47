package models

import "time"

// CalendarEntryKind distinguishes the two timeline record types.
type CalendarEntryKind string

const (
	CalendarEntryAbsence CalendarEntryKind = "absence"
	CalendarEntryBooking CalendarEntryKind = "booking"
)

// CalendarEntry is a flattened timeline record for calendar rendering.
// It carries no availability decision; titles and tooltips are produced by
// the rendering layer.
type CalendarEntry struct {
	Kind       CalendarEntryKind `json:"kind"`
	EmployeeID string            `json:"employee_id"` // Owning employee
	SourceID   string            `json:"source_id"`   // Absence ID or event ID
	Start      time.Time         `json:"start"`
	End        time.Time         `json:"end"`
	Status     string            `json:"status,omitempty"` // Booking entries only
	Role       string            `json:"role,omitempty"`   // Booking entries only
	Notes      string            `json:"notes,omitempty"`  // Absence entries only
}
