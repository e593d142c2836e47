package models

import "time"

// ConflictKind tags the source of a scheduling conflict.
type ConflictKind string

const (
	ConflictAbsence ConflictKind = "absence"
	ConflictBooking ConflictKind = "booking"
)

// Conflict describes why an employee was ruled out for a queried interval.
// SourceID is the absence ID for absence conflicts and the event ID for
// booking conflicts; Status and Role are only set for booking conflicts,
// Notes only for absence conflicts.
type Conflict struct {
	Kind     ConflictKind `json:"kind"`
	SourceID string       `json:"source_id"`
	Start    time.Time    `json:"start"`
	End      time.Time    `json:"end"`
	Status   string       `json:"status,omitempty"`
	Role     string       `json:"role,omitempty"`
	Notes    string       `json:"notes,omitempty"`
}

// AbsenceConflict builds a conflict record from an absence period.
func AbsenceConflict(a AbsencePeriod) Conflict {
	return Conflict{
		Kind:     ConflictAbsence,
		SourceID: a.ID,
		Start:    a.Start,
		End:      a.End,
		Notes:    a.Notes,
	}
}

// BookingConflict builds a conflict record from an event assignment.
func BookingConflict(ea EventAssignment) Conflict {
	return Conflict{
		Kind:     ConflictBooking,
		SourceID: ea.EventID,
		Start:    ea.Start,
		End:      ea.End,
		Status:   ea.Status,
		Role:     ea.Role,
	}
}
