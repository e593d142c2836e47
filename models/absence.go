package models

import "time"

// AbsencePeriod represents a period during which an employee is explicitly
// unavailable (holiday, sick leave, etc.). Records are created by the
// absence-management feature; the availability engine only reads them.
type AbsencePeriod struct {
	ID         string    `bson:"id" json:"id"`                   // Unique absence identifier
	EmployeeID string    `bson:"employee_id" json:"employee_id"` // Employee the absence belongs to
	Start      time.Time `bson:"start" json:"start"`             // Absence start
	End        time.Time `bson:"end" json:"end"`                 // Absence end (exclusive)
	AllDay     bool      `bson:"all_day" json:"all_day"`         // Whole-day absence, already expanded to full clock days
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// Interval returns the absence period as a half-open interval.
func (a AbsencePeriod) Interval() Interval {
	return Interval{Start: a.Start, End: a.End}
}
