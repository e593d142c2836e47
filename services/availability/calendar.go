package availability

import (
	"time"

	"crewdesk/models"
)

// Entries enumerates everything that belongs on a timeline for the range:
// one entry per absence, then one entry per assignment. Unlike Resolve, no
// employee is pruned between the passes; a calendar shows an employee's
// bookings even when an absence already covers the same days. The absence
// entries precede the booking entries; callers wanting chronological order
// sort by Start.
func (s *DefaultCalendarService) Entries(start, end time.Time, employeeIDs []string) ([]models.CalendarEntry, error) {
	iv := models.NewInterval(start, end)

	ids := dedupe(employeeIDs)
	if len(ids) == 0 {
		expanded, err := s.Employees.ExpandRoles(nil)
		if err != nil {
			return nil, err
		}
		ids = expanded
	}
	if len(ids) == 0 {
		return nil, nil
	}

	absences, err := s.Absences.FindOverlapping(ids, iv)
	if err != nil {
		return nil, err
	}
	var entries []models.CalendarEntry
	for _, a := range absences {
		if !iv.Overlaps(a.Interval()) {
			continue
		}
		entries = append(entries, absenceEntry(a))
	}

	assignments, err := s.Assignments.FindForInterval(ids, iv, CalendarStatuses)
	if err != nil {
		return nil, err
	}
	active := newIDSet(CalendarStatuses)
	for _, ea := range assignments {
		if !active.has(ea.Status) {
			continue
		}
		if !iv.Overlaps(ea.Interval()) {
			continue
		}
		entries = append(entries, bookingEntry(ea))
	}
	return entries, nil
}

func absenceEntry(a models.AbsencePeriod) models.CalendarEntry {
	return models.CalendarEntry{
		Kind:       models.CalendarEntryAbsence,
		EmployeeID: a.EmployeeID,
		SourceID:   a.ID,
		Start:      a.Start,
		End:        a.End,
		Notes:      a.Notes,
	}
}

func bookingEntry(ea models.EventAssignment) models.CalendarEntry {
	return models.CalendarEntry{
		Kind:       models.CalendarEntryBooking,
		EmployeeID: ea.EmployeeID,
		SourceID:   ea.EventID,
		Start:      ea.Start,
		End:        ea.End,
		Status:     ea.Status,
		Role:       ea.Role,
	}
}
