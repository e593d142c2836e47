package availability

import (
	"time"

	absenceRepo "crewdesk/database/repository/absence"
	assignmentRepo "crewdesk/database/repository/assignment"
	employeeRepo "crewdesk/database/repository/employee"
	"crewdesk/models"
)

// Engine resolves whether employees are free for a queried interval by
// reconciling absence periods with active event assignments.
type Engine interface {
	// Resolve runs both filtering passes and returns the full partition of
	// the candidate set into available and unavailable employees.
	Resolve(q Query) (Result, error)
	// IsAbsent reports whether the employee has an absence period covering
	// any part of the given day. The booking pass is skipped.
	IsAbsent(employeeID string, date time.Time) (bool, error)
	// IsWorking reports whether the employee is committed on the given day,
	// through an absence or an active event assignment.
	IsWorking(employeeID string, date time.Time) (bool, error)
}

// CalendarService enumerates timeline entries for calendar rendering. It
// shares the engine's overlap primitives but makes no availability decision:
// every absence and every assignment in range yields an entry.
type CalendarService interface {
	Entries(start, end time.Time, employeeIDs []string) ([]models.CalendarEntry, error)
}

// DefaultEngine implements Engine. It holds no state between calls; all
// mutation happens on locals, so concurrent use is safe as long as the
// repositories are.
type DefaultEngine struct {
	Absences    absenceRepo.AbsenceRepository
	Assignments assignmentRepo.AssignmentRepository
	Employees   employeeRepo.EmployeeRepository
}

// DefaultCalendarService implements CalendarService.
type DefaultCalendarService struct {
	Absences    absenceRepo.AbsenceRepository
	Assignments assignmentRepo.AssignmentRepository
	Employees   employeeRepo.EmployeeRepository
}
