package assignmentRepo

import "crewdesk/models"

// AssignmentRepository defines read access to event assignments.
type AssignmentRepository interface {
	// FindForInterval returns assignments for the given employees whose
	// engagement intersects iv and whose status is in statuses. An empty
	// employeeIDs slice short-circuits to an empty result. Implementations
	// may filter by status server-side or leave it to the caller; the
	// availability engine re-checks status membership either way.
	FindForInterval(employeeIDs []string, iv models.Interval, statuses []string) ([]models.EventAssignment, error)
}
