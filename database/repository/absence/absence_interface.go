package absenceRepo

import "crewdesk/models"

// AbsenceRepository defines read access to absence periods.
type AbsenceRepository interface {
	// FindOverlapping returns absence periods intersecting iv, scoped to the
	// given employees. Callers resolve role filters to concrete employee IDs
	// before invocation; an empty employeeIDs slice short-circuits to an
	// empty result.
	FindOverlapping(employeeIDs []string, iv models.Interval) ([]models.AbsencePeriod, error)
}
