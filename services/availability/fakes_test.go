package availability

import (
	"crewdesk/models"
)

// fakeAbsenceRepo serves canned absence periods, honoring the scoping and
// overlap contract of the real repository.
type fakeAbsenceRepo struct {
	absences []models.AbsencePeriod
	err      error
	calls    int
}

func (f *fakeAbsenceRepo) FindOverlapping(employeeIDs []string, iv models.Interval) ([]models.AbsencePeriod, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	scope := newIDSet(employeeIDs)
	var out []models.AbsencePeriod
	for _, a := range f.absences {
		if scope.has(a.EmployeeID) && iv.Overlaps(a.Interval()) {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeAssignmentRepo deliberately ignores the statuses argument: the engine
// must re-check status membership itself.
type fakeAssignmentRepo struct {
	assignments []models.EventAssignment
	err         error
	calls       int
}

func (f *fakeAssignmentRepo) FindForInterval(employeeIDs []string, iv models.Interval, statuses []string) ([]models.EventAssignment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	scope := newIDSet(employeeIDs)
	var out []models.EventAssignment
	for _, ea := range f.assignments {
		if scope.has(ea.EmployeeID) && iv.Overlaps(ea.Interval()) {
			out = append(out, ea)
		}
	}
	return out, nil
}

// fakeEmployeeRepo expands roles from a static map; nil role input falls
// back to the "default" key like the configured default roles would.
type fakeEmployeeRepo struct {
	byRole map[string][]string
	err    error
}

func (f *fakeEmployeeRepo) GetByID(id string) (*models.Employee, error) {
	return &models.Employee{ID: id, Active: true}, nil
}

func (f *fakeEmployeeRepo) ExpandRoles(roleIDs []string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(roleIDs) == 0 {
		roleIDs = []string{"default"}
	}
	seen := make(map[string]struct{})
	var out []string
	for _, role := range roleIDs {
		for _, id := range f.byRole[role] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out, nil
}

func newTestEngine(absences *fakeAbsenceRepo, assignments *fakeAssignmentRepo, employees *fakeEmployeeRepo) *DefaultEngine {
	if absences == nil {
		absences = &fakeAbsenceRepo{}
	}
	if assignments == nil {
		assignments = &fakeAssignmentRepo{}
	}
	if employees == nil {
		employees = &fakeEmployeeRepo{}
	}
	return &DefaultEngine{
		Absences:    absences,
		Assignments: assignments,
		Employees:   employees,
	}
}
