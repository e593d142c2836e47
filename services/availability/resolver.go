package availability

import (
	"sort"
	"time"

	"crewdesk/models"
)

// Result partitions a query's candidate set. Every candidate lands on
// exactly one side: Available and Absentees are disjoint and their union is
// the candidate set. Unavailable holds the conflicts that removed each
// absentee, keyed by employee ID.
type Result struct {
	Available   []string                     `json:"available"`
	Unavailable map[string][]models.Conflict `json:"unavailable"`
	Absentees   []string                     `json:"absentees"`
}

// Resolve narrows the candidate set with two sequential passes: absences
// first, then active event assignments over the survivors. An employee
// removed by the absence pass is never checked against bookings, so an
// employee both absent and double-booked reports only the absence conflict.
func (e *DefaultEngine) Resolve(q Query) (Result, error) {
	if q.Interval.End.Before(q.Interval.Start) {
		return Result{}, NewInvalidQueryError("interval end precedes start")
	}

	candidates, err := e.candidateSet(q)
	if err != nil {
		return Result{}, err
	}
	if len(candidates) == 0 {
		// No one to check; the booking repository is never consulted.
		return Result{Unavailable: map[string][]models.Conflict{}}, nil
	}

	pool := newIDSet(candidates)
	unavailable := make(map[string][]models.Conflict)

	remaining, err := e.absencePass(q.Interval, pool, unavailable)
	if err != nil {
		return Result{}, err
	}
	remaining, err = e.bookingPass(q.Interval, q.Statuses, remaining, unavailable)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Available:   remaining.values(),
		Unavailable: unavailable,
		Absentees:   pool.minus(remaining),
	}
	return result, nil
}

// IsAbsent runs the absence pass alone for a single employee on the given
// day; booking conflicts are not consulted.
func (e *DefaultEngine) IsAbsent(employeeID string, date time.Time) (bool, error) {
	pool := newIDSet([]string{employeeID})
	remaining, err := e.absencePass(models.DayInterval(date), pool, make(map[string][]models.Conflict))
	if err != nil {
		return false, err
	}
	return len(remaining) == 0, nil
}

// IsWorking reports whether the employee carries any commitment on the given
// day. It runs both passes and inspects availability emptiness.
func (e *DefaultEngine) IsWorking(employeeID string, date time.Time) (bool, error) {
	res, err := e.Resolve(NewPointQuery(date, []string{employeeID}, nil, nil))
	if err != nil {
		return false, err
	}
	return len(res.Available) == 0, nil
}

// candidateSet returns the explicit employee IDs when given, else expands
// the role filter. Both empty yields an empty pool, which is a well-defined
// result, not an error.
func (e *DefaultEngine) candidateSet(q Query) ([]string, error) {
	if len(q.EmployeeIDs) > 0 {
		return q.EmployeeIDs, nil
	}
	if len(q.RoleIDs) > 0 {
		return e.Employees.ExpandRoles(q.RoleIDs)
	}
	return nil, nil
}

// absencePass removes every employee with an overlapping absence from the
// pool, recording one conflict per absence. An employee with several
// overlapping absences accumulates several conflicts but is removed once.
func (e *DefaultEngine) absencePass(iv models.Interval, pool idSet, unavailable map[string][]models.Conflict) (idSet, error) {
	absences, err := e.Absences.FindOverlapping(pool.values(), iv)
	if err != nil {
		return nil, err
	}
	remaining := pool.clone()
	for _, a := range absences {
		if !pool.has(a.EmployeeID) {
			continue
		}
		if !iv.Overlaps(a.Interval()) {
			continue
		}
		unavailable[a.EmployeeID] = append(unavailable[a.EmployeeID], models.AbsenceConflict(a))
		remaining.remove(a.EmployeeID)
	}
	return remaining, nil
}

// bookingPass removes every remaining employee with an active overlapping
// assignment. Status membership is re-checked here even though the
// repository filters server-side.
func (e *DefaultEngine) bookingPass(iv models.Interval, statuses []string, pool idSet, unavailable map[string][]models.Conflict) (idSet, error) {
	if len(pool) == 0 {
		return pool, nil
	}
	assignments, err := e.Assignments.FindForInterval(pool.values(), iv, statuses)
	if err != nil {
		return nil, err
	}
	active := newIDSet(statuses)
	remaining := pool.clone()
	for _, ea := range assignments {
		if !pool.has(ea.EmployeeID) {
			continue
		}
		if !active.has(ea.Status) {
			continue
		}
		if !iv.Overlaps(ea.Interval()) {
			continue
		}
		unavailable[ea.EmployeeID] = append(unavailable[ea.EmployeeID], models.BookingConflict(ea))
		remaining.remove(ea.EmployeeID)
	}
	return remaining, nil
}

// idSet is the working representation of a candidate pool.
type idSet map[string]struct{}

func newIDSet(ids []string) idSet {
	s := make(idSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s idSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s idSet) remove(id string) {
	delete(s, id)
}

func (s idSet) clone() idSet {
	out := make(idSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// values returns the members sorted, so identical queries against unchanged
// data produce identical results.
func (s idSet) values() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// minus returns the sorted members of s not present in other.
func (s idSet) minus(other idSet) []string {
	var out []string
	for id := range s {
		if !other.has(id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
