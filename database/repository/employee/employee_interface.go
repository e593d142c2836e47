package employeeRepo

import "crewdesk/models"

// EmployeeRepository defines read access to employees and role expansion.
type EmployeeRepository interface {
	// GetByID retrieves an employee by its unique ID.
	GetByID(id string) (*models.Employee, error)
	// ExpandRoles maps role IDs to the IDs of active employees holding any
	// of those roles. An empty roleIDs slice expands the configured default
	// availability roles, not all employees.
	ExpandRoles(roleIDs []string) ([]string, error)
}
