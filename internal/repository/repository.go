package repository

import (
	"github.com/UnknownOlympus/plutus/internal/models"
)

// EmployeeRepoIface represents the interface for interacting with the employee roster.
type EmployeeRepoIface interface {
	All() []*models.Employee
	Replace(employees []*models.Employee)
	Len() int
}

// Roster is the in-memory employee collection shared by every report stage.
// It keeps insertion order.
type Roster struct {
	employees []*models.Employee
}

func NewRoster(employees ...*models.Employee) *Roster {
	return &Roster{employees: employees}
}

// All returns the employees in roster order. The slice is a copy; the
// records are shared, so salary updates through them are visible to the roster.
func (r *Roster) All() []*models.Employee {
	out := make([]*models.Employee, len(r.employees))
	copy(out, r.employees)

	return out
}

// Replace swaps the roster contents, e.g. after a filter.
func (r *Roster) Replace(employees []*models.Employee) {
	r.employees = append(r.employees[:0:0], employees...)
}

func (r *Roster) Len() int {
	return len(r.employees)
}
