package report

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/UnknownOlympus/plutus/internal/models"
	"github.com/shopspring/decimal"
)

// ErrInvalidWage is returned when the minimum wage is zero or negative.
var ErrInvalidWage = errors.New("minimum wage must be positive")

// RoleGroup is one bucket of GroupByRole.
type RoleGroup struct {
	Role      string
	Employees []*models.Employee
}

// RemoveByName returns the employees whose name does not match name, ignoring
// case, together with the number of employees dropped.
func RemoveByName(employees []*models.Employee, name string) ([]*models.Employee, int) {
	kept := make([]*models.Employee, 0, len(employees))

	for _, employee := range employees {
		if strings.EqualFold(employee.Name(), name) {
			continue
		}
		kept = append(kept, employee)
	}

	return kept, len(employees) - len(kept)
}

// ApplyRaise multiplies every salary by factor and stores the result rounded
// half-even to two places.
func ApplyRaise(employees []*models.Employee, factor decimal.Decimal) {
	for _, employee := range employees {
		employee.SetSalary(employee.Salary().Mul(factor).RoundBank(models.SalaryScale))
	}
}

// GroupByRole partitions employees by their exact role. Groups come out in
// the order each role is first seen and keep the source order of their members.
func GroupByRole(employees []*models.Employee) []RoleGroup {
	var groups []RoleGroup
	index := make(map[string]int)

	for _, employee := range employees {
		pos, ok := index[employee.Role()]
		if !ok {
			pos = len(groups)
			index[employee.Role()] = pos
			groups = append(groups, RoleGroup{Role: employee.Role()})
		}
		groups[pos].Employees = append(groups[pos].Employees, employee)
	}

	return groups
}

// FilterBirthMonths returns, in source order, the employees born in any of months.
func FilterBirthMonths(employees []*models.Employee, months ...time.Month) []*models.Employee {
	var matched []*models.Employee

	for _, employee := range employees {
		if slices.Contains(months, employee.BirthDate().Month()) {
			matched = append(matched, employee)
		}
	}

	return matched
}

// Oldest returns the employee with the earliest birth date. The first one wins
// a tie. ok is false for an empty list.
func Oldest(employees []*models.Employee) (*models.Employee, bool) {
	if len(employees) == 0 {
		return nil, false
	}

	oldest := employees[0]
	for _, employee := range employees[1:] {
		if employee.BirthDate().Before(oldest.BirthDate()) {
			oldest = employee
		}
	}

	return oldest, true
}

// AgeAt returns the number of completed years between birth and now.
func AgeAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}

	return years
}

// SortByName returns a copy of employees sorted by name, ignoring case. The
// sort is stable.
func SortByName(employees []*models.Employee) []*models.Employee {
	sorted := slices.Clone(employees)
	slices.SortStableFunc(sorted, func(a, b *models.Employee) int {
		return compareFold(a.Name(), b.Name())
	})

	return sorted
}

// compareFold compares two strings rune by rune, treating runes as equal when
// their upper or lower case forms match.
func compareFold(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	for i := range min(len(ra), len(rb)) {
		c1, c2 := ra[i], rb[i]
		if c1 == c2 {
			continue
		}
		c1, c2 = unicode.ToUpper(c1), unicode.ToUpper(c2)
		if c1 == c2 {
			continue
		}
		c1, c2 = unicode.ToLower(c1), unicode.ToLower(c2)
		if c1 != c2 {
			return int(c1) - int(c2)
		}
	}

	return len(ra) - len(rb)
}

// TotalSalaries sums every salary exactly.
func TotalSalaries(employees []*models.Employee) decimal.Decimal {
	total := decimal.Zero
	for _, employee := range employees {
		total = total.Add(employee.Salary())
	}

	return total
}

// MinimumWageMultiple divides salary by wage, rounding half-up to two places.
func MinimumWageMultiple(salary, wage decimal.Decimal) (decimal.Decimal, error) {
	if !wage.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidWage, wage.String())
	}

	return salary.DivRound(wage, models.SalaryScale), nil
}
