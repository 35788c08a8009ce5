package models

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the dd/MM/yyyy layout used for birth dates.
const DateLayout = "02/01/2006"

// SalaryScale is the number of decimal places a salary is kept at.
const SalaryScale = 2

// ErrInvalidEmployee is returned when an employee record fails validation.
var ErrInvalidEmployee = errors.New("invalid employee")

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Employee represents an employee entity. Name, birth date and role are fixed
// at construction; only the salary may change afterwards.
type Employee struct {
	name      string
	birthDate time.Time
	salary    decimal.Decimal
	role      string
}

// NewEmployee parses and validates a raw employee row. The birth date must use
// the dd/MM/yyyy layout and the salary a plain decimal literal such as "2009.44".
func NewEmployee(name, birthDate, salary, role string) (*Employee, error) {
	v := getValidator()
	if err := v.Var(name, "required"); err != nil {
		return nil, fmt.Errorf("%w: name: %s", ErrInvalidEmployee, err.Error())
	}
	if err := v.Var(role, "required"); err != nil {
		return nil, fmt.Errorf("%w: role of %q: %s", ErrInvalidEmployee, name, err.Error())
	}

	birth, err := time.Parse(DateLayout, birthDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse birth date of %q: %w", name, err)
	}

	amount, err := decimal.NewFromString(salary)
	if err != nil {
		return nil, fmt.Errorf("failed to parse salary of %q: %w", name, err)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: salary of %q is negative", ErrInvalidEmployee, name)
	}

	return &Employee{name: name, birthDate: birth, salary: amount, role: role}, nil
}

func (e *Employee) Name() string { return e.name }

func (e *Employee) BirthDate() time.Time { return e.birthDate }

func (e *Employee) Salary() decimal.Decimal { return e.salary }

func (e *Employee) Role() string { return e.role }

// SetSalary replaces the salary. Callers are expected to have rounded the
// amount to SalaryScale already.
func (e *Employee) SetSalary(salary decimal.Decimal) {
	e.salary = salary
}
