package repository

import (
	"fmt"

	"github.com/UnknownOlympus/plutus/internal/models"
)

// SeedRow is a raw, unparsed employee row.
type SeedRow struct {
	Name      string
	BirthDate string
	Salary    string
	Role      string
}

// DefaultSeed is the fixed employee table the report runs over.
var DefaultSeed = []SeedRow{
	{"Maria", "18/10/2000", "2009.44", "Operador"},
	{"João", "12/05/1990", "2284.38", "Operador"},
	{"Caio", "02/05/1961", "9836.14", "Coordenador"},
	{"Miguel", "14/10/1988", "19119.88", "Diretor"},
	{"Alice", "05/01/1995", "2234.68", "Recepcionista"},
	{"Heitor", "19/11/1999", "1582.72", "Operador"},
	{"Arthur", "31/03/1993", "4071.84", "Contador"},
	{"Laura", "08/07/1994", "3017.45", "Gerente"},
	{"Heloísa", "24/05/2003", "1606.85", "Eletricista"},
	{"Helena", "02/09/1996", "2799.93", "Gerente"},
}

// LoadSeed parses every row into a new roster. Any malformed row aborts the
// whole load; seed rows are static data, so a failure is a programming error.
func LoadSeed(rows []SeedRow) (*Roster, error) {
	employees := make([]*models.Employee, 0, len(rows))

	for i, row := range rows {
		employee, err := models.NewEmployee(row.Name, row.BirthDate, row.Salary, row.Role)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed row %d: %w", i+1, err)
		}
		employees = append(employees, employee)
	}

	return NewRoster(employees...), nil
}
