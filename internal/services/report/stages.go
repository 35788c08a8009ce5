package report

import (
	"context"
	"fmt"
	"io"

	"github.com/UnknownOlympus/plutus/internal/lib/brformat"
	"github.com/UnknownOlympus/plutus/internal/models"
	"github.com/UnknownOlympus/plutus/internal/repository"
	"github.com/shopspring/decimal"
)

// printer remembers the first write error so stages can print freely and
// check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(line string) {
	p.printf("%s\n", line)
}

func (p *printer) employee(e *models.Employee) {
	p.printf("Nome: %s | Nasc: %s | Salário: %s | Função: %s\n",
		e.Name(), brformat.Date(e.BirthDate()), brformat.Money(e.Salary()), e.Role())
}

func (p *printer) employees(list []*models.Employee) {
	for _, e := range list {
		p.employee(e)
	}
}

func (r *Report) seedFilter(ctx context.Context, w io.Writer, roster repository.EmployeeRepoIface) error {
	kept, removed := RemoveByName(roster.All(), r.opts.ExcludedName)
	roster.Replace(kept)
	r.metrics.EmployeesProcessed.Set(float64(len(kept)))
	r.initLogger("Report.seedFilter").DebugContext(ctx, "Employees removed", "name", r.opts.ExcludedName, "value", removed)

	p := &printer{w: w}
	p.printf("---- Lista inicial (após remoção de %s) ----\n", r.opts.ExcludedName)
	p.employees(kept)

	return p.err
}

func (r *Report) bulkRaise(_ context.Context, w io.Writer, roster repository.EmployeeRepoIface) error {
	employees := roster.All()
	ApplyRaise(employees, r.opts.RaiseFactor)

	p := &printer{w: w}
	percent := r.opts.RaiseFactor.Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100))
	p.printf("\n---- Após aumento de %s%% ----\n", percent.String())
	p.employees(employees)

	return p.err
}

func (r *Report) groupByRole(_ context.Context, w io.Writer, roster repository.EmployeeRepoIface) error {
	p := &printer{w: w}
	p.println("\n---- Agrupados por função ----")
	for _, group := range GroupByRole(roster.All()) {
		p.println("Função: " + group.Role)
		p.employees(group.Employees)
		p.println("")
	}

	return p.err
}

func (r *Report) birthdays(_ context.Context, w io.Writer, roster repository.EmployeeRepoIface) error {
	p := &printer{w: w}
	p.println("---- Aniversariantes (meses 10 e 12) ----")
	p.employees(FilterBirthMonths(roster.All(), r.opts.BirthdayMonths...))

	return p.err
}

func (r *Report) oldest(_ context.Context, w io.Writer, roster repository.EmployeeRepoIface) error {
	oldest, ok := Oldest(roster.All())
	if !ok {
		return nil
	}

	p := &printer{w: w}
	p.println("\n---- Funcionário mais velho ----")
	p.printf("Nome: %s | Idade: %d anos\n", oldest.Name(), AgeAt(oldest.BirthDate(), r.clock.Now()))

	return p.err
}

func (r *Report) alphabetical(_ context.Context, w io.Writer, roster repository.EmployeeRepoIface) error {
	p := &printer{w: w}
	p.println("\n---- Ordem alfabética ----")
	p.employees(SortByName(roster.All()))

	return p.err
}

func (r *Report) totalSalaries(_ context.Context, w io.Writer, roster repository.EmployeeRepoIface) error {
	total := TotalSalaries(roster.All())
	r.metrics.SalaryTotal.Set(total.InexactFloat64())

	p := &printer{w: w}
	p.println("\n---- Total dos salários ----")
	p.println("Total: " + brformat.Money(total))

	return p.err
}

func (r *Report) minimumWages(_ context.Context, w io.Writer, roster repository.EmployeeRepoIface) error {
	employees := roster.All()
	lines := make([]string, 0, len(employees))

	for _, e := range employees {
		multiple, err := MinimumWageMultiple(e.Salary(), r.opts.MinimumWage)
		if err != nil {
			return fmt.Errorf("failed to compute minimum wages of %q: %w", e.Name(), err)
		}
		lines = append(lines, fmt.Sprintf("%s => %s salários mínimos", e.Name(), brformat.Money(multiple)))
	}

	p := &printer{w: w}
	p.println("\n---- Quantos salários mínimos cada funcionário ganha ----")
	for _, line := range lines {
		p.println(line)
	}

	return p.err
}
