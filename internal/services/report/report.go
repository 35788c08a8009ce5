// Package report runs the employee payroll report: a fixed chain of named
// stages over the shared roster, each one writing its section to the output.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/plutus/internal/lib/logger/sl"
	"github.com/UnknownOlympus/plutus/internal/metrics"
	"github.com/UnknownOlympus/plutus/internal/repository"
	"github.com/shopspring/decimal"
)

// Clock tells the report what "today" is. clockz.RealClock satisfies it.
type Clock interface {
	Now() time.Time
}

// Options are the tunable parameters of the stages.
type Options struct {
	ExcludedName   string
	RaiseFactor    decimal.Decimal
	MinimumWage    decimal.Decimal
	BirthdayMonths []time.Month
}

// DefaultOptions returns the parameters of the standard report.
func DefaultOptions() Options {
	return Options{
		ExcludedName:   "João",
		RaiseFactor:    decimal.RequireFromString("1.10"),
		MinimumWage:    decimal.RequireFromString("1212.00"),
		BirthdayMonths: []time.Month{time.October, time.December},
	}
}

// StageFunc executes one report stage against the roster.
type StageFunc func(ctx context.Context, w io.Writer, roster repository.EmployeeRepoIface) error

// Stage is a named step of the report.
type Stage struct {
	Name string
	Run  StageFunc
}

type Report struct {
	log     *slog.Logger
	metrics *metrics.Metrics
	clock   Clock
	opts    Options
}

func New(log *slog.Logger, mtr *metrics.Metrics, clock Clock, opts Options) *Report {
	return &Report{log: log, metrics: mtr, clock: clock, opts: opts}
}

func (r *Report) initLogger(opn string) *slog.Logger {
	return r.log.With(
		slog.String("op", opn),
		slog.String("division", "report"),
	)
}

// Stages returns the report stages in execution order.
func (r *Report) Stages() []Stage {
	return []Stage{
		{Name: "seed-filter", Run: r.seedFilter},
		{Name: "bulk-raise", Run: r.bulkRaise},
		{Name: "group-by-role", Run: r.groupByRole},
		{Name: "birthdays", Run: r.birthdays},
		{Name: "oldest", Run: r.oldest},
		{Name: "alphabetical", Run: r.alphabetical},
		{Name: "total-salaries", Run: r.totalSalaries},
		{Name: "minimum-wages", Run: r.minimumWages},
	}
}

// Run executes every stage in order, writing the report to w. The first
// failing stage stops the run.
func (r *Report) Run(ctx context.Context, w io.Writer, roster repository.EmployeeRepoIface) error {
	const opn = "Report.Run"
	log := r.initLogger(opn)

	startTime := time.Now()
	defer func() {
		r.metrics.RunDuration.Observe(time.Since(startTime).Seconds())
	}()

	for _, stage := range r.Stages() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("report interrupted before stage %q: %w", stage.Name, err)
		}

		log.DebugContext(ctx, "Running stage", sl.Stage(stage.Name))
		if err := stage.Run(ctx, w, roster); err != nil {
			r.metrics.StageRuns.WithLabelValues(stage.Name, metrics.StatusFailure).Inc()
			log.ErrorContext(ctx, "Stage failed", sl.Stage(stage.Name), sl.Err(err))
			return fmt.Errorf("stage %q failed: %w", stage.Name, err)
		}
		r.metrics.StageRuns.WithLabelValues(stage.Name, metrics.StatusSuccess).Inc()
	}

	r.metrics.LastSuccessfulRun.Set(float64(r.clock.Now().Unix()))
	log.InfoContext(ctx, "Report finished", "employees", roster.Len())

	return nil
}
