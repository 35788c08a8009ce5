package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics holds the metrics collected during a report run.
// It includes a per-stage run counter, a histogram for the run duration,
// and gauges for the processed roster size, the salary total and the
// last successful run.
type Metrics struct {
	StageRuns          *prometheus.CounterVec
	RunDuration        prometheus.Histogram
	EmployeesProcessed prometheus.Gauge
	SalaryTotal        prometheus.Gauge
	LastSuccessfulRun  prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		StageRuns: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "plutus_stage_runs_total",
			Help: "Total number of report stages executed, by stage and outcome.",
		}, []string{"stage", "status"}),
		RunDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "plutus_run_duration_seconds",
			Help:    "Measures how long a full report run takes.",
			Buckets: prometheus.DefBuckets,
		}),
		EmployeesProcessed: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "plutus_employees_processed",
			Help: "Number of employees left in the roster after filtering.",
		}),
		SalaryTotal: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "plutus_salary_total",
			Help: "Sum of all salaries after the raise, as reported.",
		}),
		LastSuccessfulRun: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "plutus_last_successful_run_timestamp",
			Help: "Last time when the report ran successfully.",
		}),
	}
}

// WriteTextfile writes every metric gathered by g to path in the text
// exposition format, so a node exporter textfile collector can pick it up.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	return nil
}
