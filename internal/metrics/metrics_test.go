package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/plutus/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	m := metrics.NewMetrics(reg)
	m.StageRuns.WithLabelValues("seed", metrics.StatusSuccess).Inc()
	m.EmployeesProcessed.Set(9)

	assert.InDelta(t, 1, testutil.ToFloat64(m.StageRuns.WithLabelValues("seed", metrics.StatusSuccess)), 0)
	assert.InDelta(t, 9, testutil.ToFloat64(m.EmployeesProcessed), 0)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = metrics.NewMetrics(reg)

	assert.Panics(t, func() { metrics.NewMetrics(reg) })
}

func TestWriteTextfile(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "plutus.prom")

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)
	m.SalaryTotal.Set(50906.82)

	require.NoError(t, metrics.WriteTextfile(path, reg))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "plutus_salary_total 50906.82"))
}

func TestWriteTextfile_Error(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = metrics.NewMetrics(reg)

	err := metrics.WriteTextfile(filepath.Join("does", "not", "exist", "plutus.prom"), reg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics textfile")
}
