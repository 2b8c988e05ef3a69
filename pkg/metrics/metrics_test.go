package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bookstore-ledger/pkg/metrics"
)

func TestReportMetrics_CuentaResultados(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewReportMetrics(reg)

	m.ObserveOutcome(metrics.OutcomeFound)
	m.ObserveOutcome(metrics.OutcomeFound)
	m.ObserveOutcome(metrics.OutcomeEmpty)
	m.ObserveCache(metrics.CacheHit)
	m.ObserveDuration("id", 20*time.Millisecond)

	n, err := testutil.GatherAndCount(reg, "bookstore_sales_report_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por outcome observado")

	n, err = testutil.GatherAndCount(reg, "bookstore_sales_report_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = testutil.GatherAndCount(reg, "bookstore_sales_report_cache_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReportMetrics_NilEsSeguro(t *testing.T) {
	var m *metrics.ReportMetrics
	assert.NotPanics(t, func() {
		m.ObserveOutcome(metrics.OutcomeError)
		m.ObserveDuration("name", time.Second)
		m.ObserveCache(metrics.CacheMiss)
	})
}
