// Package metrics expone los indicadores Prometheus del reporte de ventas.
//
// Se registran en un prometheus.Registerer explícito (no en el global) para que
// cada proceso y cada test controle su propio registro.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados posibles de una consulta de reporte.
const (
	OutcomeFound   = "found"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Resultados de la caché de reportes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// ReportMetrics contadores e histograma del reporte. Un *ReportMetrics nil es válido y no registra nada.
type ReportMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	cache    *prometheus.CounterVec
}

// NewReportMetrics crea y registra los indicadores en reg.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	f := promauto.With(reg)
	return &ReportMetrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookstore",
			Name:      "sales_report_total",
			Help:      "Consultas del reporte de ventas por resultado.",
		}, []string{"outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bookstore",
			Name:      "sales_report_duration_seconds",
			Help:      "Duración de la consulta del reporte de ventas.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"predicate"}),
		cache: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookstore",
			Name:      "sales_report_cache_total",
			Help:      "Accesos a la caché de reportes por resultado.",
		}, []string{"result"}),
	}
}

// ObserveOutcome cuenta el resultado de una consulta.
func (m *ReportMetrics) ObserveOutcome(outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
}

// ObserveDuration registra la duración por tipo de predicado (id|name).
func (m *ReportMetrics) ObserveDuration(predicate string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(predicate).Observe(d.Seconds())
}

// ObserveCache cuenta un acceso a la caché.
func (m *ReportMetrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cache.WithLabelValues(result).Inc()
}
