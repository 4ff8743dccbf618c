package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerWrites        *prometheus.CounterVec
	ledgerWriteDuration prometheus.Histogram
	budgetAlerts        *prometheus.CounterVec
	exportsTotal        prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ledgerWrites: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_writes_total",
				Help: "Total number of ledger mutations",
			},
			[]string{"operation"},
		),
		ledgerWriteDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_write_duration_milliseconds",
				Help:    "Full-collection rewrite duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		budgetAlerts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_alerts_total",
				Help: "Total number of budget threshold events emitted",
			},
			[]string{"tier", "scope"},
		),
		exportsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_exports_total",
				Help: "Total number of CSV exports generated",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordLedgerWrite(operation string, duration time.Duration) {
	m.ledgerWrites.WithLabelValues(operation).Inc()
	m.ledgerWriteDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordBudgetAlert(tier, scope string) {
	m.budgetAlerts.WithLabelValues(tier, scope).Inc()
}

func (m *PrometheusMetrics) RecordExport() {
	m.exportsTotal.Inc()
}
