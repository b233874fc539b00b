package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ReconciliationMetrics covers the unpaid-influencer reconciliation jobs.
type ReconciliationMetrics struct {
	RunsTotal                   prometheus.CounterVec
	RunDuration                 prometheus.HistogramVec
	UnpaidSelectedTotal         prometheus.Counter
	NotificationsInsertedTotal  prometheus.Counter
	NotificationsSkippedTotal   prometheus.Counter
	NotificationInsertErrsTotal prometheus.Counter
	FinanceEmailsSentTotal      prometheus.Counter
	FinanceRecipientsLast       prometheus.Gauge
}

func NewReconciliationMetrics() *ReconciliationMetrics {
	return &ReconciliationMetrics{
		RunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_runs_total",
				Help: "Reconciliation job runs by job name and outcome",
			},
			[]string{"job", "status"},
		),

		RunDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reconciliation_run_duration_seconds",
				Help:    "Duration of reconciliation job runs",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"job"},
		),

		UnpaidSelectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reconciliation_unpaid_selected_total",
				Help: "Assignments selected as unpaid inside the window",
			},
		),

		NotificationsInsertedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reconciliation_notifications_inserted_total",
				Help: "Unpaid notifications persisted",
			},
		),

		NotificationsSkippedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reconciliation_notifications_skipped_total",
				Help: "Unpaid notifications skipped as already recorded",
			},
		),

		NotificationInsertErrsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reconciliation_notification_insert_errors_total",
				Help: "Per-row persistence failures during notification inserts",
			},
		),

		FinanceEmailsSentTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reconciliation_finance_emails_sent_total",
				Help: "Digest emails dispatched to finance",
			},
		),

		FinanceRecipientsLast: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "reconciliation_finance_recipients",
				Help: "Recipients resolved on the last digest send",
			},
		),
	}
}

func (m *ReconciliationMetrics) RecordRun(job, status string, durationSeconds float64) {
	m.RunsTotal.WithLabelValues(job, status).Inc()
	m.RunDuration.WithLabelValues(job).Observe(durationSeconds)
}

func (m *ReconciliationMetrics) AddUnpaidSelected(n int) {
	m.UnpaidSelectedTotal.Add(float64(n))
}

func (m *ReconciliationMetrics) AddNotificationsInserted(n int) {
	m.NotificationsInsertedTotal.Add(float64(n))
}

func (m *ReconciliationMetrics) AddNotificationsSkipped(n int) {
	m.NotificationsSkippedTotal.Add(float64(n))
}

func (m *ReconciliationMetrics) AddNotificationInsertErrors(n int) {
	m.NotificationInsertErrsTotal.Add(float64(n))
}

func (m *ReconciliationMetrics) RecordFinanceEmailSent(recipients int) {
	m.FinanceEmailsSentTotal.Inc()
	m.FinanceRecipientsLast.Set(float64(recipients))
}
