// Package metrics exposes Prometheus counters for period logging and
// cycle predictions.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// periodEntriesCreatedTotal counts stored period entries.
	// Labels:
	//   - flow: light, medium or heavy
	periodEntriesCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cradle_period_entries_created_total",
			Help: "Total number of period entries stored",
		},
		[]string{"flow"},
	)

	// periodEntriesRejectedTotal counts entries refused at the creation boundary.
	// Labels:
	//   - reason: start_required, invalid_date, inconsistent_range, invalid_flow
	periodEntriesRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cradle_period_entries_rejected_total",
			Help: "Total number of period entries rejected by validation",
		},
		[]string{"reason"},
	)

	periodEntriesDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cradle_period_entries_deleted_total",
			Help: "Total number of period entries deleted",
		},
	)

	// cycleComputationsTotal counts cycle data computations.
	// Labels:
	//   - history: "sufficient" when a prediction was made, "insufficient" otherwise
	cycleComputationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cradle_cycle_computations_total",
			Help: "Total number of cycle data computations",
		},
		[]string{"history"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cradle_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	prometheus.MustRegister(periodEntriesCreatedTotal)
	prometheus.MustRegister(periodEntriesRejectedTotal)
	prometheus.MustRegister(periodEntriesDeletedTotal)
	prometheus.MustRegister(cycleComputationsTotal)
	prometheus.MustRegister(httpRequestDuration)
}

func RecordEntryCreated(flow string) {
	periodEntriesCreatedTotal.WithLabelValues(flow).Inc()
}

func RecordEntryRejected(reason string) {
	periodEntriesRejectedTotal.WithLabelValues(reason).Inc()
}

func RecordEntryDeleted() {
	periodEntriesDeletedTotal.Inc()
}

func RecordCycleComputation(hasPrediction bool) {
	history := "insufficient"
	if hasPrediction {
		history = "sufficient"
	}
	cycleComputationsTotal.WithLabelValues(history).Inc()
}

func RecordHTTPRequest(method string, route string, status string, durationSeconds float64) {
	httpRequestDuration.WithLabelValues(method, route, status).Observe(durationSeconds)
}
