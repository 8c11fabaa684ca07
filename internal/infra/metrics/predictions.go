package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		submissionsTotal,
		pollAttemptsTotal,
		pollTransientErrors,
		predictionDuration,
	)
}

var (
	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alphafold_submissions_total",
			Help: "Prediction job submissions per outcome (accepted/rejected/transport_error).",
		},
		[]string{"outcome"},
	)

	pollAttemptsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alphafold_poll_attempts_total",
			Help: "Status queries issued by the poll loop.",
		},
	)

	pollTransientErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alphafold_poll_transient_errors_total",
			Help: "Poll attempts swallowed as transient (transport faults, non-2xx status queries).",
		},
	)

	predictionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alphafold_prediction_duration_seconds",
			Help:    "End-to-end prediction call duration per mode and result status.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 900},
		},
		[]string{"mode", "status"},
	)
)

func IncSubmission(outcome string) {
	submissionsTotal.WithLabelValues(outcome).Inc()
}

func IncPollAttempt() {
	pollAttemptsTotal.Inc()
}

func IncPollTransientError() {
	pollTransientErrors.Inc()
}

func ObservePrediction(mode, status string, seconds float64) {
	predictionDuration.WithLabelValues(mode, status).Observe(seconds)
}
