// Package metrics exposes Prometheus instruments for webhook deliveries and
// formatting runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Delivery results.
const (
	ResultAccepted = "accepted"
	ResultIgnored  = "ignored"
	ResultRejected = "rejected"
	ResultBusy     = "busy"
)

// OutcomeError labels runs that ended with an error instead of an outcome.
const OutcomeError = "error"

var (
	deliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clang_format_bot_webhook_deliveries_total",
			Help: "Webhook deliveries received, by event type and result",
		},
		[]string{"event", "result"},
	)

	runs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clang_format_bot_pipeline_runs_total",
			Help: "Formatting pipeline runs, by outcome",
		},
		[]string{"outcome"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clang_format_bot_pipeline_duration_seconds",
			Help:    "Wall time of formatting pipeline runs, by outcome",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"outcome"},
	)
)

// ObserveDelivery counts one webhook delivery.
func ObserveDelivery(event, result string) {
	deliveries.WithLabelValues(event, result).Inc()
}

// ObserveRun records a finished pipeline run.
func ObserveRun(outcome string, elapsed time.Duration) {
	runs.WithLabelValues(outcome).Inc()
	runDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
