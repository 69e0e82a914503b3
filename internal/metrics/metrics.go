// Package metrics provides the centralized Prometheus metrics registry for
// the evaluation engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	EvaluationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "forecast_lab",
		Name:      "evaluations_total",
		Help:      "Total number of evaluation runs per protocol",
	}, []string{"protocol"})
	InsufficientDataTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "forecast_lab",
		Name:      "insufficient_data_total",
		Help:      "Total number of evaluation runs rejected for lack of resolved records",
	}, []string{"protocol"})
	WindowsEmittedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "forecast_lab",
		Name:      "windows_emitted_total",
		Help:      "Total number of evaluation windows emitted",
	})
	WindowsSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "forecast_lab",
		Name:      "windows_skipped_total",
		Help:      "Total number of windows skipped for falling below the event minimum",
	})
	RecordsIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "forecast_lab",
		Name:      "records_ingested_total",
		Help:      "Total number of prediction records accepted at the ingestion boundary",
	})
	RecordsRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "forecast_lab",
		Name:      "records_rejected_total",
		Help:      "Total number of prediction records rejected at the ingestion boundary",
	})
)

// Histogram metrics
var (
	EvaluationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "forecast_lab",
		Name:      "evaluation_duration_seconds",
		Help:      "Duration of evaluation runs in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"protocol"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(EvaluationsTotal)
		registry.MustRegister(InsufficientDataTotal)
		registry.MustRegister(WindowsEmittedTotal)
		registry.MustRegister(WindowsSkippedTotal)
		registry.MustRegister(RecordsIngestedTotal)
		registry.MustRegister(RecordsRejectedTotal)
		registry.MustRegister(EvaluationDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler for an embedding host. The
// engine itself never opens a listener.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordEvaluation records a completed evaluation run for a protocol.
func RecordEvaluation(protocol string, durationSeconds float64) {
	EvaluationsTotal.WithLabelValues(protocol).Inc()
	EvaluationDuration.WithLabelValues(protocol).Observe(durationSeconds)
}

// RecordInsufficientData records an evaluation rejected for lack of data.
func RecordInsufficientData(protocol string) {
	InsufficientDataTotal.WithLabelValues(protocol).Inc()
}
