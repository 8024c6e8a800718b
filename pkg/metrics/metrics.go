// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// MessagesTotal tracks chat messages recorded per role.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total chat messages recorded",
		},
		[]string{"role"},
	)

	// DispatchFailuresTotal tracks sends absorbed into the apology message.
	DispatchFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_dispatch_failures_total",
			Help: "Total dispatches that fell back to the apology message",
		},
	)

	// AvailabilityAttachedTotal tracks assistant replies carrying an
	// availability payload.
	AvailabilityAttachedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_availability_attached_total",
			Help: "Total assistant replies carrying an availability payload",
		},
	)

	// DirectoryFallbacksTotal tracks doctor directory lookups that fell back
	// to the default roster.
	DirectoryFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "doctor_directory_fallbacks_total",
			Help: "Total directory lookups served from the fallback roster",
		},
	)

	// BookingSelectionsTotal tracks picker selections bridged back into the
	// conversation.
	BookingSelectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_selections_total",
			Help: "Total date/time picker selections sent as booking requests",
		},
	)

	// LLMCompletionDuration tracks LLM completion latency.
	LLMCompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_completion_duration_seconds",
			Help:    "LLM completion duration",
			Buckets: []float64{.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "status"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}
