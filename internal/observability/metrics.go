package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	relayRequestsTotal    *prometheus.CounterVec
	relayLatencySeconds   *prometheus.HistogramVec
	feedbackFallbackTotal prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the relay.
func RegisterMetrics() {
	registerOnce.Do(func() {
		relayRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "interview_relay_requests_total",
			Help: "Total number of relay requests served.",
		}, []string{"method", "route", "status"})

		relayLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "interview_relay_latency_seconds",
			Help:    "Latency distribution for relay requests, upstream time included.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "route"})

		feedbackFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "interview_feedback_fallbacks_total",
			Help: "Number of evaluations answered with the fallback feedback.",
		})

		prometheus.MustRegister(relayRequestsTotal, relayLatencySeconds, feedbackFallbackTotal)
	})
}

// RelayRequests exposes the counter for relay requests.
func RelayRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return relayRequestsTotal
}

// RelayLatency exposes the latency histogram for relay requests.
func RelayLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return relayLatencySeconds
}

// FeedbackFallbacks counts evaluations that fell back to the fixed feedback.
func FeedbackFallbacks() prometheus.Counter {
	RegisterMetrics()
	return feedbackFallbackTotal
}
