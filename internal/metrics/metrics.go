package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes of a single itinerary generation.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeCallError    = "call_error"
	OutcomeParseError   = "parse_error"
	OutcomeShapeError   = "shape_error"
)

var (
	itineraryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_requests_total",
			Help: "Total number of itinerary generation requests by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	modelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itinerary_model_call_duration_seconds",
			Help:    "Latency of the text generation call.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		},
		[]string{"provider"},
	)
)

func ObserveOutcome(provider, outcome string) {
	itineraryRequestsTotal.WithLabelValues(provider, outcome).Inc()
}

func ObserveModelCall(provider string, d time.Duration) {
	modelCallDuration.WithLabelValues(provider).Observe(d.Seconds())
}
