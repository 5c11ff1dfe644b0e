package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion metrics, labeled by output mode and failure kind.
var (
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urpx_conversions_total",
			Help: "Total number of completed conversions",
		},
		[]string{"mode"},
	)

	conversionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urpx_conversion_failures_total",
			Help: "Total number of failed conversions",
		},
		[]string{"mode", "kind"},
	)

	conversionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "urpx_conversion_duration_seconds",
			Help:    "Wall time of individual conversions",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	batchesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "urpx_batches_in_flight",
			Help: "Number of batches currently being processed",
		},
	)
)

// ConversionDone records a successful conversion and its duration.
func ConversionDone(mode string, seconds float64) {
	conversionsTotal.WithLabelValues(mode).Inc()
	conversionDuration.WithLabelValues(mode).Observe(seconds)
}

// ConversionFailed records a failed conversion by failure kind.
func ConversionFailed(mode, kind string) {
	conversionFailuresTotal.WithLabelValues(mode, kind).Inc()
}

// BatchStarted marks a batch as in flight.
func BatchStarted() {
	batchesInFlight.Inc()
}

// BatchFinished marks a batch as done.
func BatchFinished() {
	batchesInFlight.Dec()
}
