// Package metrics provides Prometheus instrumentation for idgen.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "idgen_http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "idgen_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Generation metrics.
var (
	IDsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "idgen_ids_generated_total",
		Help: "Total number of identifiers generated, by kind.",
	}, []string{"kind"})

	BatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "idgen_batch_size",
		Help:    "Number of identifiers requested per call, by kind.",
		Buckets: prometheus.ExponentialBuckets(1, 10, 7), // 1 .. 1e6
	}, []string{"kind"})
)

// RecordGenerated counts n identifiers of the given kind produced by one call.
func RecordGenerated(kind string, n int) {
	IDsGeneratedTotal.WithLabelValues(kind).Add(float64(n))
	BatchSize.WithLabelValues(kind).Observe(float64(n))
}
