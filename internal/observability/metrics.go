// Package observability provides Prometheus metrics for storage operations.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "thorsync"

// StorageMetrics holds per-backend storage latency and error metrics.
type StorageMetrics struct {
	OpDuration *prometheus.HistogramVec
	OpErrors   *prometheus.CounterVec
	Records    *prometheus.CounterVec
}

// NewStorageMetrics registers storage metrics on reg. A nil reg uses the
// default registerer.
func NewStorageMetrics(reg prometheus.Registerer) *StorageMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &StorageMetrics{
		OpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "op_duration_seconds",
			Help:      "Backend call duration reported by the storage adapter",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"backend", "kind", "op"}),
		OpErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "op_errors_total",
			Help:      "Storage operations that returned an error",
		}, []string{"backend", "kind", "op"}),
		Records: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "records_total",
			Help:      "Records passed through storage operations",
		}, []string{"backend", "kind", "op"}),
	}
}

// Observe records one storage operation. records is the number of records
// written or returned.
func (m *StorageMetrics) Observe(backend, kind, op string, elapsed time.Duration, records int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.OpErrors.WithLabelValues(backend, kind, op).Inc()
		return
	}
	m.OpDuration.WithLabelValues(backend, kind, op).Observe(elapsed.Seconds())
	m.Records.WithLabelValues(backend, kind, op).Add(float64(records))
}

// Handler returns the HTTP handler for the /metrics endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
