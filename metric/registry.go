package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry manages the client metric set on a dedicated Prometheus
// registry. All record methods are nil-receiver safe so that callers
// can instrument unconditionally.
type Registry struct {
	prometheusRegistry *prometheus.Registry

	queries       *prometheus.CounterVec
	failures      *prometheus.CounterVec
	duration      prometheus.Histogram
	responseBytes prometheus.Counter
}

// NewRegistry creates a registry with the client metric set registered.
func NewRegistry() *Registry {
	prometheusRegistry := prometheus.NewRegistry()

	r := &Registry{
		prometheusRegistry: prometheusRegistry,
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sparql",
			Name:      "queries_total",
			Help:      "Completed queries by result kind (boolean, bindings, triples)",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sparql",
			Name:      "query_failures_total",
			Help:      "Failed queries by error class (transient, invalid, fatal)",
		}, []string{"class"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sparql",
			Name:      "query_duration_seconds",
			Help:      "End-to-end query duration including response decode",
			Buckets:   prometheus.DefBuckets,
		}),
		responseBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sparql",
			Name:      "response_bytes_total",
			Help:      "Bytes of response bodies read, across all result shapes",
		}),
	}

	prometheusRegistry.MustRegister(r.queries, r.failures, r.duration, r.responseBytes)

	return r
}

// PrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// Handler returns an HTTP handler serving the registry in Prometheus
// exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prometheusRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// RecordQuery records one completed query of the given result kind and
// its end-to-end duration.
func (r *Registry) RecordQuery(kind string, d time.Duration) {
	if r == nil {
		return
	}
	r.queries.WithLabelValues(kind).Inc()
	r.duration.Observe(d.Seconds())
}

// RecordFailure records one failed query by error class.
func (r *Registry) RecordFailure(class string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(class).Inc()
}

// RecordResponseBytes records the size of a buffered response body.
func (r *Registry) RecordResponseBytes(n int) {
	if r == nil {
		return
	}
	r.responseBytes.Add(float64(n))
}
