package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors are registered once at package init so repeated Service
// construction (e.g. in tests) stays safe.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests processed.",
	}, []string{"method", "path"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	inflightRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_inflight_requests",
		Help: "Number of HTTP requests currently being served.",
	})
)

// Metrics holds the HTTP server metrics.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	InflightRequests prometheus.Gauge
}

// New returns the process-wide HTTP metrics.
func New() *Metrics {
	return &Metrics{
		RequestsTotal:    requestsTotal,
		RequestDuration:  requestDuration,
		InflightRequests: inflightRequests,
	}
}
