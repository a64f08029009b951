package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txwatch",
		Subsystem: "api_client",
		Name:      "operations_total",
		Help:      "Count of blockchain data API operations.",
	}, []string{"source", "operation", "status"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txwatch",
		Subsystem: "api_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of blockchain data API operations, including limiter waits.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2, 2.5, 5, 7.5, 10, 15, 30},
	}, []string{"source", "operation", "status"})
	apiRateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txwatch",
		Subsystem: "api_client",
		Name:      "rate_limited_total",
		Help:      "Count of HTTP 429 responses from the data API.",
	}, []string{"source", "operation"})
)

// APIClient tracks metrics for the remote blockchain data API.
type APIClient struct {
	source string
}

// NewAPIClient constructs an APIClient for the named source.
func NewAPIClient(source string) *APIClient {
	if source == "" {
		source = "unknown"
	}
	return &APIClient{source: source}
}

// Observe records an API operation outcome and duration.
func (m APIClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	apiRequestsTotal.WithLabelValues(m.source, operation, status).Inc()
	apiRequestDuration.WithLabelValues(m.source, operation, status).Observe(time.Since(started).Seconds())
}

// ObserveRateLimited records an HTTP 429 response.
func (m APIClient) ObserveRateLimited(operation string) {
	apiRateLimitedTotal.WithLabelValues(m.source, operation).Inc()
}
