package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	kvStoreRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txwatch",
		Subsystem: "kv_store",
		Name:      "operations_total",
		Help:      "Count of preference store operations.",
	}, []string{"backend", "operation", "status"})
	kvStoreRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txwatch",
		Subsystem: "kv_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of preference store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "operation", "status"})
)

// KVStore tracks metrics for a key-value store backend.
type KVStore struct {
	backend string
}

// NewKVStore constructs a KVStore collector for the named backend.
func NewKVStore(backend string) *KVStore {
	if backend == "" {
		backend = "unknown"
	}
	return &KVStore{backend: backend}
}

// Observe records a store operation outcome and duration.
func (m KVStore) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	kvStoreRequestsTotal.WithLabelValues(m.backend, operation, status).Inc()
	kvStoreRequestDuration.WithLabelValues(m.backend, operation, status).Observe(time.Since(started).Seconds())
}
