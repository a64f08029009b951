package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	trackerTicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txwatch",
		Subsystem: "tracker",
		Name:      "ticks_total",
		Help:      "Count of poll ticks by outcome.",
	}, []string{"status"})
	trackerTickDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txwatch",
		Subsystem: "tracker",
		Name:      "tick_duration_seconds",
		Help:      "Duration of a poll tick.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	trackerNotificationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "txwatch",
		Subsystem: "tracker",
		Name:      "notifications_total",
		Help:      "Count of change notifications raised by the poll loop.",
	})
	trackerStaleResultsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "txwatch",
		Subsystem: "tracker",
		Name:      "stale_results_total",
		Help:      "Count of fetch results discarded because the tracked id changed.",
	})
)

// Tracker tracks metrics for the poll loop.
type Tracker struct{}

// NewTracker constructs a Tracker metrics collector.
func NewTracker() *Tracker {
	return &Tracker{}
}

// ObserveTick records a tick outcome and duration.
func (m Tracker) ObserveTick(err error, started time.Time) {
	status := statusLabel(err)
	trackerTicksTotal.WithLabelValues(status).Inc()
	trackerTickDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveNotification records a raised change notification.
func (m Tracker) ObserveNotification() {
	trackerNotificationsTotal.Inc()
}

// ObserveStale records a discarded fetch result.
func (m Tracker) ObserveStale() {
	trackerStaleResultsTotal.Inc()
}
