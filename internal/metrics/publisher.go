package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var publisherMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "txwatch",
	Subsystem: "publisher",
	Name:      "messages_total",
	Help:      "Count of events published to the message broker.",
}, []string{"kind", "status"})

// Publisher tracks metrics for outbound broker events.
type Publisher struct{}

// NewPublisher constructs a Publisher metrics collector.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// ObservePublish records a publish outcome.
func (m Publisher) ObservePublish(kind string, err error) {
	publisherMessagesTotal.WithLabelValues(kind, statusLabel(err)).Inc()
}
