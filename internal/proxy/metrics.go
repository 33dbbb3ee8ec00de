package proxy

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels recorded for each upstream call.
const (
	OutcomeSuccess   = "success"
	OutcomeStatus    = "upstream_status"
	OutcomeTransport = "transport_error"
	OutcomeMapping   = "mapping_error"
)

// Metrics holds the upstream call collectors.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the upstream collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of calls made to third-party APIs, by outcome.",
			},
			[]string{"upstream", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Latency of calls made to third-party APIs.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"upstream"},
		),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(upstream, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(upstream, outcome).Inc()
	m.duration.WithLabelValues(upstream).Observe(elapsed.Seconds())
}
