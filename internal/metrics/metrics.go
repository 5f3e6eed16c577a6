// Package metrics registers the service's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the gateway.
type Metrics struct {
	SessionsStarted   prometheus.Counter
	SessionsSubmitted prometheus.Counter
	ResultTypes       *prometheus.CounterVec
}

// New creates and registers all metrics on the default registry; call once
// at startup.
func New() *Metrics {
	return &Metrics{
		SessionsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mindtype_sessions_started_total",
			Help: "Total number of test sessions started",
		}),
		SessionsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mindtype_sessions_submitted_total",
			Help: "Total number of test sessions submitted",
		}),
		ResultTypes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mindtype_result_types_total",
			Help: "Submitted results by resolved type code",
		}, []string{"type_code"}),
	}
}
