package middleware

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// middlewareMetrics holds Prometheus metrics for the shipped middleware.
type middlewareMetrics struct {
	panicsRecovered           prometheus.Counter
	rateLimitRejected         prometheus.Counter
	circuitBreakerTransitions *prometheus.CounterVec
}

var (
	middlewareMetricsInstance *middlewareMetrics
	middlewareMetricsOnce     sync.Once
)

// getMiddlewareMetrics returns the singleton middleware metrics instance.
func getMiddlewareMetrics() *middlewareMetrics {
	middlewareMetricsOnce.Do(func() {
		middlewareMetricsInstance = &middlewareMetrics{
			panicsRecovered: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "avarouter",
					Subsystem: "middleware",
					Name:      "panics_recovered_total",
					Help:      "Total number of panics recovered",
				},
			),
			rateLimitRejected: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "avarouter",
					Subsystem: "middleware",
					Name:      "rate_limit_rejected_total",
					Help:      "Total number of requests rejected by the rate limiter",
				},
			),
			circuitBreakerTransitions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "avarouter",
					Subsystem: "middleware",
					Name:      "circuit_breaker_transitions_total",
					Help:      "Total number of circuit breaker state transitions",
				},
				[]string{"name", "from", "to"},
			),
		}
	})
	return middlewareMetricsInstance
}
