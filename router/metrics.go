package router

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch result label values.
const (
	resultFound            = "found"
	resultNotFound         = "not_found"
	resultMethodNotAllowed = "method_not_allowed"
)

// routerMetrics contains Prometheus metrics for request dispatch.
type routerMetrics struct {
	dispatchTotal *prometheus.CounterVec
}

var (
	routerMetricsInstance *routerMetrics
	routerMetricsOnce     sync.Once
)

// getRouterMetrics returns the singleton router metrics instance.
func getRouterMetrics() *routerMetrics {
	routerMetricsOnce.Do(func() {
		routerMetricsInstance = &routerMetrics{
			dispatchTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "avarouter",
					Subsystem: "router",
					Name:      "dispatch_total",
					Help:      "Total number of dispatched requests by result",
				},
				[]string{"result"},
			),
		}
	})
	return routerMetricsInstance
}
