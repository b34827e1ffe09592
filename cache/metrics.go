// Package cache provides a bounded, concurrency-safe LRU cache.
package cache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// cacheMetrics holds Prometheus metrics for cache operations. The
// counters aggregate over all cache instances in the process.
type cacheMetrics struct {
	hitsTotal      prometheus.Counter
	missesTotal    prometheus.Counter
	evictionsTotal prometheus.Counter
	sizeGauge      prometheus.Gauge
}

var (
	cacheMetricsInstance *cacheMetrics
	cacheMetricsOnce     sync.Once
)

// getCacheMetrics returns the singleton cache metrics instance.
func getCacheMetrics() *cacheMetrics {
	cacheMetricsOnce.Do(func() {
		cacheMetricsInstance = &cacheMetrics{
			hitsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "avarouter",
					Subsystem: "cache",
					Name:      "hits_total",
					Help:      "Total number of cache hits",
				},
			),
			missesTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "avarouter",
					Subsystem: "cache",
					Name:      "misses_total",
					Help:      "Total number of cache misses",
				},
			),
			evictionsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "avarouter",
					Subsystem: "cache",
					Name:      "evictions_total",
					Help:      "Total number of cache evictions",
				},
			),
			sizeGauge: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "avarouter",
					Subsystem: "cache",
					Name:      "size",
					Help:      "Current number of entries in the cache",
				},
			),
		}
	})
	return cacheMetricsInstance
}
