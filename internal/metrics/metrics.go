// Package metrics holds the process-wide prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// FetchesTotal counts upstream fetch attempts by source and outcome.
	FetchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity",
		Name:      "fetches_total",
		Help:      "Number of upstream fetches by source and status",
	}, []string{"source", "status"})

	// CacheHitsTotal counts reads served from the result cache.
	CacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity",
		Name:      "cache_hits_total",
		Help:      "Number of cache hits by source",
	}, []string{"source"})

	// CacheMissesTotal counts reads that fell through to the upstream.
	CacheMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity",
		Name:      "cache_misses_total",
		Help:      "Number of cache misses by source",
	}, []string{"source"})
)

func init() {
	prometheus.MustRegister(FetchesTotal, CacheHitsTotal, CacheMissesTotal)
}
