package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks cache hits by store ("memory", "redis")
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gw2_cache_hits_total",
			Help: "Total number of GW2 API cache hits",
		},
		[]string{"store"},
	)

	// CacheMisses tracks cache misses by store
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gw2_cache_misses_total",
			Help: "Total number of GW2 API cache misses",
		},
		[]string{"store"},
	)

	// CacheEvictions tracks LRU evictions from the memory store
	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gw2_cache_evictions_total",
			Help: "Total number of cache entries evicted by the LRU bound",
		},
	)

	// CacheErrors tracks cache operation errors
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gw2_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
