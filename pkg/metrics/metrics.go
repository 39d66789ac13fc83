// Package metrics provides the central Prometheus registry reference
// for the GW2 API client. The collectors themselves live in the
// packages that observe them (cache, transport) and register through
// promauto; this package documents the metric surface in one place.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the Prometheus registerer used by the client. All
// collectors are registered against it automatically via promauto.
var Registry = prometheus.DefaultRegisterer

// Metric surface
//
// Cache (pkg/cache):
//   - gw2_cache_hits_total{store} (Counter): Cache hits by store (memory, redis)
//   - gw2_cache_misses_total{store} (Counter): Cache misses by store
//   - gw2_cache_evictions_total (Counter): Entries evicted by the memory store's LRU bound
//   - gw2_cache_errors_total{operation} (Counter): Cache operation errors (get, set, delete)
//
// Requests (pkg/transport):
//   - gw2_requests_total{endpoint, status} (Counter): Requests by endpoint and HTTP status
//   - gw2_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//
// Retries (pkg/transport):
//   - gw2_retries_total{error_class} (Counter): Retry attempts by error class
//   - gw2_retry_exhausted_total{error_class} (Counter): Requests that exhausted max retries
//
// Example Prometheus queries:
//
//	# Cache hit rate
//	sum(rate(gw2_cache_hits_total[5m])) /
//	(sum(rate(gw2_cache_hits_total[5m])) + sum(rate(gw2_cache_misses_total[5m])))
//
//	# Upstream error rate by endpoint
//	sum by (endpoint) (rate(gw2_requests_total{status=~"5.."}[5m]))
