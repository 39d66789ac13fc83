// Package cache provides response caching for the Guild Wars 2 API client.
//
// The package has three parts:
//
//   - Key and DetailKey build deterministic cache keys from the request
//     shape (resource path, language, API key, query parameters). Detail
//     keys carry a single id so a batch of ids can be probed one key at
//     a time, which is what makes partial cache hits possible.
//   - Store is the key/value contract the client orchestration layer
//     consumes: get, set with TTL, delete. Absence is reported with
//     ErrMiss, never as a hard failure.
//   - MemoryStore (bounded in-process LRU) and RedisStore (shared,
//     cross-process) implement Store.
//
// # Basic Usage
//
//	store := cache.NewMemoryStore(5000)
//
//	key := cache.Key{
//		ResourcePath: "items",
//		Lang:         "en",
//		Params:       url.Values{"page": []string{"1"}},
//	}
//
//	data, err := store.Get(ctx, key.String())
//	if errors.Is(err, cache.ErrMiss) {
//		// fetch from the API, then:
//		_ = store.Set(ctx, key.String(), body, 5*time.Minute)
//	}
//
// # Metrics
//
// The stores export Prometheus metrics:
//
//   - gw2_cache_hits_total{store} - Cache hits
//   - gw2_cache_misses_total{store} - Cache misses
//   - gw2_cache_evictions_total - LRU evictions (memory store)
//   - gw2_cache_errors_total{operation} - Cache operation errors
package cache
