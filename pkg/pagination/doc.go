// Package pagination fetches every page of a paginated Guild Wars 2 API
// collection in parallel.
//
// The API reports the total page count in the X-Page-Total header and
// serves pages zero-based. The fetcher reads page 0 to learn the total,
// then distributes the remaining pages across a bounded worker pool.
// Every page goes through the client's cache-first page fetch, so pages
// already cached cost no network call and re-runs are cheap.
//
// Example usage:
//
//	fetcher := pagination.NewFetcher(apiClient, pagination.DefaultConfig())
//	pages, err := fetcher.FetchAllPages(ctx, "items")
//
// Errors on individual pages degrade to partial results; the fetcher
// returns what it got together with the first worker error.
package pagination
