package pagination

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gw2tools/gw2-api-client/pkg/client"
	"github.com/gw2tools/gw2-api-client/pkg/logging"
)

// Config holds fetcher configuration.
type Config struct {
	// MaxConcurrency is the maximum number of parallel page requests.
	MaxConcurrency int

	// Timeout per page fetch.
	Timeout time.Duration

	// PageSize requested from the API (max 200).
	PageSize int
}

// DefaultConfig returns safe defaults for the public API.
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: 5,
		Timeout:        15 * time.Second,
		PageSize:       200,
	}
}

// PageSource is the single-page fetch the fetcher builds on; the API
// client satisfies it.
type PageSource interface {
	PageOf(ctx context.Context, path string, pageNum, pageSize int) (*client.Page, error)
}

// Fetcher downloads all pages of a collection endpoint in parallel.
type Fetcher struct {
	source PageSource
	config Config
	logger zerolog.Logger
}

// NewFetcher creates a fetcher on top of a page source.
func NewFetcher(source PageSource, config Config) *Fetcher {
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 5
	}
	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}
	if config.PageSize <= 0 || config.PageSize > 200 {
		config.PageSize = 200
	}

	return &Fetcher{
		source: source,
		config: config,
		logger: logging.NewLogger("gw2-pagination"),
	}
}

type pageResult struct {
	pageNum int
	data    json.RawMessage
	err     error
}

// FetchAllPages fetches every page of the endpoint and returns a map of
// page number to payload. On worker errors it returns the pages it did
// get along with the first error.
func (f *Fetcher) FetchAllPages(ctx context.Context, path string) (map[int]json.RawMessage, error) {
	start := time.Now()

	first, err := f.source.PageOf(ctx, path, 0, f.config.PageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch first page: %w", err)
	}

	totalPages := first.PageTotal
	if totalPages <= 0 {
		totalPages = 1
	}

	results := map[int]json.RawMessage{0: first.Data}
	if totalPages == 1 {
		return results, nil
	}

	f.logger.Info().
		Str("endpoint", path).
		Int("total_pages", totalPages).
		Msg("Starting parallel page fetch")

	queue := make(chan int)
	out := make(chan pageResult, totalPages-1)

	go func() {
		defer close(queue)
		for page := 1; page < totalPages; page++ {
			select {
			case queue <- page:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < f.config.MaxConcurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.worker(ctx, path, queue, out)
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	var firstErr error
	for result := range out {
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		results[result.pageNum] = result.data
	}

	if firstErr != nil {
		f.logger.Warn().
			Err(firstErr).
			Str("endpoint", path).
			Int("fetched", len(results)).
			Int("total", totalPages).
			Msg("Page fetch incomplete, returning partial results")
		return results, fmt.Errorf("partial data (%d/%d pages): %w", len(results), totalPages, firstErr)
	}

	f.logger.Info().
		Str("endpoint", path).
		Int("pages", len(results)).
		Dur("duration", time.Since(start)).
		Msg("Page fetch complete")

	return results, nil
}

func (f *Fetcher) worker(ctx context.Context, path string, queue <-chan int, out chan<- pageResult) {
	for pageNum := range queue {
		pageCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
		page, err := f.source.PageOf(pageCtx, path, pageNum, f.config.PageSize)
		cancel()

		if err != nil {
			f.logger.Warn().
				Err(err).
				Str("endpoint", path).
				Int("page", pageNum).
				Msg("Page fetch failed")
			out <- pageResult{pageNum: pageNum, err: err}
			continue
		}

		out <- pageResult{pageNum: pageNum, data: page.Data}
	}
}
