package pagination

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gw2tools/gw2-api-client/pkg/client"
)

type stubSource struct {
	totalPages int
	failPage   int // -1 for none
	calls      atomic.Int32
}

func (s *stubSource) PageOf(ctx context.Context, path string, pageNum, pageSize int) (*client.Page, error) {
	s.calls.Add(1)
	if pageNum == s.failPage {
		return nil, errors.New("boom")
	}
	return &client.Page{
		Data:      json.RawMessage(fmt.Sprintf(`[%d]`, pageNum)),
		PageTotal: s.totalPages,
	}, nil
}

func TestFetchAllPages_SinglePage(t *testing.T) {
	source := &stubSource{totalPages: 1, failPage: -1}
	fetcher := NewFetcher(source, DefaultConfig())

	pages, err := fetcher.FetchAllPages(context.Background(), "items")
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.JSONEq(t, `[0]`, string(pages[0]))
	assert.Equal(t, int32(1), source.calls.Load())
}

func TestFetchAllPages_AllPages(t *testing.T) {
	source := &stubSource{totalPages: 7, failPage: -1}
	fetcher := NewFetcher(source, Config{MaxConcurrency: 3})

	pages, err := fetcher.FetchAllPages(context.Background(), "items")
	require.NoError(t, err)
	require.Len(t, pages, 7)
	for i := 0; i < 7; i++ {
		assert.JSONEq(t, fmt.Sprintf(`[%d]`, i), string(pages[i]))
	}
	assert.Equal(t, int32(7), source.calls.Load())
}

func TestFetchAllPages_PartialOnWorkerError(t *testing.T) {
	source := &stubSource{totalPages: 5, failPage: 3}
	fetcher := NewFetcher(source, Config{MaxConcurrency: 2})

	pages, err := fetcher.FetchAllPages(context.Background(), "items")
	require.Error(t, err)
	assert.Len(t, pages, 4, "failed page is missing, the rest survives")
	_, ok := pages[3]
	assert.False(t, ok)
}

func TestFetchAllPages_FirstPageError(t *testing.T) {
	source := &stubSource{totalPages: 5, failPage: 0}
	fetcher := NewFetcher(source, DefaultConfig())

	_, err := fetcher.FetchAllPages(context.Background(), "items")
	assert.Error(t, err)
}
