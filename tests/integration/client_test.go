package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/gw2tools/gw2-api-client/internal/testutil"
	"github.com/gw2tools/gw2-api-client/pkg/cache"
	"github.com/gw2tools/gw2-api-client/pkg/client"
	"github.com/gw2tools/gw2-api-client/pkg/pagination"
)

// setupRedis creates a Redis container for integration testing.
func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: host + ":" + port.Port(),
	})

	cleanup := func() {
		redisClient.Close()
		container.Terminate(ctx)
	}

	return redisClient, cleanup
}

func newRedisClient(t *testing.T, redisClient *redis.Client, mock *testutil.MockAPI, ttl time.Duration) *client.Client {
	t.Helper()

	cfg := client.DefaultConfig()
	cfg.BaseURL = mock.URL()
	cfg.CacheTTL = ttl
	cfg.Store = cache.NewRedisStore(redisClient)

	c, err := client.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

// TestFullRequestFlow checks the complete flow against a real Redis
// store: cold batch fetch, cache write, warm batch with no upstream
// traffic.
func TestFullRequestFlow(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetDetailResource("/items", map[string]string{
		"15":   `{"id":15,"name":"Abomination Hammer"}`,
		"2016": `{"id":2016,"name":"Fleshreaver Claw"}`,
	})

	c := newRedisClient(t, redisClient, mock, 5*time.Minute)
	ctx := context.Background()

	t.Log("Request 1: cold batch, one upstream request")
	objects, err := c.Items(ctx, 2016, 15)
	if err != nil {
		t.Fatalf("Request 1 failed: %v", err)
	}
	if len(objects) != 2 {
		t.Fatalf("Request 1 objects = %d, want 2", len(objects))
	}
	if mock.RequestCount() != 1 {
		t.Errorf("After request 1: upstream requests = %d, want 1", mock.RequestCount())
	}

	t.Log("Request 2: warm batch, no upstream traffic")
	objects2, err := c.Items(ctx, 2016, 15)
	if err != nil {
		t.Fatalf("Request 2 failed: %v", err)
	}
	if mock.RequestCount() != 1 {
		t.Errorf("After request 2: upstream requests = %d, want 1", mock.RequestCount())
	}

	for i := range objects {
		if string(objects[i]) != string(objects2[i]) {
			t.Errorf("Warm object %d differs from cold object", i)
		}
	}
}

// TestSharedCacheAcrossClients checks that a second client instance
// backed by the same Redis store only fetches the residual ids.
func TestSharedCacheAcrossClients(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetDetailResource("/items", map[string]string{
		"15":    `{"id":15,"name":"Abomination Hammer"}`,
		"2016":  `{"id":2016,"name":"Fleshreaver Claw"}`,
		"12452": `{"id":12452,"name":"Omnomberry Bar"}`,
	})

	ctx := context.Background()

	c1 := newRedisClient(t, redisClient, mock, 5*time.Minute)
	if _, err := c1.Items(ctx, 15, 2016); err != nil {
		t.Fatalf("First client fetch failed: %v", err)
	}
	mock.Reset()

	// A fresh client with the same store sees the first client's
	// entries; only 12452 goes upstream.
	c2 := newRedisClient(t, redisClient, mock, 5*time.Minute)
	objects, err := c2.Items(ctx, 15, 12452, 2016)
	if err != nil {
		t.Fatalf("Second client fetch failed: %v", err)
	}
	if len(objects) != 3 {
		t.Fatalf("Objects = %d, want 3", len(objects))
	}
	if mock.RequestCount() != 1 {
		t.Errorf("Upstream requests = %d, want 1 (residual only)", mock.RequestCount())
	}
	if got := mock.LastQuery().Get("id"); got != "12452" {
		t.Errorf("Residual request id = %q, want 12452", got)
	}
}

// TestPartialFailureDegradation checks that a failing upstream still
// yields the cached subset from Redis.
func TestPartialFailureDegradation(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetDetailResource("/items", map[string]string{
		"15": `{"id":15,"name":"Abomination Hammer"}`,
	})

	c := newRedisClient(t, redisClient, mock, 5*time.Minute)
	ctx := context.Background()

	if _, err := c.Items(ctx, 15); err != nil {
		t.Fatalf("Priming fetch failed: %v", err)
	}

	// Upstream now fails hard.
	mock.SetResponse("/items", testutil.ServerError())

	objects, err := c.Items(ctx, 15, 2016)
	if err != nil {
		t.Fatalf("Degraded fetch returned error: %v", err)
	}
	if len(objects) != 1 {
		t.Fatalf("Degraded objects = %d, want 1 (cached subset)", len(objects))
	}

	var item struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(objects[0], &item); err != nil || item.ID != 15 {
		t.Errorf("Degraded object = %s, want item 15", string(objects[0]))
	}
}

// TestCacheExpiration checks that entries expire out of Redis and the
// next request goes upstream again.
func TestCacheExpiration(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetResponse("/worlds", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       `[1001,1002]`,
	})

	c := newRedisClient(t, redisClient, mock, time.Second)
	ctx := context.Background()

	if _, err := c.ListWorlds(ctx); err != nil {
		t.Fatalf("First request failed: %v", err)
	}
	if _, err := c.ListWorlds(ctx); err != nil {
		t.Fatalf("Second request failed: %v", err)
	}
	if mock.RequestCount() != 1 {
		t.Errorf("Before expiry: upstream requests = %d, want 1", mock.RequestCount())
	}

	time.Sleep(1500 * time.Millisecond)

	if _, err := c.ListWorlds(ctx); err != nil {
		t.Fatalf("Post-expiry request failed: %v", err)
	}
	if mock.RequestCount() != 2 {
		t.Errorf("After expiry: upstream requests = %d, want 2", mock.RequestCount())
	}
}

// TestPaginatedFetchThroughRedis drives the page fetcher end to end:
// every page lands in Redis, and a second full fetch is served without
// upstream traffic.
func TestPaginatedFetchThroughRedis(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockAPI()
	defer mock.Close()

	const pageTotal = 3
	mock.SetHandler("/items", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("X-Page-Size", "2")
		w.Header().Set("X-Page-Total", fmt.Sprint(pageTotal))
		w.Header().Set("X-Result-Count", "2")
		w.Header().Set("X-Result-Total", "6")
		w.WriteHeader(http.StatusPartialContent)
		fmt.Fprintf(w, `[{"page":%s}]`, page)
	})

	c := newRedisClient(t, redisClient, mock, 5*time.Minute)

	fetcherCfg := pagination.DefaultConfig()
	fetcherCfg.PageSize = 2
	fetcher := pagination.NewFetcher(c, fetcherCfg)

	ctx := context.Background()

	pages, err := fetcher.FetchAllPages(ctx, "items")
	if err != nil {
		t.Fatalf("FetchAllPages failed: %v", err)
	}
	if len(pages) != pageTotal {
		t.Fatalf("Pages = %d, want %d", len(pages), pageTotal)
	}
	if mock.RequestCount() != pageTotal {
		t.Errorf("Upstream requests = %d, want %d", mock.RequestCount(), pageTotal)
	}

	mock.Reset()
	pages2, err := fetcher.FetchAllPages(ctx, "items")
	if err != nil {
		t.Fatalf("Warm FetchAllPages failed: %v", err)
	}
	if len(pages2) != pageTotal {
		t.Fatalf("Warm pages = %d, want %d", len(pages2), pageTotal)
	}
	if mock.RequestCount() != 0 {
		t.Errorf("Warm upstream requests = %d, want 0", mock.RequestCount())
	}
}
