// Package transport performs the outbound HTTP calls for the Guild
// Wars 2 API client. The client core consumes the Transport interface;
// HTTPClient is the standard implementation and Retrying an optional
// decorator that adds backoff for transient failures.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/gw2tools/gw2-api-client/pkg/logging"
)

// Prometheus metrics for outbound API requests.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gw2_requests_total",
		Help: "Total GW2 API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gw2_request_duration_seconds",
		Help:    "GW2 API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})
)

// Response is the outcome of a single GET against the API.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs a GET request. Implementations return an error
// only for transport-level failures (network, context cancellation);
// HTTP error statuses come back as a Response for the caller to judge.
type Transport interface {
	Get(ctx context.Context, rawurl string, query url.Values, header http.Header) (*Response, error)
}

// HTTPClient is the default Transport, backed by net/http.
type HTTPClient struct {
	client    *http.Client
	userAgent string
	logger    zerolog.Logger
}

// NewHTTPClient creates the default transport. userAgent identifies
// the consuming application to the API.
func NewHTTPClient(userAgent string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: userAgent,
		logger:    logging.NewLogger("gw2-transport"),
	}
}

// SetHTTPClient replaces the underlying net/http client (for testing).
func (t *HTTPClient) SetHTTPClient(client *http.Client) {
	t.client = client
}

// Get performs the request and reads the full response body.
func (t *HTTPClient) Get(ctx context.Context, rawurl string, query url.Values, header http.Header) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	endpoint := req.URL.Path

	start := time.Now()
	resp, err := t.client.Do(req)
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		t.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		return nil, fmt.Errorf("http get %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "read_error").Inc()
		return nil, fmt.Errorf("read response body: %w", err)
	}

	requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	t.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Request complete")

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}
