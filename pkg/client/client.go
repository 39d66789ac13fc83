// Package client provides the Guild Wars 2 API client: per-resource
// methods on top of a cache-first request orchestration core.
package client

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gw2tools/gw2-api-client/pkg/cache"
	"github.com/gw2tools/gw2-api-client/pkg/logging"
	"github.com/gw2tools/gw2-api-client/pkg/transport"
)

// DefaultBaseURL is the public v2 API host.
const DefaultBaseURL = "https://api.guildwars2.com/v2"

// Client is the Guild Wars 2 API client. All methods are safe for
// concurrent use; the only shared state is the injected cache store.
type Client struct {
	transport transport.Transport
	store     cache.Store
	config    Config
	logger    zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL of the API (default: DefaultBaseURL).
	BaseURL string

	// Lang is the default response language (en, es, de, fr, zh).
	Lang string

	// APIKey is the default key for account-scoped endpoints. Methods
	// taking an apiKey argument override it per call.
	APIKey string

	// CacheTTL is how long responses stay cached.
	CacheTTL time.Duration

	// MaxCacheObjects bounds the in-process cache entry count; past it
	// the least-recently-used entry is evicted. Ignored when a custom
	// Store is injected.
	MaxCacheObjects int

	// UserAgent identifies the consuming application.
	UserAgent string

	// Transport overrides the default HTTP transport.
	Transport transport.Transport

	// Store overrides the default in-process cache store. Each client
	// owns its store; there is no process-wide cache.
	Store cache.Store
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		Lang:            "en",
		CacheTTL:        5 * time.Minute,
		MaxCacheObjects: 5000,
		UserAgent:       "gw2-api-client/0.1.0",
	}
}

// New creates a new API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("cache ttl must not be negative (got %s)", cfg.CacheTTL)
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 5 * time.Minute
	}

	t := cfg.Transport
	if t == nil {
		t = transport.NewHTTPClient(cfg.UserAgent)
	}

	store := cfg.Store
	if store == nil {
		store = cache.NewMemoryStore(cfg.MaxCacheObjects)
	}

	return &Client{
		transport: t,
		store:     store,
		config:    cfg,
		logger:    logging.NewLogger("gw2-client"),
	}, nil
}

// Store returns the cache store owned by this client.
func (c *Client) Store() cache.Store {
	return c.store
}

// auth resolves the effective API key for an account-scoped call.
func (c *Client) auth(apiKey string) (string, error) {
	if apiKey == "" {
		apiKey = c.config.APIKey
	}
	if apiKey == "" {
		return "", &InvalidArgumentError{Reason: "api key required for authenticated endpoint"}
	}
	return apiKey, nil
}
