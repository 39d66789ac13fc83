// Command gw2-proxy runs a small caching proxy in front of the Guild
// Wars 2 API. Requests to /v2/<path> go through the client library, so
// repeated requests are served from the configured cache store.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gw2tools/gw2-api-client/pkg/cache"
	"github.com/gw2tools/gw2-api-client/pkg/client"
	"github.com/gw2tools/gw2-api-client/pkg/logging"
)

type proxyConfig struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	Lang            string        `env:"LANG_CODE" envDefault:"en"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	MaxCacheObjects int           `env:"MAX_CACHE_OBJECTS" envDefault:"5000"`
	UserAgent       string        `env:"USER_AGENT" envDefault:"gw2-proxy/0.1.0"`
	RedisAddr       string        `env:"REDIS_ADDR"` // empty: in-process cache
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty       bool          `env:"LOG_PRETTY" envDefault:"false"`
}

func main() {
	var cfg proxyConfig
	if err := env.Parse(&cfg); err != nil {
		panic(fmt.Sprintf("parse config: %v", err))
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.LogLevel(cfg.LogLevel)
	logCfg.Pretty = cfg.LogPretty
	logger := logging.Setup(logCfg).With().Str("component", "gw2-proxy").Logger()

	apiClient, err := buildClient(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create API client")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/v2/", proxyHandler(apiClient, logger))

	logger.Info().
		Str("addr", cfg.Addr).
		Str("lang", cfg.Lang).
		Dur("cache_ttl", cfg.CacheTTL).
		Bool("redis", cfg.RedisAddr != "").
		Msg("Starting GW2 caching proxy")

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

func buildClient(cfg proxyConfig, logger zerolog.Logger) (*client.Client, error) {
	clientCfg := client.DefaultConfig()
	clientCfg.Lang = cfg.Lang
	clientCfg.CacheTTL = cfg.CacheTTL
	clientCfg.MaxCacheObjects = cfg.MaxCacheObjects
	clientCfg.UserAgent = cfg.UserAgent

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis cache store")
		clientCfg.Store = cache.NewRedisStore(redisClient)
	}

	return client.New(clientCfg)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

// proxyHandler serves /v2/<path>[?ids=...] through the cached client.
func proxyHandler(apiClient *client.Client, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/v2/")
		if path == "" {
			http.Error(w, "missing resource path", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		data, err := fetch(ctx, apiClient, path, r)
		if err != nil {
			writeError(w, err, logger)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	}
}

func fetch(ctx context.Context, apiClient *client.Client, path string, r *http.Request) (json.RawMessage, error) {
	if ids := r.URL.Query().Get("ids"); ids != "" {
		objects, err := apiClient.FetchDetails(ctx, path, strings.Split(ids, ","))
		if err != nil {
			return nil, err
		}
		return json.Marshal(objects)
	}

	// The client adds the language itself; ids are handled above.
	params := url.Values{}
	for k, vs := range r.URL.Query() {
		if k == "lang" || k == "ids" {
			continue
		}
		params[k] = vs
	}
	return apiClient.FetchCollection(ctx, path, params)
}

func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var upstream *client.UpstreamError
	var invalid *client.InvalidArgumentError

	switch {
	case errors.As(err, &upstream):
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(upstream.StatusCode)
		w.Write(upstream.Body)
	case errors.As(err, &invalid):
		http.Error(w, invalid.Error(), http.StatusBadRequest)
	default:
		logger.Error().Err(err).Msg("Proxy request failed")
		http.Error(w, "upstream request failed", http.StatusBadGateway)
	}
}
