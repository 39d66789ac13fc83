package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gw2tools/gw2-api-client/pkg/cache"
	"github.com/gw2tools/gw2-api-client/pkg/transport"
)

// Page wraps a collection payload with best-effort pagination metadata
// taken from the X-Page-* / X-Result-* response headers. Absent headers
// leave the fields zero; that is not an error. The whole envelope is
// what gets cached for collection requests, so warm hits keep their
// metadata.
type Page struct {
	Data        json.RawMessage `json:"data"`
	PageSize    int             `json:"page_size,omitempty"`
	PageTotal   int             `json:"page_total,omitempty"`
	ResultCount int             `json:"result_count,omitempty"`
	ResultTotal int             `json:"result_total,omitempty"`
}

// doGet issues one GET through the transport. The language always
// travels as a query parameter; the API ignores it on non-localized
// endpoints. API keys travel as a bearer token, never in the URL.
func (c *Client) doGet(ctx context.Context, path string, params url.Values, apiKey string) (*transport.Response, error) {
	query := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	query.Set("lang", c.config.Lang)

	var header http.Header
	if apiKey != "" {
		header = http.Header{}
		header.Set("Authorization", "Bearer "+apiKey)
	}

	return c.transport.Get(ctx, c.config.BaseURL+"/"+strings.Trim(path, "/"), query, header)
}

// fetchPage is the list request orchestrator: one cache entry per
// distinct (path, params, lang, key) tuple. A hit returns the stored
// envelope without touching the network; a miss performs exactly one
// fetch and one cache write.
func (c *Client) fetchPage(ctx context.Context, path string, params url.Values, apiKey string) (*Page, error) {
	key := cache.Key{
		ResourcePath: path,
		Lang:         c.config.Lang,
		AuthHash:     cache.HashAPIKey(apiKey),
		Params:       params,
	}.String()

	if data, err := c.store.Get(ctx, key); err == nil {
		var page Page
		if err := json.Unmarshal(data, &page); err == nil {
			c.logger.Debug().Str("endpoint", path).Str("cache_key", key).Msg("Collection served from cache")
			return &page, nil
		}
		// Corrupt entry: drop it and fetch fresh.
		_ = c.store.Delete(ctx, key)
	} else if !errors.Is(err, cache.ErrMiss) {
		c.logger.Debug().Err(err).Str("endpoint", path).Msg("Cache get failed, treating as miss")
	}

	resp, err := c.doGet(ctx, path, params, apiKey)
	if err != nil {
		return nil, err
	}

	// 206 Partial Content is how the API answers paginated requests.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: resp.Body, Path: path}
	}

	if !json.Valid(resp.Body) {
		return nil, &MalformedResponseError{Body: resp.Body, Err: errors.New("invalid json")}
	}

	page := &Page{
		Data:        json.RawMessage(resp.Body),
		PageSize:    headerInt(resp.Header, "X-Page-Size"),
		PageTotal:   headerInt(resp.Header, "X-Page-Total"),
		ResultCount: headerInt(resp.Header, "X-Result-Count"),
		ResultTotal: headerInt(resp.Header, "X-Result-Total"),
	}

	if data, err := json.Marshal(page); err == nil {
		if err := c.store.Set(ctx, key, data, c.config.CacheTTL); err != nil {
			c.logger.Debug().Err(err).Str("endpoint", path).Msg("Cache set failed")
		}
	}

	return page, nil
}

// fetchCollection fetches a whole-collection response without caring
// about pagination metadata.
func (c *Client) fetchCollection(ctx context.Context, path string, params url.Values, apiKey string) (json.RawMessage, error) {
	page, err := c.fetchPage(ctx, path, params, apiKey)
	if err != nil {
		return nil, err
	}
	return page.Data, nil
}

// PageOf fetches one page of an arbitrary collection endpoint with
// pagination metadata. pageSize <= 0 leaves the server default.
func (c *Client) PageOf(ctx context.Context, path string, pageNum, pageSize int) (*Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(pageNum))
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	return c.fetchPage(ctx, path, params, "")
}

// FetchCollection fetches an arbitrary collection endpoint with the
// given query parameters. It is the escape hatch for endpoints without
// a typed method; the typed methods all funnel into the same path.
func (c *Client) FetchCollection(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return c.fetchCollection(ctx, path, params, "")
}

// FetchDetails fetches the given ids from an arbitrary detail endpoint,
// in order, with per-id caching.
func (c *Client) FetchDetails(ctx context.Context, path string, ids []string) ([]json.RawMessage, error) {
	return c.fetchDetails(ctx, path, Names(ids...), "")
}

// fetchDetails is the detail request orchestrator. Every requested id
// has its own cache entry, so a batch can be served partly from cache:
// cached ids are collected first, only the missing subset goes to the
// network (one request for the whole subset, never one per id), and the
// merged result follows the caller's requested order, duplicates
// included.
//
// When the residual fetch fails but at least one id was cached, the
// cached subset is returned instead of an error. An id a successful
// response omits (deleted or invalid upstream) is dropped from the
// result with a warning.
func (c *Client) fetchDetails(ctx context.Context, path string, ids IDList, apiKey string) ([]json.RawMessage, error) {
	if ids.Empty() {
		return nil, &InvalidArgumentError{Reason: "at least one id is required"}
	}

	authHash := cache.HashAPIKey(apiKey)
	requested := ids.Values()

	objects := make(map[string]json.RawMessage, len(requested))
	var missing []string
	probed := make(map[string]bool, len(requested))

	for _, id := range requested {
		if probed[id] {
			continue
		}
		probed[id] = true

		data, err := c.store.Get(ctx, cache.DetailKey(path, c.config.Lang, authHash, id))
		if err == nil {
			objects[id] = json.RawMessage(data)
			continue
		}
		if !errors.Is(err, cache.ErrMiss) {
			c.logger.Debug().Err(err).Str("endpoint", path).Msg("Cache get failed, treating as miss")
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		if err := c.fetchMissing(ctx, path, missing, apiKey, authHash, objects); err != nil {
			if len(objects) == 0 {
				return nil, err
			}
			// Partial-failure degradation: serve what the cache had.
			c.logger.Warn().
				Err(err).
				Str("endpoint", path).
				Int("missing", len(missing)).
				Int("cached", len(objects)).
				Msg("Residual fetch failed, returning cached subset")
		}
	} else {
		c.logger.Debug().
			Str("endpoint", path).
			Int("ids", len(requested)).
			Msg("Details fully served from cache")
	}

	return c.merge(path, requested, objects), nil
}

// fetchMissing performs the single residual fetch for uncached ids and
// writes each returned object back under its own per-id key. The id
// under which an object is cached comes from the object's own id field;
// the response, not the request, is authoritative.
func (c *Client) fetchMissing(ctx context.Context, path string, missing []string, apiKey, authHash string, objects map[string]json.RawMessage) error {
	// Ascending order keeps the upstream request canonical. The sort
	// operates on a partition copy and never reaches the caller.
	sortIDs(missing)

	params := url.Values{}
	if len(missing) == 1 {
		params.Set("id", missing[0])
	} else {
		params.Set("ids", strings.Join(missing, ","))
	}

	resp, err := c.doGet(ctx, path, params, apiKey)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return &UpstreamError{StatusCode: resp.StatusCode, Body: resp.Body, Path: path}
	}

	fetched, err := decodeDetails(resp.Body)
	if err != nil {
		return err
	}

	for _, obj := range fetched {
		id, ok := objectID(obj)
		if !ok {
			c.logger.Warn().Str("endpoint", path).Msg("Fetched object without id field, skipping")
			continue
		}
		if err := c.store.Set(ctx, cache.DetailKey(path, c.config.Lang, authHash, id), obj, c.config.CacheTTL); err != nil {
			c.logger.Debug().Err(err).Str("endpoint", path).Msg("Cache set failed")
		}
		objects[id] = obj
	}

	return nil
}

// merge projects the id→object lookup back into the caller's requested
// order. A requested id with no object anywhere is omitted.
func (c *Client) merge(path string, requested []string, objects map[string]json.RawMessage) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(requested))
	for _, id := range requested {
		obj, ok := objects[id]
		if !ok {
			c.logger.Warn().
				Str("endpoint", path).
				Str("id", id).
				Msg("Requested id not resolvable, omitted from result")
			continue
		}
		out = append(out, obj)
	}
	return out
}

// fetchDetail is the single-object variant: same orchestration, but a
// missing object is a hard ErrNotFound instead of a shorter sequence.
func (c *Client) fetchDetail(ctx context.Context, path string, ids IDList, apiKey string) (json.RawMessage, error) {
	objects, err := c.fetchDetails(ctx, path, ids, apiKey)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, ErrNotFound
	}
	return objects[0], nil
}

// decodeDetails parses a detail response body: an array of objects for
// an ids= request, a single object for an id= request.
func decodeDetails(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, &MalformedResponseError{Body: body, Err: errors.New("empty body")}
	}

	if trimmed[0] == '[' {
		var arr []json.RawMessage
		if err := json.Unmarshal(trimmed, &arr); err != nil {
			return nil, &MalformedResponseError{Body: body, Err: err}
		}
		return arr, nil
	}

	var obj json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, &MalformedResponseError{Body: body, Err: err}
	}
	return []json.RawMessage{obj}, nil
}

// objectID extracts the id field of a decoded object as its canonical
// string form, for both numeric and string ids.
func objectID(obj json.RawMessage) (string, bool) {
	var probe struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(obj, &probe); err != nil || len(probe.ID) == 0 {
		return "", false
	}
	id := strings.Trim(string(probe.ID), `"`)
	if id == "" || id == "null" {
		return "", false
	}
	return id, true
}

// headerInt parses a numeric response header, 0 when absent or bad.
func headerInt(header http.Header, name string) int {
	v := header.Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
