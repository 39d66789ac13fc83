package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Key identifies a cached collection response. Two logically identical
// requests must render the same key; requests differing in language,
// API key, or any query parameter must not collide.
type Key struct {
	// ResourcePath is the API endpoint path (e.g. "items",
	// "achievements/groups").
	ResourcePath string

	// Lang is the response language requested from the API.
	Lang string

	// AuthHash is the hashed API key for authenticated endpoints
	// (empty for public ones). Use HashAPIKey; raw keys must never end
	// up in a cache key.
	AuthHash string

	// Params are the query parameters of the request.
	Params url.Values
}

// String renders a deterministic cache key.
// Format: gw2:path:lang=en[:auth=h8][:param1=val1:param2=val2]
//
// Query parameter keys are sorted so that two structurally equal
// parameter sets built in different insertion orders still collide.
// Every value of a repeated parameter is rendered, and keys and values
// are query-escaped so the ":" and "=" separators cannot be forged
// from inside a value.
func (k Key) String() string {
	parts := []string{"gw2"}

	path := strings.Trim(k.ResourcePath, "/")
	if path != "" {
		parts = append(parts, path)
	}

	if k.Lang != "" {
		parts = append(parts, "lang="+k.Lang)
	}

	if k.AuthHash != "" {
		parts = append(parts, "auth="+k.AuthHash)
	}

	if len(k.Params) > 0 {
		keys := make([]string, 0, len(k.Params))
		for key := range k.Params {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			values := make([]string, len(k.Params[key]))
			for i, v := range k.Params[key] {
				values[i] = url.QueryEscape(v)
			}
			parts = append(parts, url.QueryEscape(key)+"="+strings.Join(values, ","))
		}
	}

	return strings.Join(parts, ":")
}

// DetailKey renders the cache key for a single detail object. The id is
// the only per-entry component; path, language, and auth form the shared
// prefix, so a batch of ids can be probed independently.
// Format: gw2:path:lang=en[:auth=h8]:id=15
func DetailKey(resourcePath, lang, authHash, id string) string {
	k := Key{ResourcePath: resourcePath, Lang: lang, AuthHash: authHash}
	return k.String() + ":id=" + id
}

// HashAPIKey reduces an API key to a short fingerprint suitable for use
// inside cache keys. Returns "" for an empty key.
func HashAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:8])
}
