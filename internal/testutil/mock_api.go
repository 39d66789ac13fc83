// Package testutil provides a configurable mock Guild Wars 2 API server
// for tests.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
)

// MockResponse defines a canned response for a path.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// MockAPI is a configurable mock API server. Beyond canned responses it
// can serve id-keyed detail resources the way the real API does:
// ?ids=a,b,c returns an array of the known objects, ?id=a returns one
// object, unknown ids are silently omitted, and a request where no id
// is known answers 404.
type MockAPI struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	requestCount int
	lastPath     string
	lastQuery    url.Values
	lastHeader   http.Header
}

// NewMockAPI creates a new mock API server.
func NewMockAPI() *MockAPI {
	mock := &MockAPI{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount++
		mock.lastPath = r.URL.Path
		mock.lastQuery = r.URL.Query()
		mock.lastHeader = r.Header.Clone()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"text":"no such endpoint"}`)
	}))

	return mock
}

// URL returns the mock server URL, usable as the client's BaseURL.
func (m *MockAPI) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockAPI) Close() {
	m.server.Close()
}

// Reset clears the tracking counters.
func (m *MockAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = 0
	m.lastPath = ""
	m.lastQuery = nil
	m.lastHeader = nil
}

// RequestCount returns the number of requests the server has seen.
func (m *MockAPI) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// LastQuery returns the query parameters of the most recent request.
func (m *MockAPI) LastQuery() url.Values {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastQuery
}

// LastHeader returns the headers of the most recent request.
func (m *MockAPI) LastHeader() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastHeader
}

// SetHandler sets a custom handler for a path ("/items").
func (m *MockAPI) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a canned response for a path.
func (m *MockAPI) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			fmt.Fprint(w, resp.Body)
		}
	})
}

// SetDetailResource serves a detail endpoint from a fixed id→object
// table, mimicking the real API's ids=/id= handling.
func (m *MockAPI) SetDetailResource(path string, objects map[string]string) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if id := r.URL.Query().Get("id"); id != "" {
			obj, ok := objects[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"text":"no such id"}`)
				return
			}
			fmt.Fprint(w, obj)
			return
		}

		idsParam := r.URL.Query().Get("ids")
		if idsParam == "" {
			// Id listing.
			ids := make([]string, 0, len(objects))
			for id := range objects {
				ids = append(ids, id)
			}
			fmt.Fprintf(w, "[%s]", strings.Join(ids, ","))
			return
		}

		var found []string
		for _, id := range strings.Split(idsParam, ",") {
			if obj, ok := objects[id]; ok {
				found = append(found, obj)
			}
		}
		if len(found) == 0 {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"text":"all ids provided are invalid"}`)
			return
		}
		fmt.Fprintf(w, "[%s]", strings.Join(found, ","))
	})
}

// PagedResponse builds a 206 response with pagination headers.
func PagedResponse(body string, pageSize, pageTotal, resultCount, resultTotal int) MockResponse {
	return MockResponse{
		StatusCode: http.StatusPartialContent,
		Body:       body,
		Headers: map[string]string{
			"X-Page-Size":    fmt.Sprintf("%d", pageSize),
			"X-Page-Total":   fmt.Sprintf("%d", pageTotal),
			"X-Result-Count": fmt.Sprintf("%d", resultCount),
			"X-Result-Total": fmt.Sprintf("%d", resultTotal),
		},
	}
}

// ServerError builds a 500 response.
func ServerError() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"text":"internal error"}`,
	}
}

// RateLimited builds a 429 response.
func RateLimited() MockResponse {
	return MockResponse{
		StatusCode: http.StatusTooManyRequests,
		Body:       `{"text":"too many requests"}`,
	}
}
