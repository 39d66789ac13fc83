package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by single-object lookups when the API
	// does not know the requested id.
	ErrNotFound = errors.New("resource not found")
)

// UpstreamError reports a non-success HTTP status from the API. The raw
// body is preserved for diagnosis; the client never retries on its own.
type UpstreamError struct {
	StatusCode int
	Body       []byte
	Path       string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gw2 api %s: upstream status %d: %s", e.Path, e.StatusCode, truncateBody(e.Body))
}

// MalformedResponseError reports a response body that failed JSON
// decoding. The offending body is preserved for diagnosis.
type MalformedResponseError struct {
	Body []byte
	Err  error
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("gw2 api: malformed response body: %v: %s", e.Err, truncateBody(e.Body))
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// InvalidArgumentError reports a bad argument detected before any I/O.
type InvalidArgumentError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return "gw2 api: invalid argument: " + e.Reason
}

// truncateBody keeps error strings readable for large payloads.
func truncateBody(body []byte) string {
	const max = 256
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "..."
}
